package ml

// The artifacts were fitted on these exact column orders. The orders are part
// of the artifact contract and must never be rearranged at request time.

var featureNames = []string{
	"Income", "Rent", "Insurance", "Groceries", "Transport", "Eating_Out",
	"Entertainment", "Utilities", "Healthcare", "Education", "Miscellaneous",
	"Desired_Savings", "Disposable_Income",
}

var outputNames = []string{
	"Potential_Savings_Groceries", "Potential_Savings_Transport", "Potential_Savings_Eating_Out",
	"Potential_Savings_Entertainment", "Potential_Savings_Utilities", "Potential_Savings_Healthcare",
	"Potential_Savings_Education",
}

// FeatureNames returns the model's input columns in fitted order.
func FeatureNames() []string {
	return append([]string(nil), featureNames...)
}

// OutputNames returns the model's output columns in positional order.
func OutputNames() []string {
	return append([]string(nil), outputNames...)
}
