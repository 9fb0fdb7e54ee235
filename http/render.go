package http

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mostafasaleh00/Personal-Expenses-Optimizer/pipeline"
)

var amountPrinter = message.NewPrinter(language.English)

// formatAmounts renders each predicted value as a grouped two-decimal amount
// string ("1,234.56") for direct display by clients.
func formatAmounts(result pipeline.Result) map[string]string {
	display := make(map[string]string, len(result))
	for name, value := range result {
		display[name] = amountPrinter.Sprintf("%.2f", value)
	}
	return display
}
