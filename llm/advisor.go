package llm

import (
	"context"
	"fmt"
	"strings"
)

// Generator produces text for a prompt. Satisfied by GeminiClient and by test
// stubs.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const advisoryPromptPrefix = "Based on my current financial inputs and predictions, " +
	"what steps can I take to improve my financial status? " +
	"Here is my question: "

const emptyReplySentinel = "No response received."

// Advisor is a stateless pass-through to the text-generation service. It
// degrades every failure into a readable reply string: this channel should
// show a message, never crash the surrounding interaction. Callers wanting
// multi-turn context must fold prior turns into userText themselves.
type Advisor struct {
	gen Generator
}

func NewAdvisor(gen Generator) *Advisor {
	return &Advisor{gen: gen}
}

// Advise forwards the user's question and returns the reply text. Blank input
// short-circuits with an empty reply and no external call.
func (a *Advisor) Advise(ctx context.Context, userText string) string {
	question := strings.TrimSpace(userText)
	if question == "" {
		return ""
	}

	reply, err := a.gen.Generate(ctx, advisoryPromptPrefix+question)
	if err != nil {
		return fmt.Sprintf("Error contacting advisory service: %v", err)
	}
	if strings.TrimSpace(reply) == "" {
		return emptyReplySentinel
	}
	return reply
}
