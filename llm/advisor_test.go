package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeGenerator struct {
	reply string
	err   error
	calls int
	last  string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.last = prompt
	return f.reply, f.err
}

func TestAdviseEmptyInputSkipsCall(t *testing.T) {
	gen := &fakeGenerator{reply: "should not be used"}
	advisor := NewAdvisor(gen)

	if reply := advisor.Advise(context.Background(), "   "); reply != "" {
		t.Fatalf("expected empty reply, got %q", reply)
	}
	if gen.calls != 0 {
		t.Fatalf("expected no external call, got %d", gen.calls)
	}
}

func TestAdviseWrapsQuestionInPrompt(t *testing.T) {
	gen := &fakeGenerator{reply: "Cut eating out by half."}
	advisor := NewAdvisor(gen)

	reply := advisor.Advise(context.Background(), "How can I save more?")
	if reply != "Cut eating out by half." {
		t.Fatalf("unexpected reply: %q", reply)
	}
	if gen.calls != 1 {
		t.Fatalf("expected one call, got %d", gen.calls)
	}
	if !strings.Contains(gen.last, "How can I save more?") {
		t.Fatalf("prompt must embed the question, got %q", gen.last)
	}
	if !strings.HasPrefix(gen.last, advisoryPromptPrefix) {
		t.Fatalf("prompt must start with the advisory prefix, got %q", gen.last)
	}
}

func TestAdviseEmbedsServiceError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection refused")}
	advisor := NewAdvisor(gen)

	reply := advisor.Advise(context.Background(), "How can I save more?")
	if !strings.Contains(reply, "connection refused") {
		t.Fatalf("reply must embed the error description, got %q", reply)
	}
}

func TestAdviseEmptyReplySentinel(t *testing.T) {
	gen := &fakeGenerator{reply: "  "}
	advisor := NewAdvisor(gen)

	reply := advisor.Advise(context.Background(), "Any tips?")
	if reply != emptyReplySentinel {
		t.Fatalf("expected sentinel reply, got %q", reply)
	}
}

func TestAdviseIsStatelessAcrossCalls(t *testing.T) {
	gen := &fakeGenerator{reply: "ok"}
	advisor := NewAdvisor(gen)

	advisor.Advise(context.Background(), "first question")
	advisor.Advise(context.Background(), "second question")

	if strings.Contains(gen.last, "first question") {
		t.Fatalf("prior turns must not leak into later prompts: %q", gen.last)
	}
}
