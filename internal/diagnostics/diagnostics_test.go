package diagnostics

import (
	"strings"
	"testing"

	"github.com/funvibe/swifty/internal/token"
)

func TestErrorFormatting(t *testing.T) {
	tok := token.Token{Line: 3, Column: 7}
	err := NewAnalyzerError(ErrUseOfUnresolvedIdentifier, tok, "shape")
	msg := err.Error()
	for _, want := range []string{"3:7", "E_USE_OF_UNRESOLVED_IDENTIFIER_1", "'shape'", "[analyzer]"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestTwoArgumentTemplate(t *testing.T) {
	err := NewAnalyzerError(ErrCannotConvertExpressionType2, token.Token{}, "String", "Int")
	msg := err.Error()
	if !strings.Contains(msg, "'String'") || !strings.Contains(msg, "'Int'") {
		t.Errorf("positional substitution failed: %q", msg)
	}
}

func TestIsWarning(t *testing.T) {
	if !WarnCodeAfterReturnNeverExecuted.IsWarning() {
		t.Error("W_ code should classify as a warning")
	}
	if ErrMissingReturn.IsWarning() {
		t.Error("E_ code should not classify as a warning")
	}
}

func TestFatalFlag(t *testing.T) {
	err := NewFatal(token.Token{Line: 1}, "specialization cache miss")
	if !err.Fatal {
		t.Error("NewFatal should mark the diagnostic fatal")
	}
	if !strings.Contains(err.Error(), "internal compiler error") {
		t.Errorf("fatal message = %q", err.Error())
	}
}

func TestWrapErrorPreservesDiagnostics(t *testing.T) {
	orig := NewResolverError(ErrUseOfUndeclaredType, token.Token{Line: 2}, "Foo")
	wrapped := WrapError(PhaseAnalyzer, token.Token{Line: 9}, orig)
	if wrapped != orig {
		t.Error("wrapping an existing diagnostic should return it unchanged")
	}
	if wrapped.Token.Line != 2 {
		t.Error("existing position should win over the wrap site")
	}
}
