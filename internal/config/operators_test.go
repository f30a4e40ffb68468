package config

import "testing"

func TestLookupOperatorByFixity(t *testing.T) {
	minusInfix := LookupOperator("-", FixityInfix)
	minusPrefix := LookupOperator("-", FixityPrefix)
	if minusInfix == nil || minusPrefix == nil {
		t.Fatal("both fixities of '-' should be registered")
	}
	if minusInfix.Precedence == minusPrefix.Precedence {
		t.Error("infix and prefix '-' should sit at different precedence levels")
	}
}

func TestPrecedenceOrdering(t *testing.T) {
	pairs := [][2]string{
		{"||", "&&"},
		{"&&", "=="},
		{"==", "+"},
		{"+", "*"},
		{"*", "**"},
		{"??", "||"},
	}
	for _, pair := range pairs {
		lo := LookupOperator(pair[0], FixityInfix)
		hi := LookupOperator(pair[1], FixityInfix)
		if lo == nil || hi == nil {
			t.Fatalf("missing table entry for %v", pair)
		}
		if lo.Precedence >= hi.Precedence {
			t.Errorf("%q (%d) should bind looser than %q (%d)", pair[0], lo.Precedence, pair[1], hi.Precedence)
		}
	}
}

func TestRegisterOperatorOverride(t *testing.T) {
	original := len(AllOperators)
	defer func() { AllOperators = AllOperators[:original] }()

	// '&&' does not allow overriding; the table must keep the builtin row.
	RegisterOperator("&&", "infix", 1, "right")
	if got := LookupOperator("&&", FixityInfix); got.Precedence != PrecLogicalAnd {
		t.Errorf("&& was overridden to precedence %d", got.Precedence)
	}

	// a fresh spelling registers and resolves
	RegisterOperator("<>", "infix", PrecAdditive, "left")
	got := LookupOperator("<>", FixityInfix)
	if got == nil || got.Associativity != AssocLeft {
		t.Fatalf("user operator not registered: %+v", got)
	}

	// an overridable builtin may be redefined, later entry winning
	RegisterOperator("**", "infix", 3, "left")
	if got := LookupOperator("**", FixityInfix); got.Precedence != 3 {
		t.Errorf("** override not visible, precedence = %d", got.Precedence)
	}
}

func TestBuiltinTables(t *testing.T) {
	if GetPrimitiveTypeInfo("Int") == nil || GetPrimitiveTypeInfo("Never") == nil {
		t.Error("primitive table incomplete")
	}
	if info := GetGenericTypeInfo("Dictionary"); info == nil || info.Arity != 2 {
		t.Errorf("Dictionary arity = %+v", info)
	}
	if p := GetProtocolInfo("Comparable"); p == nil || len(p.SuperProtocols) != 1 {
		t.Errorf("Comparable super protocols = %+v", p)
	}
}
