package typesystem

import "testing"

func TestAggregateEquality(t *testing.T) {
	if !Int.Equal(AggregateType{Name: "Int"}) {
		t.Errorf("Int should equal a freshly built AggregateType{Int}")
	}
	if Int.Equal(Bool) {
		t.Errorf("Int should not equal Bool")
	}
}

func TestTupleEqualityIgnoresLabelsAbsence(t *testing.T) {
	a := TupleType{Elements: []Type{Int, Bool}}
	b := TupleType{Elements: []Type{Int, Bool}, Labels: []string{"", ""}}
	if !a.Equal(b) {
		t.Errorf("tuples with no labels and empty-string labels should compare equal")
	}
	c := TupleType{Elements: []Type{Int, Bool}, Labels: []string{"x", "y"}}
	if a.Equal(c) {
		t.Errorf("labeled tuple should not equal unlabeled tuple")
	}
}

func TestFunctionTypeEquality(t *testing.T) {
	f1 := FunctionType{Params: []Type{Int, Bool}, ReturnType: String}
	f2 := FunctionType{Params: []Type{Int, Bool}, ReturnType: String}
	if !f1.Equal(f2) {
		t.Errorf("structurally identical function types should be equal")
	}
	f3 := FunctionType{Params: []Type{Int}, ReturnType: String, IsVariadic: true}
	if f1.Equal(f3) {
		t.Errorf("variadic arity mismatch should not be equal")
	}
}

func TestSpecializedTypeEquality(t *testing.T) {
	box := &ClassType{Name: "Box", TypeParams: []GenericParameterType{{Name: "T", OwnerName: "Box"}}}
	s1 := &SpecializedType{Generic: box, Args: []Type{Int}}
	s2 := &SpecializedType{Generic: box, Args: []Type{Int}}
	s3 := &SpecializedType{Generic: box, Args: []Type{Bool}}
	if !s1.Equal(s2) {
		t.Errorf("Box<Int> should equal a separately built Box<Int>")
	}
	if s1.Equal(s3) {
		t.Errorf("Box<Int> should not equal Box<Bool>")
	}
}

func TestProtocolCompositionDeduplicates(t *testing.T) {
	p := &ProtocolType{Name: "Drawable"}
	composed := NewProtocolComposition([]Type{p, p})
	if composed.Category() != CategoryProtocol {
		t.Errorf("A & A should collapse to the single protocol, got category %s", composed.Category())
	}
}

func TestProtocolCompositionEqualityIgnoresOrder(t *testing.T) {
	a := &ProtocolType{Name: "A"}
	b := &ProtocolType{Name: "B"}
	c1 := NewProtocolComposition([]Type{a, b})
	c2 := NewProtocolComposition([]Type{b, a})
	if !c1.Equal(c2) {
		t.Errorf("A & B should equal B & A")
	}
}

func TestContainsGenericParameters(t *testing.T) {
	param := GenericParameterType{Name: "T", OwnerName: "Box"}
	if !ContainsGenericParameters(param) {
		t.Errorf("a bare generic parameter should report true")
	}
	if ContainsGenericParameters(Int) {
		t.Errorf("Int should report false")
	}
	spec := &SpecializedType{Generic: &ClassType{Name: "Box"}, Args: []Type{param}}
	if !ContainsGenericParameters(spec) {
		t.Errorf("a specialization over an unbound parameter should report true")
	}
	fullySpec := &SpecializedType{Generic: &ClassType{Name: "Box"}, Args: []Type{Int}}
	if ContainsGenericParameters(fullySpec) {
		t.Errorf("a fully specialized type should report false")
	}
}

func TestResolveAliasCollapsesChain(t *testing.T) {
	alias1 := &AliasType{Name: "Num", Target: Int}
	alias2 := &AliasType{Name: "MyNum", Target: alias1}
	if got := ResolveAlias(alias2); got != Int {
		t.Errorf("ResolveAlias should collapse a chain down to Int, got %v", got)
	}
}

func TestOptionalRoundTrip(t *testing.T) {
	opt := NewOptional(Int)
	wrapped, ok := IsOptional(opt)
	if !ok {
		t.Fatalf("NewOptional(Int) should report true from IsOptional")
	}
	if wrapped != Int {
		t.Errorf("wrapped type should be Int, got %v", wrapped)
	}
	if _, ok := IsOptional(Int); ok {
		t.Errorf("Int should not itself be Optional")
	}
}
