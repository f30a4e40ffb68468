// Package diagnostics defines the coded error/warning set emitted by the
// semantic analysis core and the DiagnosticError value used to report them.
package diagnostics

import (
	"fmt"
	"github.com/funvibe/swifty/internal/token"
)

// Phase records which stage of the front end produced a diagnostic. Only
// PhaseResolver and PhaseAnalyzer are emitted by the core; PhaseLexer and
// PhaseParser belong to the thin lexer/parser harness (internal/lexer,
// internal/parser) this module carries to drive the core end-to-end in
// tests and in cmd/swifty — the lexer reports invalid characters and
// unterminated strings, the parser everything else syntactic.
type Phase string

const (
	PhaseLexer    Phase = "lexer"
	PhaseParser   Phase = "parser"
	PhaseResolver Phase = "resolver"
	PhaseAnalyzer Phase = "analyzer"
)

// ErrorCode is a stable, closed identifier for a diagnostic. Codes are
// never reused or renumbered.
type ErrorCode string

const (
	// Lexer / parser residuals — emitted by the harness, not by the core.
	ErrUnexpectedToken     ErrorCode = "E_UNEXPECTED_TOKEN"
	ErrInvalidCharacter    ErrorCode = "E_INVALID_CHARACTER"
	ErrUnterminatedString  ErrorCode = "E_UNTERMINATED_STRING_LITERAL"

	// Type resolver
	ErrGenericTypeArgumentRequired    ErrorCode = "E_GENERIC_TYPE_ARGUMENT_REQUIRED"
	ErrCannotSpecializeNonGenericType ErrorCode = "E_CANNOT_SPECIALIZE_NON_GENERIC_TYPE"
	ErrTypeArgumentsWithTooMany       ErrorCode = "E_TYPE_ARGUMENTS_WITH_TOO_MANY"
	ErrTypeArgumentsWithInsufficient  ErrorCode = "E_TYPE_ARGUMENTS_WITH_INSUFFICIENT"
	ErrNonProtocolTypeInComposition   ErrorCode = "E_NON_PROTOCOL_TYPE_A_CANNOT_BE_USED_WITHIN_PROTOCOL_COMPOSITION"
	ErrUseOfUndeclaredType            ErrorCode = "E_USE_OF_UNDECLARED_TYPE_1"
	ErrNestedTypeMustBeNonGeneric     ErrorCode = "E_NESTED_TYPE_MUST_BE_NON_GENERIC_AFTER_SPECIALIZATION"

	// Symbol registry / scope
	ErrDefinitionConflict        ErrorCode = "E_DEFINITION_CONFLICT"
	ErrCyclicDeclaration         ErrorCode = "E_CYCLIC_DECLARATION"
	ErrUseOfUnresolvedIdentifier ErrorCode = "E_USE_OF_UNRESOLVED_IDENTIFIER_1"

	// Declaration modifiers
	ErrClassPropertiesOnlyOnType    ErrorCode = "E_CLASS_PROPERTIES_MAY_ONLY_BE_DECLARED_ON_A_TYPE"
	ErrModifierOnlyUsedOnDecl2      ErrorCode = "E_A_MAY_ONLY_BE_USED_ON_B_DECLARATION_2"
	ErrModifierConflict2            ErrorCode = "E_A_CONFLICTS_WITH_B_2"
	ErrInvalidOnClassMethods        ErrorCode = "E_A_ISNT_VALID_ON_METHODS_IN_CLASSES_OR_CLASS_BOUND_PROTOCOLS"
	ErrStaticMethodCannotBeMutating ErrorCode = "E_STATIC_FUNCTIONS_MAY_NOT_BE_DECLARED_MUTATING_OR_NONMUTATING"

	// Value bindings
	ErrCannotConvertExpressionType2   ErrorCode = "E_CANNOT_CONVERT_EXPRESSION_TYPE_2"
	ErrTypeAnnotationMissing          ErrorCode = "E_TYPE_ANNOTATION_MISSING_IN_PATTERN"
	ErrLetRequiresInitializer         ErrorCode = "E_LET_REQUIRES_INITIALIZER"
	ErrProtocolPropertyCannotBeLet    ErrorCode = "E_PROTOCOL_PROPERTIES_MUST_BE_VAR"
	ErrTuplePatternMustMatchTupleType ErrorCode = "E_TUPLE_PATTERN_MUST_MATCH_TUPLE_TYPE_1"
	ErrNestedBindingPatternForbidden  ErrorCode = "E_VAR_LET_NESTED_IN_PATTERN_IS_FORBIDDEN"
	ErrTypedPatternMismatch           ErrorCode = "E_TYPE_ANNOTATION_DOES_NOT_MATCH_A_1"

	// Function bodies / mutation
	ErrMissingReturn                ErrorCode = "E_MISSING_RETURN_IN_A_FUNCTION_EXPECTED_TO_RETURN_A_1"
	ErrCannotAssignToInDeclaration2  ErrorCode = "E_CANNOT_ASSIGN_TO_A_IN_B_2"
	ErrCannotAssignToSelfInMethod1   ErrorCode = "E_CANNOT_ASSIGN_TO_A_IN_A_METHOD_1"
	ErrCannotAssignImmutable         ErrorCode = "E_CANNOT_ASSIGN_TO_VALUE_A_IS_A_LET_CONSTANT_1"

	// Expression typing
	ErrCannotCallValueOfNonFunctionType ErrorCode = "E_CANNOT_CALL_VALUE_OF_NON_FUNCTION_TYPE_1"
	ErrNoOverloadMatches                ErrorCode = "E_NO_OVERLOAD_MATCHES_CALL"
	ErrAmbiguousCall                    ErrorCode = "E_AMBIGUOUS_USE_OF_A_1"
	ErrCannotForceUnwrapNonOptional     ErrorCode = "E_CANNOT_FORCE_UNWRAP_VALUE_OF_NON_OPTIONAL_TYPE_1"
	ErrValueOfOptionalTypeNotUnwrapped  ErrorCode = "E_VALUE_OF_OPTIONAL_TYPE_A_NOT_UNWRAPPED_1"
	ErrMemberNotFound2                  ErrorCode = "E_VALUE_OF_TYPE_A_HAS_NO_MEMBER_B_2"
	ErrInoutArgumentNotLValue           ErrorCode = "E_CANNOT_PASS_IMMUTABLE_VALUE_AS_INOUT_ARGUMENT"

	// Control flow
	ErrConditionNotBool      ErrorCode = "E_CONDITION_MUST_BE_BOOL"
	ErrForInRequiresSequence ErrorCode = "E_FOR_IN_LOOP_REQUIRES_SEQUENCE_1"
	ErrSwitchNotExhaustive   ErrorCode = "E_SWITCH_MUST_BE_EXHAUSTIVE"

	// Internal invariant failures — fatal, abort the unit.
	ErrInternalInvariant ErrorCode = "E_INTERNAL_COMPILER_ERROR_1"

	// Warnings
	WarnCodeAfterReturnNeverExecuted ErrorCode = "W_CODE_AFTER_A_WILL_NEVER_BE_EXECUTED_1"
	WarnUnusedValue                  ErrorCode = "W_RESULT_OF_CALL_IS_UNUSED"
)

var errorTemplates = map[ErrorCode]string{
	ErrUnexpectedToken:    "unexpected token: expected '%s', got '%s'",
	ErrInvalidCharacter:   "invalid character: '%s'",
	ErrUnterminatedString: "unterminated string literal",

	ErrGenericTypeArgumentRequired:    "generic type '%s' requires type arguments",
	ErrCannotSpecializeNonGenericType: "cannot specialize non-generic type '%s'",
	ErrTypeArgumentsWithTooMany:       "type '%s' specialized with too many type arguments",
	ErrTypeArgumentsWithInsufficient:  "type '%s' specialized with insufficient type arguments",
	ErrNonProtocolTypeInComposition:   "non-protocol type '%s' cannot be used within a protocol composition",
	ErrUseOfUndeclaredType:            "use of undeclared type '%s'",
	ErrNestedTypeMustBeNonGeneric:     "nested type '%s' must be non-generic after specialization",

	ErrDefinitionConflict:        "invalid redeclaration of '%s'",
	ErrCyclicDeclaration:         "'%s' used within its own type",
	ErrUseOfUnresolvedIdentifier: "use of unresolved identifier '%s'",

	ErrClassPropertiesOnlyOnType:    "class properties may only be declared on a type",
	ErrModifierOnlyUsedOnDecl2:      "'%s' may only be used on '%s' declarations",
	ErrModifierConflict2:            "'%s' conflicts with '%s'",
	ErrInvalidOnClassMethods:        "'%s' isn't valid on methods in classes or class-bound protocols",
	ErrStaticMethodCannotBeMutating: "static functions may not be declared mutating or nonmutating",

	ErrCannotConvertExpressionType2:   "cannot convert value of type '%s' to expected type '%s'",
	ErrTypeAnnotationMissing:          "type annotation missing in pattern",
	ErrLetRequiresInitializer:         "'let' declarations require an initializer",
	ErrProtocolPropertyCannotBeLet:    "protocols cannot declare stored 'let' properties",
	ErrTuplePatternMustMatchTupleType: "tuple pattern has %s elements, but type has %s elements",
	ErrNestedBindingPatternForbidden:  "'var'/'let' pattern cannot appear nested inside another 'var'/'let' pattern",
	ErrTypedPatternMismatch:           "type annotation does not match inferred type '%s'",

	ErrMissingReturn:                "missing return in a function expected to return '%s'",
	ErrCannotAssignToInDeclaration2:  "cannot assign to '%s' in %s",
	ErrCannotAssignToSelfInMethod1:   "cannot assign to '%s' in a method",
	ErrCannotAssignImmutable:         "cannot assign to value: '%s' is a 'let' constant",

	ErrCannotCallValueOfNonFunctionType: "cannot call value of non-function type '%s'",
	ErrNoOverloadMatches:                "no overload of '%s' matches the supplied arguments",
	ErrAmbiguousCall:                    "ambiguous use of '%s'",
	ErrCannotForceUnwrapNonOptional:     "cannot force unwrap value of non-optional type '%s'",
	ErrValueOfOptionalTypeNotUnwrapped:  "value of optional type '%s' must be unwrapped",
	ErrMemberNotFound2:                  "value of type '%s' has no member '%s'",
	ErrInoutArgumentNotLValue:           "cannot pass an immutable value as an inout argument",

	ErrConditionNotBool:      "condition must be of type 'Bool'",
	ErrForInRequiresSequence: "for-in loop requires '%s' to conform to a sequence-like protocol",
	ErrSwitchNotExhaustive:   "switch must be exhaustive",

	ErrInternalInvariant: "internal compiler error: %s",

	WarnCodeAfterReturnNeverExecuted: "code after '%s' will never be executed",
	WarnUnusedValue:                  "result of call is unused",
}

// DiagnosticError is the single error value the core and its harness emit.
type DiagnosticError struct {
	Code  ErrorCode
	Phase Phase
	Args  []interface{}
	Token token.Token
	File  string
	Fatal bool // internal invariant failure — caller should abort the unit
}

func (e *DiagnosticError) Error() string {
	template, ok := errorTemplates[e.Code]
	if !ok {
		return fmt.Sprintf("unknown error code: %s", e.Code)
	}

	message := fmt.Sprintf(template, e.Args...)

	prefix := ""
	if e.File != "" {
		prefix = fmt.Sprintf("%s: ", e.File)
	}

	phaseStr := ""
	if e.Phase != "" {
		phaseStr = fmt.Sprintf("[%s] ", e.Phase)
	}

	if e.Token.Line > 0 {
		return fmt.Sprintf("%s%serror at %d:%d [%s]: %s", prefix, phaseStr, e.Token.Line, e.Token.Column, e.Code, message)
	}
	return fmt.Sprintf("%s%serror [%s]: %s", prefix, phaseStr, e.Code, message)
}

// IsWarning reports whether code belongs to the W_* band: warnings are
// emitted but never suppress further analysis.
func (c ErrorCode) IsWarning() bool {
	return len(c) > 1 && c[0] == 'W'
}

// New creates a diagnostic for the given phase.
func New(code ErrorCode, phase Phase, tok token.Token, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:  code,
		Phase: phase,
		Token: tok,
		Args:  args,
	}
}

// NewLexerError creates a lexer phase error.
func NewLexerError(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return New(code, PhaseLexer, tok, args...)
}

// NewResolverError creates a type-resolver phase error.
func NewResolverError(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return New(code, PhaseResolver, tok, args...)
}

// NewAnalyzerError creates an analyzer phase error.
func NewAnalyzerError(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return New(code, PhaseAnalyzer, tok, args...)
}

// NewFatal builds an internal-invariant diagnostic: the caller is expected
// to abandon the compilation unit immediately after reporting it.
func NewFatal(tok token.Token, detail string) *DiagnosticError {
	d := New(ErrInternalInvariant, PhaseAnalyzer, tok, detail)
	d.Fatal = true
	return d
}

// WrapError wraps an existing error with phase and location info.
func WrapError(phase Phase, tok token.Token, err error) *DiagnosticError {
	if ce, ok := err.(*DiagnosticError); ok {
		if ce.Phase == "" {
			ce.Phase = phase
		}
		if ce.Token.Line == 0 && tok.Line > 0 {
			ce.Token = tok
		}
		return ce
	}
	return New(ErrInternalInvariant, phase, tok, err.Error())
}
