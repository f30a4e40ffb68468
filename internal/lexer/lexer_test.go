package lexer

import (
	"testing"

	"github.com/funvibe/swifty/internal/diagnostics"
	"github.com/funvibe/swifty/internal/token"
)

func collect(input string) []token.Token {
	l := New(input, "hash")
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func TestNextTokenBasics(t *testing.T) {
	input := `struct Point { var x: Int = 0 }`
	want := []token.TokenType{
		token.STRUCT, token.IDENT, token.LBRACE,
		token.VAR, token.IDENT, token.COLON, token.IDENT, token.ASSIGN, token.INT,
		token.RBRACE, token.EOF,
	}
	toks := collect(input)
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d: got %s (%q), want %s", i, toks[i].Type, toks[i].Lexeme, w)
		}
	}
}

func TestOperatorTokens(t *testing.T) {
	tests := []struct {
		input string
		want  token.TokenType
	}{
		{"->", token.ARROW},
		{"??", token.NULL_COALESCE},
		{"?.", token.OPTIONAL_CHAIN},
		{"...", token.ELLIPSIS},
		{"..<", token.HALF_OPEN_RANGE},
		{"<<", token.LSHIFT},
		{">>", token.RSHIFT},
		{"**", token.POWER},
		{"==", token.EQ},
		{"!=", token.NOT_EQ},
		{"+=", token.PLUS_ASSIGN},
	}
	for _, tt := range tests {
		toks := collect(tt.input)
		if toks[0].Type != tt.want {
			t.Errorf("%q: got %s, want %s", tt.input, toks[0].Type, tt.want)
		}
	}
}

func TestKeywordsAndPositions(t *testing.T) {
	toks := collect("func f()\nreturn")
	if toks[0].Type != token.FUNC {
		t.Errorf("expected FUNC, got %s", toks[0].Type)
	}
	if toks[0].Line != 1 || toks[0].Column != 1 {
		t.Errorf("func at %d:%d, want 1:1", toks[0].Line, toks[0].Column)
	}
	ret := toks[len(toks)-2]
	if ret.Type != token.RETURN || ret.Line != 2 {
		t.Errorf("return at line %d, want 2", ret.Line)
	}
	for _, tok := range toks {
		if tok.FileHash != "hash" {
			t.Fatalf("token %q missing file hash", tok.Lexeme)
		}
	}
}

func TestStringLiterals(t *testing.T) {
	toks := collect(`"hello\nworld"`)
	if toks[0].Type != token.STRING {
		t.Fatalf("got %s, want STRING", toks[0].Type)
	}
	if toks[0].Literal.(string) != "hello\nworld" {
		t.Errorf("unescaped value = %q", toks[0].Literal)
	}

	toks = collect(`"total: \(a + b)"`)
	if toks[0].Type != token.INTERP_STRING {
		t.Fatalf("got %s, want INTERP_STRING", toks[0].Type)
	}
}

func TestNumbers(t *testing.T) {
	toks := collect("42 3.14 1_000_000 99999999999999999999999999")
	if toks[0].Type != token.INT || toks[0].Literal.(int64) != 42 {
		t.Errorf("42: got %v", toks[0].Literal)
	}
	if toks[1].Type != token.FLOAT || toks[1].Literal.(float64) != 3.14 {
		t.Errorf("3.14: got %v", toks[1].Literal)
	}
	if toks[2].Literal.(int64) != 1000000 {
		t.Errorf("1_000_000: got %v", toks[2].Literal)
	}
	if toks[3].Type != token.INT {
		t.Errorf("wide literal type = %s", toks[3].Type)
	}
	if _, ok := toks[3].Literal.(interface{ String() string }); !ok {
		t.Errorf("wide literal should carry a big value, got %T", toks[3].Literal)
	}
}

func TestComments(t *testing.T) {
	toks := collect("a // line comment\n/* block /* nested */ */ b")
	var idents []string
	for _, tok := range toks {
		if tok.Type == token.IDENT {
			idents = append(idents, tok.Lexeme)
		}
	}
	if len(idents) != 2 || idents[0] != "a" || idents[1] != "b" {
		t.Errorf("identifiers across comments = %v", idents)
	}
}

func TestRangeVersusFloat(t *testing.T) {
	toks := collect("1...3")
	want := []token.TokenType{token.INT, token.ELLIPSIS, token.INT, token.EOF}
	for i, w := range want {
		if toks[i].Type != w {
			t.Fatalf("token %d = %s, want %s", i, toks[i].Type, w)
		}
	}
}

func TestLexicalDiagnostics(t *testing.T) {
	var diags []*diagnostics.DiagnosticError
	l := New("let a = 1 @ 2", "hash")
	l.SetErrorSink(func(d *diagnostics.DiagnosticError) { diags = append(diags, d) })
	for {
		if l.NextToken().Type == token.EOF {
			break
		}
	}
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if diags[0].Code != diagnostics.ErrInvalidCharacter || diags[0].Phase != diagnostics.PhaseLexer {
		t.Errorf("diagnostic = %s/%s, want %s in the lexer phase", diags[0].Code, diags[0].Phase, diagnostics.ErrInvalidCharacter)
	}
	if len(diags[0].Args) != 1 || diags[0].Args[0] != "@" {
		t.Errorf("argument = %v, want [\"@\"]", diags[0].Args)
	}
}

func TestUnterminatedStringDiagnostic(t *testing.T) {
	var diags []*diagnostics.DiagnosticError
	l := New(`let s = "never closed`, "hash")
	l.SetErrorSink(func(d *diagnostics.DiagnosticError) { diags = append(diags, d) })
	for {
		if l.NextToken().Type == token.EOF {
			break
		}
	}
	if len(diags) != 1 || diags[0].Code != diagnostics.ErrUnterminatedString {
		t.Fatalf("diagnostics = %v, want one %s", diags, diagnostics.ErrUnterminatedString)
	}
	if diags[0].Phase != diagnostics.PhaseLexer {
		t.Errorf("phase = %s, want %s", diags[0].Phase, diagnostics.PhaseLexer)
	}
}
