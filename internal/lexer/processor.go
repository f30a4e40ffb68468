package lexer

import (
	"github.com/funvibe/swifty/internal/diagnostics"
	"github.com/funvibe/swifty/internal/pipeline"
	"github.com/funvibe/swifty/internal/token"
)

type bufferedLexer struct {
	l      *Lexer
	buffer []token.Token
	pos    int
}

// NewTokenStream wraps a Lexer in the buffered, peekable stream contract
// the parser consumes.
func NewTokenStream(l *Lexer) pipeline.TokenStream {
	return &bufferedLexer{l: l}
}

func (bl *bufferedLexer) Next() token.Token {
	if bl.pos < len(bl.buffer) {
		tok := bl.buffer[bl.pos]
		bl.pos++
		return tok
	}
	return bl.l.NextToken()
}

func (bl *bufferedLexer) Peek(n int) []token.Token {
	for len(bl.buffer)-bl.pos < n {
		tok := bl.l.NextToken()
		bl.buffer = append(bl.buffer, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	end := bl.pos + n
	if end > len(bl.buffer) {
		end = len(bl.buffer)
	}
	return bl.buffer[bl.pos:end]
}

// Processor is the pipeline stage that attaches a token stream for the
// context's source text, stamped with the context's file hash. Lexical
// diagnostics land on the context as the downstream parser pulls tokens.
type Processor struct{}

func (lp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode, ctx.FileHash)
	l.SetErrorSink(func(d *diagnostics.DiagnosticError) {
		ctx.Errors = append(ctx.Errors, d)
	})
	ctx.TokenStream = NewTokenStream(l)
	return ctx
}
