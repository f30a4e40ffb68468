package opresolve

import (
	"github.com/funvibe/swifty/internal/pipeline"
)

// Processor is the pipeline stage that re-sorts the parser's flat
// operator trees into precedence-correct shape before analysis.
type Processor struct{}

func (op *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot != nil {
		Resolve(ctx.AstRoot)
	}
	return ctx
}
