package analyzer

import (
	"github.com/golang/glog"

	"github.com/funvibe/swifty/internal/pipeline"
)

// Processor is the pipeline stage that runs both semantic sweeps over the
// parsed tree and publishes the analyzer's results on the context.
type Processor struct{}

func (ap *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil {
		return ctx
	}
	a := New(ctx.Registry, ctx.Interner, ctx.FilePath)
	glog.V(1).Infof("analyzer: declaration sweep over %d declarations", len(ctx.AstRoot.Decls))
	a.AnalyzeDeclarations(ctx.AstRoot)
	glog.V(1).Info("analyzer: body sweep")
	a.AnalyzeBodies(ctx.AstRoot)
	ctx.Errors = append(ctx.Errors, a.Diagnostics()...)
	for node, t := range a.TypeMap() {
		ctx.TypeMap[node] = t
	}
	return ctx
}
