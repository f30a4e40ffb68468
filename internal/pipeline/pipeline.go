package pipeline

import (
	"github.com/golang/glog"
)

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. Stages keep running on ordinary diagnostics
// (later stages are expected to degrade gracefully on a partial tree);
// only a fatal internal-invariant diagnostic stops the chain.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		glog.V(1).Infof("pipeline: entering %T (%d diagnostics so far)", processor, len(ctx.Errors))
		ctx = processor.Process(ctx)
		if ctx.HasFatal() {
			glog.V(1).Infof("pipeline: %T reported a fatal diagnostic, stopping", processor)
			return ctx
		}
	}
	return ctx
}
