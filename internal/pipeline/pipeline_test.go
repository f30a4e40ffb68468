package pipeline

import (
	"testing"

	"github.com/funvibe/swifty/internal/diagnostics"
	"github.com/funvibe/swifty/internal/token"
)

type recordingStage struct {
	name string
	log  *[]string
	emit *diagnostics.DiagnosticError
}

func (s *recordingStage) Process(ctx *PipelineContext) *PipelineContext {
	*s.log = append(*s.log, s.name)
	if s.emit != nil {
		ctx.Errors = append(ctx.Errors, s.emit)
	}
	return ctx
}

func TestStagesRunInOrder(t *testing.T) {
	var log []string
	p := New(
		&recordingStage{name: "lex", log: &log},
		&recordingStage{name: "parse", log: &log},
		&recordingStage{name: "analyze", log: &log},
	)
	p.Run(NewPipelineContext("source"))
	if len(log) != 3 || log[0] != "lex" || log[2] != "analyze" {
		t.Errorf("stage order = %v", log)
	}
}

func TestOrdinaryDiagnosticsDoNotStopTheChain(t *testing.T) {
	var log []string
	diag := diagnostics.NewAnalyzerError(diagnostics.ErrUseOfUnresolvedIdentifier, token.Token{}, "x")
	p := New(
		&recordingStage{name: "first", log: &log, emit: diag},
		&recordingStage{name: "second", log: &log},
	)
	ctx := p.Run(NewPipelineContext(""))
	if len(log) != 2 {
		t.Errorf("later stages should still run, log = %v", log)
	}
	if ctx.HasFatal() {
		t.Error("ordinary diagnostic misreported as fatal")
	}
}

func TestFatalDiagnosticStopsTheChain(t *testing.T) {
	var log []string
	p := New(
		&recordingStage{name: "first", log: &log, emit: diagnostics.NewFatal(token.Token{}, "broken invariant")},
		&recordingStage{name: "second", log: &log},
	)
	ctx := p.Run(NewPipelineContext(""))
	if len(log) != 1 {
		t.Errorf("fatal should stop the chain, log = %v", log)
	}
	if !ctx.HasFatal() {
		t.Error("fatal diagnostic not reported by HasFatal")
	}
}
