// Command swifty runs the front end over one source file: lex, parse,
// operator re-sort, then the two-sweep semantic analysis. Diagnostics go
// to stderr (colorized when attached to a terminal); -dump prints the
// typed tree on success.
package main

import (
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/mattn/go-isatty"

	"github.com/funvibe/swifty/internal/analyzer"
	"github.com/funvibe/swifty/internal/config"
	"github.com/funvibe/swifty/internal/lexer"
	"github.com/funvibe/swifty/internal/opresolve"
	"github.com/funvibe/swifty/internal/parser"
	"github.com/funvibe/swifty/internal/pipeline"
	"github.com/funvibe/swifty/internal/prettyprinter"
	"github.com/funvibe/swifty/internal/utils"
)

const (
	colorReset  = "\x1b[0m"
	colorRed    = "\x1b[31m"
	colorYellow = "\x1b[33m"
)

func main() {
	dump := flag.Bool("dump", false, "print the typed tree after analysis")
	flag.Parse()
	defer glog.Flush()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: swifty [-dump] <file"+config.SourceFileExt+">")
		os.Exit(2)
	}
	path := args[0]
	if !utils.IsSourceFile(path) {
		fmt.Fprintf(os.Stderr, "swifty: %s: not a recognized source file\n", path)
		os.Exit(2)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "swifty: %v\n", err)
		os.Exit(1)
	}

	cfg := loadProjectConfig(path)

	ctx := pipeline.NewPipelineContext(string(source))
	ctx.FilePath = path
	ctx.FileHash = fileHash(source)

	glog.V(1).Infof("compiling %s (module %s, hash %s)", path, utils.ExtractModuleName(path), ctx.FileHash)

	p := pipeline.New(
		&lexer.Processor{},
		&parser.Processor{},
		&opresolve.Processor{},
		&analyzer.Processor{},
	)
	ctx = p.Run(ctx)

	exitCode := reportDiagnostics(ctx, cfg)
	if exitCode == 0 && *dump && ctx.AstRoot != nil {
		fmt.Print(prettyprinter.TreeString(ctx.AstRoot, ctx.TypeMap))
	}
	os.Exit(exitCode)
}

func fileHash(source []byte) string {
	sum := sha256.Sum256(source)
	return hex.EncodeToString(sum[:8])
}

func loadProjectConfig(sourcePath string) *config.ProjectConfig {
	found, err := config.FindProjectConfig(filepath.Dir(sourcePath))
	if err != nil || found == "" {
		return config.DefaultProjectConfig()
	}
	cfg, err := config.LoadProjectConfig(found)
	if err != nil {
		fmt.Fprintf(os.Stderr, "swifty: %v\n", err)
		return config.DefaultProjectConfig()
	}
	glog.V(1).Infof("project config: %s", found)
	return cfg
}

func reportDiagnostics(ctx *pipeline.PipelineContext, cfg *config.ProjectConfig) int {
	colorize := isatty.IsTerminal(os.Stderr.Fd())
	failed := false
	for _, diag := range ctx.Errors {
		warning := diag.Code.IsWarning()
		if !warning || cfg.Strict {
			failed = true
		}
		line := diag.Error()
		if colorize {
			if warning {
				line = colorYellow + line + colorReset
			} else {
				line = colorRed + line + colorReset
			}
		}
		fmt.Fprintln(os.Stderr, line)
	}
	if ctx.HasFatal() {
		return 2
	}
	if failed {
		return 1
	}
	return 0
}
