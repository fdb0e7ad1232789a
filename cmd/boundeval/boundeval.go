package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"github.com/ytsao/Marabou/pkg/ast"
	"github.com/ytsao/Marabou/pkg/evaluator"
	"github.com/ytsao/Marabou/pkg/logging"
	"github.com/ytsao/Marabou/pkg/problem"
	"go.uber.org/zap"
)

const (
	exitOK = iota
	exitUsage
	exitInput
	exitEvaluation
)

var version = "v0.0.0"

type options struct {
	problem     string
	trees       []string
	export      string
	printTree   bool
	parallelism int
	showHelp    bool
	showVersion bool
	logging     logging.Parameters
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("boundeval", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.problem, "problem", "p", "", "Path to the YAML problem file with variable bounds and expressions")
	fs.StringSliceVarP(&opts.trees, "tree", "t", nil, "Path to a CBOR encoded expression tree, may be repeated")
	fs.StringVar(&opts.export, "export", "", "Write every expression as a CBOR tree into the given directory")
	fs.BoolVar(&opts.printTree, "print-tree", false, "Print the indented tree of every expression before its result")
	fs.IntVar(&opts.parallelism, "parallel", 1, "Number of expressions evaluated concurrently, 0 means no limit")
	fs.BoolVarP(&opts.showHelp, "help", "h", false, "Print usage information (this message) and quit")
	fs.BoolVarP(&opts.showVersion, "version", "v", false, "Print version information and quit")
	opts.logging.Initialize(fs)
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "usage: boundeval [flags]")
		fs.PrintDefaults()
	}
	return fs
}

func run(ctx context.Context, args []string, fsys afero.Fs, stdout, stderr io.Writer) int {
	opts := &options{}
	fs := newFlagSet(opts, stderr)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if opts.showHelp {
		fs.Usage()
		return exitOK
	}
	if opts.showVersion {
		_, _ = fmt.Fprintf(stdout, "boundeval %s\n", version)
		return exitOK
	}
	if err := opts.logging.Parse(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if opts.problem == "" && len(opts.trees) == 0 {
		fs.Usage()
		return exitUsage
	}
	logger := logging.SetupLogger(opts.logging, stderr)
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	p, err := load(fsys, opts)
	if err != nil {
		log.Errorf("Failed to load problem: %v", err)
		return exitInput
	}
	log.Debugf("Loaded %d variables and %d expressions", len(p.Variables), len(p.Expressions))

	if opts.export != "" {
		if err := problem.ExportTrees(fsys, opts.export, p); err != nil {
			log.Errorf("Failed to export trees: %v", err)
			return exitInput
		}
		log.Infof("Exported %d trees to '%s'", len(p.Expressions), opts.export)
	}

	results, err := evaluator.EvaluateAll(ctx, p.Variables, p.LastLayer, p.Expressions, opts.parallelism)
	if err != nil {
		log.Errorw("Evaluation failed",
			zap.Stringer("kind", evaluator.GetErrorKind(err)),
			zap.Strings("path", evaluator.ErrorPath(err)),
			zap.Error(err),
		)
		return exitEvaluation
	}
	for i, r := range results {
		if opts.printTree {
			_, _ = fmt.Fprintf(stdout, "%s:\n", r.Name)
			if err := ast.Render(stdout, p.Expressions[i].Expr, 2); err != nil {
				log.Errorf("Failed to print tree: %v", err)
				return exitEvaluation
			}
		}
		_, _ = fmt.Fprintf(stdout, "%s: Result: %s\n", r.Name, r.Interval)
	}
	return exitOK
}

func load(fsys afero.Fs, opts *options) (*problem.Problem, error) {
	p := &problem.Problem{Variables: evaluator.VariableBounds{}}
	if opts.problem != "" {
		var err error
		p, err = problem.Load(fsys, opts.problem)
		if err != nil {
			return nil, err
		}
	}
	for _, path := range opts.trees {
		t, err := problem.LoadTree(fsys, path)
		if err != nil {
			return nil, err
		}
		for _, e := range p.Expressions {
			if e.Name == t.Name {
				return nil, errors.Errorf("duplicate expression name '%s' from tree file '%s'", t.Name, path)
			}
		}
		p.Expressions = append(p.Expressions, t)
	}
	return p, nil
}
