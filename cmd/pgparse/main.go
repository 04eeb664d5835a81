package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/pgen/convert"
	"github.com/npillmayer/pgen/driver"
	"github.com/npillmayer/pgen/grammar"
	"github.com/npillmayer/pgen/internal/demo"
	"github.com/npillmayer/pgen/parser"
	"github.com/npillmayer/pgen/scanner"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// settings collects the flags shared by all commands.
type settings struct {
	tables    string
	demoName  string
	trace     string
	collapse  bool
	sexpr     bool
	eval      bool
	maxTokens int
}

var traceKeys = []string{"pgen.cli", "pgen.grammar", "pgen.parser", "pgen.scanner", "pgen.driver"}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	conf := &settings{}
	rootCmd := &cobra.Command{
		Use:   "pgparse",
		Short: "Parse input with table-driven LL grammars",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setTraceLevel(conf.trace)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&conf.tables, "tables", "", "JSON grammar table file")
	rootCmd.PersistentFlags().StringVar(&conf.demoName, "demo", "expr", "built-in demo grammar [expr|anbn]")
	rootCmd.PersistentFlags().StringVar(&conf.trace, "trace", "Error", "trace level [Debug|Info|Error]")
	rootCmd.AddCommand(newParseCmd(conf))
	rootCmd.AddCommand(newReplCmd(conf))
	rootCmd.AddCommand(newDumpCmd(conf))
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level string) {
	l := tracing.TraceLevelFromString(level)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
}

// session is a grammar together with a matching scanner.
type session struct {
	G    *grammar.Grammar
	scan func(input string) (scanner.Tokenizer, error)
	expr bool // G is the expression demo
}

// loadSession loads the grammar from a table file, or selects a demo grammar.
func loadSession(conf *settings) (*session, error) {
	if conf.tables != "" {
		f, err := os.Open(conf.tables)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		g, err := grammar.Load(f)
		if err != nil {
			return nil, fmt.Errorf("cannot load grammar tables from %s: %w", conf.tables, err)
		}
		return &session{G: g, scan: func(input string) (scanner.Tokenizer, error) {
			return scanner.GoTokenizer(conf.tables, strings.NewReader(input)), nil
		}}, nil
	}
	example, ok := demo.Examples[conf.demoName]
	if !ok {
		return nil, fmt.Errorf("unknown demo grammar %q", conf.demoName)
	}
	g, err := example.Grammar()
	if err != nil {
		return nil, err
	}
	tracer().Infof("using demo grammar %s", example.Name)
	return &session{G: g, scan: example.Scan, expr: example.Name == "expr"}, nil
}

// newDriver creates a parse driver for the session, with a converter selected by flags.
func (s *session) newDriver(conf *settings) (*driver.Driver, error) {
	var conv parser.Converter
	switch {
	case conf.eval && !s.expr:
		return nil, fmt.Errorf("flag --eval is supported for the expression demo only")
	case conf.eval:
		conv = demo.Evaluate
	case conf.collapse:
		conv = convert.Collapse
	}
	return driver.New(s.G, conv,
		driver.MaxTokens(conf.maxTokens),
		driver.ScanWith(s.scan),
		driver.SkipTokens(scanner.Comment),
	), nil
}
