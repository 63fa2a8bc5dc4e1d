package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ctruct/internal/trace"
	"ctruct/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "ctruct",
	Short: "C lexical tokenizer",
	Long: `ctruct splits C source files into a flat stream of typed tokens
(kind, byte offset, length), including comments and preprocessor directives.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupCommand,
}

// cleanups выполняются в обратном порядке после завершения команды,
// в том числе при ошибке RunE.
var cleanups []func()

func init() {
	rootCmd.Version = version.Current().String()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics per file")

	pf.String("trace", "", "trace output file ('-' for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage mode (stream|ring|both)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 4096, "ring buffer capacity for ring mode")
	pf.Duration("trace-heartbeat", 0, "heartbeat interval (0 disables)")

	pf.String("cpu-profile", "", "write CPU profile to file")
	pf.String("mem-profile", "", "write heap profile to file")
	pf.String("runtime-trace", "", "write Go runtime trace to file")
}

// main executes the root command and exits with status 1 on error.
func main() {
	err := rootCmd.Execute()
	if err != nil {
		dumpTraceRing()
	}
	for _, fn := range slices.Backward(cleanups) {
		fn()
	}
	if err != nil {
		os.Exit(1)
	}
}

func setupCommand(cmd *cobra.Command, _ []string) error {
	if err := applyColorFlag(cmd); err != nil {
		return err
	}
	stopTrace, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	cleanups = append(cleanups, stopTrace)
	stopProf, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	cleanups = append(cleanups, stopProf)
	return nil
}

// dumpTraceRing выводит последние события ring-трассировщика при сбое команды.
func dumpTraceRing() {
	ring := trace.FindRing(activeTracer)
	if ring == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "trace: last events before failure:")
	if err := ring.Dump(os.Stderr, trace.FormatText); err != nil {
		fmt.Fprintf(os.Stderr, "trace: dump error: %v\n", err)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
