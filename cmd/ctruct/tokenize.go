package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ctruct/internal/diag"
	"ctruct/internal/diagfmt"
	"ctruct/internal/driver"
	"ctruct/internal/observ"
	"ctruct/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file|dir>",
	Short: "Tokenize a C source file or directory",
	Long: `Tokenize breaks C source into typed tokens (kind, offset, length).
A directory is walked recursively; matching files are tokenized in parallel
and reported in sorted order.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

// errHadErrors сигнализирует ненулевой код выхода без повторного вывода.
var errHadErrors = errors.New("tokenization finished with errors")

func init() {
	f := tokenizeCmd.Flags()
	f.String("format", "pretty", "output format (pretty|json|msgpack)")
	f.String("diag-format", "pretty", "diagnostics format (pretty|short|json)")
	f.String("path-mode", "auto", "path display (auto|absolute|relative|basename)")
	f.Bool("raw", false, "load files byte-for-byte (keep carriage returns and BOM)")
	f.Bool("no-merge", false, "skip the prefix merge pass (debugging aid)")
	f.Int("jobs", 0, "parallel workers for directories (0 = GOMAXPROCS)")
	f.StringSlice("ext", nil, "file extensions for directories (default .c,.h)")
	f.String("ui", "auto", "progress UI for directories (auto|on|off)")
	f.Bool("cache", false, "use the on-disk token cache")
	f.Bool("no-cache", false, "disable the on-disk token cache")
	f.Bool("positions", true, "include line/col in JSON and msgpack output")
	f.Bool("text", true, "include lexemes in JSON and msgpack output")
	f.Int("width", 48, "max lexeme width in pretty output (0 = unlimited)")
}

type outputFormat string

const (
	outputPretty  outputFormat = "pretty"
	outputJSON    outputFormat = "json"
	outputMsgpack outputFormat = "msgpack"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case outputPretty, outputJSON, outputMsgpack:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected pretty|json|msgpack)", s)
	}
}

// tokenizeSettings объединяет флаги и ctruct.toml; флаги имеют приоритет.
type tokenizeSettings struct {
	format     outputFormat
	diagFormat string
	pathMode   diagfmt.PathMode
	positions  bool
	text       bool
	width      int
	ui         uiMode
	quiet      bool
	timings    bool
	useCache   bool
	cacheDir   string
	driver     driver.Options
}

func readTokenizeSettings(cmd *cobra.Command, target string) (*tokenizeSettings, error) {
	cfg := defaultProjectConfig()
	manifest, ok, err := loadProjectManifest(target)
	if err != nil {
		return nil, err
	}
	if ok {
		cfg = manifest.Config
	}

	flags := cmd.Flags()
	root := cmd.Root().PersistentFlags()
	s := &tokenizeSettings{}

	formatStr := cfg.Tokenize.Format
	if flags.Changed("format") || formatStr == "" {
		if formatStr, err = flags.GetString("format"); err != nil {
			return nil, fmt.Errorf("failed to get format flag: %w", err)
		}
	}
	if s.format, err = parseOutputFormat(formatStr); err != nil {
		return nil, err
	}

	if s.diagFormat, err = flags.GetString("diag-format"); err != nil {
		return nil, fmt.Errorf("failed to get diag-format flag: %w", err)
	}
	switch s.diagFormat {
	case "pretty", "short", "json":
	default:
		return nil, fmt.Errorf("unknown diag format %q (expected pretty|short|json)", s.diagFormat)
	}

	pathModeStr, err := flags.GetString("path-mode")
	if err != nil {
		return nil, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	var valid bool
	if s.pathMode, valid = diagfmt.ParsePathMode(pathModeStr); !valid {
		return nil, fmt.Errorf("unknown path mode %q", pathModeStr)
	}

	if s.positions, err = flags.GetBool("positions"); err != nil {
		return nil, fmt.Errorf("failed to get positions flag: %w", err)
	}
	if s.text, err = flags.GetBool("text"); err != nil {
		return nil, fmt.Errorf("failed to get text flag: %w", err)
	}
	if s.width, err = flags.GetInt("width"); err != nil {
		return nil, fmt.Errorf("failed to get width flag: %w", err)
	}
	uiStr, err := flags.GetString("ui")
	if err != nil {
		return nil, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if s.ui, err = readUIMode(uiStr); err != nil {
		return nil, err
	}
	if s.quiet, err = root.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = root.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}

	opts := &s.driver
	if opts.MaxDiagnostics, err = root.GetInt("max-diagnostics"); err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if opts.Raw, err = flags.GetBool("raw"); err != nil {
		return nil, fmt.Errorf("failed to get raw flag: %w", err)
	}

	opts.NoMerge = !cfg.Tokenize.MergePrefixes
	if flags.Changed("no-merge") {
		noMerge, err := flags.GetBool("no-merge")
		if err != nil {
			return nil, fmt.Errorf("failed to get no-merge flag: %w", err)
		}
		opts.NoMerge = noMerge
	}

	opts.Jobs = cfg.Tokenize.Jobs
	if flags.Changed("jobs") {
		if opts.Jobs, err = flags.GetInt("jobs"); err != nil {
			return nil, fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}

	opts.Extensions = normalizeExtensions(cfg.Tokenize.Extensions)
	if flags.Changed("ext") {
		exts, err := flags.GetStringSlice("ext")
		if err != nil {
			return nil, fmt.Errorf("failed to get ext flag: %w", err)
		}
		opts.Extensions = normalizeExtensions(exts)
	}

	s.useCache = cfg.Cache.Enabled
	if ok {
		s.cacheDir = manifest.cacheDir()
	}
	if useCache, _ := flags.GetBool("cache"); useCache {
		s.useCache = true
	}
	if noCache, _ := flags.GetBool("no-cache"); noCache {
		s.useCache = false
	}
	return s, nil
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if !slices.Contains(out, ext) {
			out = append(out, ext)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func openCache(s *tokenizeSettings) (*driver.DiskCache, error) {
	if !s.useCache {
		return nil, nil
	}
	if s.cacheDir != "" {
		return driver.OpenDiskCacheAt(s.cacheDir)
	}
	return driver.OpenDiskCache("ctruct")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	target := args[0]
	settings, err := readTokenizeSettings(cmd, target)
	if err != nil {
		return err
	}
	if settings.driver.Cache, err = openCache(settings); err != nil {
		// кеш необязателен: продолжаем без него
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: token cache disabled: %v\n", err)
	}
	if settings.timings {
		settings.driver.Timer = observ.NewTimer()
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("tokenize: %w", err)
	}
	if info.IsDir() {
		return runTokenizeDir(cmd, target, settings)
	}
	return runTokenizeFile(cmd, target, settings)
}

func runTokenizeFile(cmd *cobra.Command, path string, s *tokenizeSettings) error {
	result, err := driver.Tokenize(cmd.Context(), path, s.driver)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	results := []driver.FileResult{result.FileResult}
	return report(cmd, result.FileSet, results, "", s, 0)
}

func runTokenizeDir(cmd *cobra.Command, dir string, s *tokenizeSettings) error {
	start := time.Now()
	var (
		fileSet *source.FileSet
		results []driver.FileResult
		err     error
	)
	if shouldUseTUI(s.ui) && !s.quiet {
		files, listErr := driver.ListSources(dir, s.driver.Extensions)
		if listErr != nil {
			return listErr
		}
		fileSet, results, err = tokenizeDirWithUI(cmd.Context(), "tokenize "+dir, dir, files, s.driver)
	} else {
		fileSet, results, err = driver.TokenizeDir(cmd.Context(), dir, s.driver)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	return report(cmd, fileSet, results, dir, s, time.Since(start))
}

// report печатает токены в stdout, диагностики и сводку в stderr.
func report(cmd *cobra.Command, fs *source.FileSet, results []driver.FileResult, baseDir string, s *tokenizeSettings, elapsed time.Duration) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	all := mergeBags(results)
	if s.driver.Timer != nil && s.diagFormat == "json" {
		driver.AppendTimingDiagnostic(all, "tokenize", baseDir, s.driver.Timer.Report())
	}
	if err := printDiagnostics(errOut, all, fs, s); err != nil {
		return err
	}
	if err := printTokens(out, fs, results, baseDir, s); err != nil {
		return err
	}

	if s.driver.Timer != nil && s.diagFormat != "json" {
		fmt.Fprint(errOut, s.driver.Timer.Summary())
	}
	if baseDir != "" && !s.quiet {
		printSummary(errOut, driver.Summarize(results, elapsed))
	}
	if all.HasErrors() {
		return errHadErrors
	}
	return nil
}

func mergeBags(results []driver.FileResult) *diag.Bag {
	total := 1
	for i := range results {
		if results[i].Bag != nil {
			total += results[i].Bag.Len()
		}
	}
	all := diag.NewBag(total)
	for i := range results {
		all.Merge(results[i].Bag)
	}
	all.Sort()
	return all
}

func printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, s *tokenizeSettings) error {
	if bag.Len() == 0 && bag.Dropped() == 0 {
		return nil
	}
	switch s.diagFormat {
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         s.pathMode,
			IncludeNotes:     true,
			IncludeFixes:     true,
		})
	case "short":
		_, err := io.WriteString(w, diag.FormatShortDiagnostics(bag.Items(), fs, !s.quiet))
		return err
	default:
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     !color.NoColor,
			PathMode:  s.pathMode,
			ShowNotes: !s.quiet,
			ShowFixes: !s.quiet,
		})
		return nil
	}
}

func printTokens(w io.Writer, fs *source.FileSet, results []driver.FileResult, baseDir string, s *tokenizeSettings) error {
	opts := diagfmt.TokenOpts{
		Color:     !color.NoColor,
		PathMode:  s.pathMode,
		BaseDir:   baseDir,
		Positions: s.positions,
		Text:      s.text,
		Width:     s.width,
	}
	switch s.format {
	case outputJSON, outputMsgpack:
		outputs := make([]diagfmt.FileTokensOutput, 0, len(results))
		for i := range results {
			r := &results[i]
			outputs = append(outputs, diagfmt.BuildTokensOutput(fs.Get(r.FileID), r.Tokens, r.Consumed, r.Truncated, opts))
		}
		if s.format == outputJSON {
			return diagfmt.FormatTokensJSON(w, outputs)
		}
		return diagfmt.FormatTokensMsgpack(w, outputs)
	default:
		for i := range results {
			r := &results[i]
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if err := diagfmt.FormatTokensPretty(w, fs.Get(r.FileID), r.Tokens, opts); err != nil {
				return err
			}
		}
		return nil
	}
}

func printSummary(w io.Writer, s driver.Summary) {
	fmt.Fprintf(w, "%d files, %d tokens", s.Files, s.Tokens)
	if s.Cached > 0 {
		fmt.Fprintf(w, ", %d cached", s.Cached)
	}
	if s.Truncated > 0 {
		fmt.Fprintf(w, ", %d truncated", s.Truncated)
	}
	if s.Errors > 0 {
		fmt.Fprintf(w, ", %d with errors", s.Errors)
	}
	fmt.Fprintf(w, " in %.1f ms\n", toMillis(s.Elapsed))
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
