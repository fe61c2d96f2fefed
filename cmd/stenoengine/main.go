// Command stenoengine is a CLI demo of the capture-translate-format-display
// pipeline: "run" replays a scripted stroke source through the engine to an
// output sink; "dict" loads and inspects dictionary files standalone.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"stenoengine/internal/chord"
	"stenoengine/internal/dictionary"
	"stenoengine/internal/engine"
	"stenoengine/internal/machine"
	"stenoengine/internal/machine/fake"
	"stenoengine/internal/metrics"
	"stenoengine/internal/orthography"
	"stenoengine/internal/output"
	"stenoengine/pkg/banner"
	"stenoengine/pkg/config"
	"stenoengine/pkg/logger"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: stenoengine <run|dict> [flags]")
		os.Exit(2)
	}

	switch cmd := os.Args[1]; cmd {
	case "run":
		runCmd(os.Args[2:])
	case "dict":
		dictCmd(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q (want run or dict)\n", cmd)
		os.Exit(2)
	}
}

// loadEffective runs the same load-then-merge sequence as the teacher's
// main: .env, then flags/file/env layered into a single effective config.
func loadEffective(args []string) config.EffectiveConfigResult {
	_ = godotenv.Load(".env")

	flags := config.ParseConfigFlags(args)
	fileCfg, fileExists, err := config.ParseConfigFile(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config file: %v\n", err)
		os.Exit(1)
	}
	envCfg, envRes := config.ParseConfigEnvs()

	eff, err := config.LoadEffectiveConfig(flags, fileCfg, fileExists, envCfg, envRes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build effective config: %v\n", err)
		os.Exit(1)
	}
	return eff
}

// buildEngine constructs the pipeline described by eff: dictionary stack,
// orthography table, output sink, and metrics collector.
func buildEngine(eff config.EffectiveConfigResult, withMetrics bool) *engine.Engine {
	cfg := eff.Config
	e := engine.New()

	if len(cfg.Dictionary.Paths) > 0 {
		if err := e.LoadDictionaries(cfg.Dictionary.Paths...); err != nil {
			fmt.Fprintf(os.Stderr, "loading dictionaries: %v\n", err)
			os.Exit(1)
		}
	}

	if cfg.Orthography.RulesPath != "" {
		t, errs := orthography.LoadTableFile(cfg.Orthography.RulesPath)
		for _, err := range errs {
			logger.Warn("orthography table line skipped", "error", err)
		}
		e.SetOrthographyTable(t)
	}

	if withMetrics {
		e.SetMetrics(metrics.New())
	}

	switch cfg.Output.Mode {
	case "null":
		e.SetOutput(output.NullSink{})
	case "text":
		e.SetOutput(output.NewTextSink())
	default:
		e.SetOutput(output.NewStdoutSink(os.Stdout))
	}

	return e
}

func runCmd(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	script := fs.String("script", "", "path to a script file of space-separated key-sets, one stroke per line (default: stdin)")
	rps := fs.Float64("rps", 8, "strokes per second to replay the script at")
	showBanner := fs.Bool("banner", true, "print the startup banner before running")
	dumpMetrics := fs.Bool("dump-metrics", false, "print collected metrics in Prometheus text format before exiting")
	_ = fs.Parse(args)

	eff := loadEffective(fs.Args())
	logger.Init(eff.Config.Log)

	e := buildEngine(eff, *dumpMetrics)
	e.SetLogStrokes(eff.Config.Log.Level == "debug")

	if *showBanner {
		banner.Print(eff, version)
	}

	scriptText, err := readScript(*script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := newScriptSource(scriptText, *rps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	replay(ctx, src, e)

	if m := e.Metrics(); m != nil {
		fmt.Fprintln(os.Stderr, "--- metrics ---")
		if err := m.WriteText(os.Stderr); err != nil {
			fmt.Fprintf(os.Stderr, "writing metrics: %v\n", err)
		}
	}
}

// replay drives src through e until the script is exhausted or ctx is
// canceled (e.g. by SIGINT/SIGTERM).
func replay(ctx context.Context, src machine.Source, e *engine.Engine) {
	for {
		c, err := src.NextChord(ctx)
		if errors.Is(err, machine.ErrExhausted) {
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "stroke source error: %v\n", err)
			return
		}
		e.ProcessStroke(c)
	}
}

// newScriptSource builds a fake.Source from raw script text. Each line's
// space-separated key tokens are fed to chord.New, which panics on a
// token outside the 24-key alphabet — appropriate deep in the pipeline,
// where a machine driver emitting such a token is a programming error,
// but not here: a script file is ordinary CLI input, so the panic is
// recovered at this boundary and reported like any other fatal input
// error instead of crashing the process.
func newScriptSource(script string, rps float64) (src *fake.Source, err error) {
	defer func() {
		if r := recover(); r != nil {
			src, err = nil, fmt.Errorf("invalid stroke in script: %v", r)
		}
	}()
	return fake.NewFromScript(script, rps), nil
}

func readScript(path string) (string, error) {
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading script: %w", err)
		}
		return string(b), nil
	}
	b, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(b), nil
}

func dictCmd(args []string) {
	fs := flag.NewFlagSet("dict", flag.ExitOnError)
	dict := fs.String("dict", "", "comma-separated list of JSON dictionary files, later entries win")
	check := fs.Bool("check", false, "validate every key in every dictionary against the closed chord alphabet")
	_ = fs.Parse(args)

	if *dict == "" {
		fmt.Fprintln(os.Stderr, "--dict required")
		os.Exit(2)
	}

	paths := splitPaths(*dict)
	d, err := dictionary.LoadStack(paths...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading dictionaries: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("entries:     %d\n", d.Len())
	fmt.Printf("longest key: %d strokes\n", d.LongestKey())

	if *check {
		bad := checkDictionaryKeys(d)
		if bad > 0 {
			fmt.Fprintf(os.Stderr, "%d invalid chord key(s) found\n", bad)
			os.Exit(1)
		}
		fmt.Println("check: ok")
	}
}

// checkDictionaryKeys validates every stroke string in every dictionary
// key against the closed steno key alphabet. A dictionary file loaded
// from disk is user input, not a trusted machine driver, so a bad key is
// reported here as an ordinary fatal diagnostic rather than left to reach
// Chord.New's panic deeper in the pipeline.
func checkDictionaryKeys(d *dictionary.Dictionary) (bad int) {
	for _, key := range d.Keys() {
		for _, stroke := range key {
			if err := chord.ValidateRTFCRE(stroke); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", stroke, err)
				bad++
			}
		}
	}
	return bad
}

func splitPaths(v string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(v); i++ {
		if i == len(v) || v[i] == ',' {
			if i > start {
				out = append(out, v[start:i])
			}
			start = i + 1
		}
	}
	return out
}
