package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// Flags holds parsed command-line flag values and which were explicitly set.
type Flags struct {
	Dictionary  string
	UndoLength  int
	Orthography string
	OutputMode  string
	Config      string
	Set         map[string]bool
}

// EnvResult records which environment variables contributed to the
// effective config, for diagnostics in the startup banner.
type EnvResult struct {
	Used bool
}

// EffectiveConfigResult is the outcome of merging defaults, file, env, and
// flags into a single Config, plus which sources actually contributed.
type EffectiveConfigResult struct {
	Config *Config
	Source string // e.g. "defaults+file+flags"
}

// ParseConfigFlags parses command-line flags for the stenoengine CLI.
func ParseConfigFlags(args []string) Flags {
	fs := flag.NewFlagSet("stenoengine", flag.ContinueOnError)
	dict := fs.String("dict", "", "comma-separated list of JSON dictionary files, later entries win")
	undo := fs.Int("undo-length", 0, "bounded undo history length")
	orth := fs.String("orthography", "", "path to the suffix-inflection override table")
	output := fs.String("output", "", "output sink: stdout, text, or null")
	cfgPath := fs.String("config", "./stenoengine.yaml", "path to config file")
	_ = fs.Parse(args)

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	return Flags{
		Dictionary:  *dict,
		UndoLength:  *undo,
		Orthography: *orth,
		OutputMode:  *output,
		Config:      *cfgPath,
		Set:         set,
	}
}

// ParseConfigFile resolves the config path and loads the YAML file. It
// returns the parsed config, whether the file was present, and an error for
// fatal parsing problems (a missing file is not fatal).
func ParseConfigFile(flags Flags) (*Config, bool, error) {
	cfg, err := Load(flags.Config)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, false, nil
		}
		return nil, false, err
	}
	return cfg, true, nil
}

// ParseConfigEnvs reads STENOENGINE_* environment variables into a fresh
// Config, alongside an EnvResult noting whether any were set.
func ParseConfigEnvs() (*Config, EnvResult) {
	envs := map[string]string{
		"DICTIONARY_PATHS": os.Getenv("STENOENGINE_DICTIONARY_PATHS"),
		"UNDO_LENGTH":       os.Getenv("STENOENGINE_UNDO_LENGTH"),
		"ORTHOGRAPHY_PATH":  os.Getenv("STENOENGINE_ORTHOGRAPHY_PATH"),
		"OUTPUT_MODE":       os.Getenv("STENOENGINE_OUTPUT_MODE"),
		"LOG_LEVEL":         os.Getenv("STENOENGINE_LOG_LEVEL"),
		"LOG_SINK":          os.Getenv("STENOENGINE_LOG_SINK"),
	}
	used := false
	for _, v := range envs {
		if v != "" {
			used = true
			break
		}
	}

	envCfg := &Config{}
	if v := envs["DICTIONARY_PATHS"]; v != "" {
		envCfg.Dictionary.Paths = splitList(v)
	}
	if v := envs["UNDO_LENGTH"]; v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			envCfg.Translator.UndoLength = n
		}
	}
	envCfg.Orthography.RulesPath = envs["ORTHOGRAPHY_PATH"]
	envCfg.Output.Mode = envs["OUTPUT_MODE"]
	envCfg.Log.Level = envs["LOG_LEVEL"]
	envCfg.Log.Sink = envs["LOG_SINK"]

	return envCfg, EnvResult{Used: used}
}

// LoadEffectiveConfig merges defaults, file config, env config, and flags
// (in increasing order of precedence) into a single effective Config.
func LoadEffectiveConfig(flags Flags, fileCfg *Config, fileExists bool, envCfg *Config, envRes EnvResult) (EffectiveConfigResult, error) {
	eff := defaults()
	var sources []string
	sources = append(sources, "defaults")

	if fileExists && fileCfg != nil {
		mergeInto(eff, fileCfg)
		sources = append(sources, "file")
	}
	if envRes.Used {
		mergeInto(eff, envCfg)
		sources = append(sources, "env")
	}

	flagCfg := &Config{}
	flagUsed := false
	if flags.Set["dict"] {
		flagCfg.Dictionary.Paths = splitList(flags.Dictionary)
		flagUsed = true
	}
	if flags.Set["undo-length"] {
		flagCfg.Translator.UndoLength = flags.UndoLength
		flagUsed = true
	}
	if flags.Set["orthography"] {
		flagCfg.Orthography.RulesPath = flags.Orthography
		flagUsed = true
	}
	if flags.Set["output"] {
		flagCfg.Output.Mode = flags.OutputMode
		flagUsed = true
	}
	if flagUsed {
		mergeInto(eff, flagCfg)
		sources = append(sources, "flags")
	}

	return EffectiveConfigResult{Config: eff, Source: strings.Join(sources, "+")}, nil
}

// mergeInto overlays non-zero fields of src onto dst.
func mergeInto(dst, src *Config) {
	if len(src.Dictionary.Paths) > 0 {
		dst.Dictionary.Paths = src.Dictionary.Paths
	}
	if src.Translator.UndoLength > 0 {
		dst.Translator.UndoLength = src.Translator.UndoLength
	}
	if src.Orthography.RulesPath != "" {
		dst.Orthography.RulesPath = src.Orthography.RulesPath
	}
	if src.Output.Mode != "" {
		dst.Output.Mode = src.Output.Mode
	}
	if src.Log.Level != "" {
		dst.Log.Level = src.Log.Level
	}
	if src.Log.Sink != "" {
		dst.Log.Sink = src.Log.Sink
	}
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
