package config

// Config is the merged configuration for the steno engine CLI. Every field
// can be set via config file or environment variable, and every field but
// the Log ones via command-line flag; see parsers.go for precedence.
type Config struct {
	Dictionary  DictionaryConfig  `yaml:"dictionary"`
	Translator  TranslatorConfig  `yaml:"translator"`
	Orthography OrthographyConfig `yaml:"orthography"`
	Output      OutputConfig      `yaml:"output"`
	Log         LogConfig         `yaml:"log"`
}

// DictionaryConfig lists the JSON dictionary files to load, in priority
// order (later paths override earlier ones on key collision).
type DictionaryConfig struct {
	Paths []string `yaml:"paths"`
}

// TranslatorConfig controls the bounded undo history.
type TranslatorConfig struct {
	UndoLength int `yaml:"undo_length"`
}

// OrthographyConfig points at the suffix-inflection override table.
type OrthographyConfig struct {
	RulesPath string `yaml:"rules_path"`
}

// OutputConfig selects the output sink used by the CLI demo.
type OutputConfig struct {
	// Mode is one of "stdout", "text", or "null".
	Mode string `yaml:"mode"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `yaml:"level"`
	Sink  string `yaml:"sink"`
}

// defaults returns the built-in defaults applied before file/env/flag
// overrides, matching the teacher's pattern of a fully zero-value Config
// being filled in progressively by each source.
func defaults() *Config {
	return &Config{
		Translator: TranslatorConfig{UndoLength: 10},
		Output:     OutputConfig{Mode: "stdout"},
		Log:        LogConfig{Level: "info", Sink: "stdout"},
	}
}
