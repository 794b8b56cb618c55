package config

import (
	"fmt"
	"slices"
	"time"
)

// Config is the root configuration of the kashi CLI.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Translate TranslateConfig `yaml:"translate"`
	Export    ExportConfig    `yaml:"export"`
	Media     MediaConfig     `yaml:"media"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level    string `yaml:"level"    env:"KASHI_LOG_LEVEL"    env-default:"info"`
	Encoding string `yaml:"encoding" env:"KASHI_LOG_ENCODING" env-default:"console"`
}

// TranslateConfig holds defaults for the LLM translation providers.
type TranslateConfig struct {
	Provider    string `yaml:"provider"    env:"KASHI_TRANSLATE_PROVIDER"    env-default:"gemini"`
	Model       string `yaml:"model"       env:"KASHI_TRANSLATE_MODEL"`
	APIKey      string `yaml:"api_key"     env:"KASHI_API_KEY"`
	BatchSize   int    `yaml:"batch_size"  env:"KASHI_TRANSLATE_BATCH_SIZE"  env-default:"50"`
	Concurrency int    `yaml:"concurrency" env:"KASHI_TRANSLATE_CONCURRENCY" env-default:"3"`
}

// ExportConfig holds defaults for writing parsed lyrics.
type ExportConfig struct {
	Format          string `yaml:"format"             env:"KASHI_EXPORT_FORMAT"             env-default:"json"`
	MaxCharsPerLine int    `yaml:"max_chars_per_line" env:"KASHI_EXPORT_MAX_CHARS_PER_LINE" env-default:"42"`
}

// MediaConfig holds ffprobe settings.
type MediaConfig struct {
	ProbeTimeout time.Duration `yaml:"probe_timeout" env:"KASHI_MEDIA_PROBE_TIMEOUT" env-default:"10s"`
}

var (
	validLevels    = []string{"debug", "info", "warn", "error"}
	validEncodings = []string{"console", "json"}
	validProviders = []string{"gemini", "openai", "anthropic"}
	validFormats   = []string{"json", "lrc", "elrc", "srt", "vtt", "ass"}
)

// Validate checks enumerations and numeric bounds.
func (c *Config) Validate() error {
	if !slices.Contains(validLevels, c.Log.Level) {
		return fmt.Errorf("log.level %q: must be one of %v", c.Log.Level, validLevels)
	}
	if !slices.Contains(validEncodings, c.Log.Encoding) {
		return fmt.Errorf("log.encoding %q: must be one of %v", c.Log.Encoding, validEncodings)
	}
	if !slices.Contains(validProviders, c.Translate.Provider) {
		return fmt.Errorf("translate.provider %q: must be one of %v", c.Translate.Provider, validProviders)
	}
	if c.Translate.BatchSize <= 0 {
		return fmt.Errorf("translate.batch_size must be positive, got %d", c.Translate.BatchSize)
	}
	if c.Translate.Concurrency <= 0 {
		return fmt.Errorf("translate.concurrency must be positive, got %d", c.Translate.Concurrency)
	}
	if !slices.Contains(validFormats, c.Export.Format) {
		return fmt.Errorf("export.format %q: must be one of %v", c.Export.Format, validFormats)
	}
	if c.Export.MaxCharsPerLine <= 0 {
		return fmt.Errorf("export.max_chars_per_line must be positive, got %d", c.Export.MaxCharsPerLine)
	}
	if c.Media.ProbeTimeout <= 0 {
		return fmt.Errorf("media.probe_timeout must be positive, got %s", c.Media.ProbeTimeout)
	}
	return nil
}
