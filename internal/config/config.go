// Package config loads the settings of the nortext command.
//
// Values are layered, lowest precedence first: built-in defaults, an optional
// .env file, NORTEXT_* environment variables and command line flags.
// Environment keys map onto config paths by section:
// NORTEXT_DATASET_DEFAULT_SPEAKER sets dataset.default_speaker.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of the environment variables Load reads.
const EnvPrefix = "NORTEXT_"

type Config struct {
	Log     Log     `koanf:"log"`
	Dataset Dataset `koanf:"dataset"`
}

type Log struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error disabled"`
	JSON  bool   `koanf:"json"`
}

type Dataset struct {
	Input          string `koanf:"input"`
	Output         string `koanf:"output"`
	Workers        int    `koanf:"workers" validate:"min=1,max=256"`
	Examples       int    `koanf:"examples" validate:"min=0"`
	DefaultSpeaker string `koanf:"default_speaker" validate:"required"`
	Separator      string `koanf:"separator" validate:"len=1"`
}

func Default() Config {
	return Config{
		Log: Log{
			Level: "info",
		},
		Dataset: Dataset{
			Input:          "tts_dataset.txt",
			Output:         "tts_dataset_normalized.txt",
			Workers:        4,
			Examples:       10,
			DefaultSpeaker: "1",
			Separator:      "|",
		},
	}
}

// Options controls where Load reads from.
type Options struct {
	// EnvFile is loaded into the process environment before NORTEXT_*
	// variables are read. Variables already set are not overridden.
	EnvFile string
	// Overrides holds values from explicit flags, keyed by config path
	// ("dataset.workers").
	Overrides map[string]any
}

// Load builds the configuration and validates it. Validation failures are
// returned together as Error values joined with errors.Join.
func Load(opts Options) (Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return Config{}, fmt.Errorf("config: loading %s: %w", opts.EnvFile, err)
		}
	}

	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("config: loading defaults: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnvKey,
	}), nil); err != nil {
		return Config{}, fmt.Errorf("config: loading environment: %w", err)
	}

	for key, value := range opts.Overrides {
		if err := k.Set(key, value); err != nil {
			return Config{}, fmt.Errorf("config: setting %s: %w", key, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// transformEnvKey maps NORTEXT_DATASET_DEFAULT_SPEAKER to dataset.default_speaker.
// Variables without a section are dropped.
func transformEnvKey(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	parts := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_'
	})
	if len(parts) < 2 {
		return "", nil
	}
	return parts[0] + "." + strings.Join(parts[1:], "_"), value
}

var validate = validator.New()

// Validate checks cfg against its struct tags and the rules that span
// several fields.
func Validate(cfg Config) error {
	var errs []error

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("config: %w", err)
		}
		for _, fe := range verrs {
			errs = append(errs, newError(keyOf(fe.Namespace()), describe(fe)))
		}
	}

	if sep := cfg.Dataset.Separator; sep != "" && strings.Contains(cfg.Dataset.DefaultSpeaker, sep) {
		errs = append(errs, newError("dataset.default_speaker", fmt.Sprintf("must not contain the separator %q", sep)))
	}

	return errors.Join(errs...)
}

// keyOf turns a validator namespace ("Config.Dataset.DefaultSpeaker") into a
// config path ("dataset.default_speaker").
func keyOf(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = snake(p)
	}
	return strings.Join(parts, ".")
}

func snake(s string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range s {
		if unicode.IsUpper(r) {
			if prevLower {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
			prevLower = false
		} else {
			prevLower = true
		}
		b.WriteRune(r)
	}
	return b.String()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must be set"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fmt.Sprint(fe.Value()))
	case "min":
		return fmt.Sprintf("must be at least %s, got %v", fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("must be at most %s, got %v", fe.Param(), fe.Value())
	case "len":
		return fmt.Sprintf("must be exactly %s character long, got %q", fe.Param(), fmt.Sprint(fe.Value()))
	}
	return fmt.Sprintf("failed %q validation", fe.Tag())
}
