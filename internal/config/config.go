// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config assembles types.Config from viper (file, environment and
// bound flags) and validates it before any file is touched.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/pdiddy/polesplit/pkg/types"
)

// Viper keys. Flags bind to these and polesplit.yaml uses the same nesting.
const (
	KeyColumn         = "process.column"
	KeySheet          = "process.sheet"
	KeyKeepOriginal   = "process.keep_original"
	KeyNoDedupe       = "process.no_dedupe"
	KeyKeepJobNumbers = "process.keep_job_numbers"
	KeyNoBackup       = "process.no_backup"
	KeyHighlight      = "process.highlight"
	KeyReport         = "process.report"
	KeyLogLevel       = "logging.level"
	KeyLogFormat      = "logging.format"
)

// reportExts are the extensions report.Write understands.
var reportExts = map[string]bool{".yaml": true, ".yml": true, ".json": true}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("reportpath", func(fl validator.FieldLevel) bool {
		return reportExts[strings.ToLower(filepath.Ext(fl.Field().String()))]
	})
	// Report the yaml key in messages, which is what users write.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FromViper reads every key into a Config. It does not validate.
func FromViper(v *viper.Viper) types.Config {
	return types.Config{
		Process: types.ProcessConfig{
			Column:         v.GetString(KeyColumn),
			Sheet:          v.GetString(KeySheet),
			KeepOriginal:   v.GetBool(KeyKeepOriginal),
			NoDedupe:       v.GetBool(KeyNoDedupe),
			KeepJobNumbers: v.GetBool(KeyKeepJobNumbers),
			NoBackup:       v.GetBool(KeyNoBackup),
			Highlight:      v.GetBool(KeyHighlight),
			Report:         v.GetString(KeyReport),
		},
		Logging: types.LoggingConfig{
			Level:  strings.ToLower(v.GetString(KeyLogLevel)),
			Format: types.LogFormat(strings.ToLower(v.GetString(KeyLogFormat))),
		},
	}
}

// Validate checks cfg and returns one error naming every bad key.
func Validate(cfg types.Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// Load reads and validates the config held by v.
func Load(v *viper.Viper) (types.Config, error) {
	cfg := FromViper(v)
	if err := Validate(cfg); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

func describe(fe validator.FieldError) string {
	key := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s is %q, want one of %s", key, fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "reportpath":
		return fmt.Sprintf("%s %q must end in .yaml, .yml or .json", key, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", key, fe.Tag())
	}
}
