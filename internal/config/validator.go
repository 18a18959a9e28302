package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/widgetry/internal/paging"
	"github.com/alexisbeaulieu97/widgetry/internal/scroll"
	widgetryerrors "github.com/alexisbeaulieu97/widgetry/pkg/errors"
)

// minSettleFrames is the number of animation frames the settle timeout must at least span.
const minSettleFrames = 5

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeNames = map[string]struct{}{"dark": {}, "light": {}}
)

// validatorInstance configures and returns the shared validator, reporting fields by their
// YAML names.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("physics", func(fl validator.FieldLevel) bool {
			_, ok := paging.ParsePhysics(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("axis", func(fl validator.FieldLevel) bool {
			_, ok := scroll.ParseAxis(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			_, ok := themeNames[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return widgetryerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := ValidateStruct(cfg); err != nil {
		return err
	}

	minimum := time.Duration(minSettleFrames) * cfg.FrameInterval()
	if cfg.Paging.SettleTimeout < minimum {
		return widgetryerrors.NewValidationError(
			"paging.settle_timeout",
			fmt.Sprintf("must be at least %s (%d frames at %d fps)", minimum, minSettleFrames, cfg.Scroll.FPS),
			nil,
		)
	}

	return nil
}

// ValidateStruct runs the tag-based validation on any struct and converts the first failure
// into a ValidationError.
func ValidateStruct(v any) error {
	if err := validatorInstance().Struct(v); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlFieldPath(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return widgetryerrors.NewValidationError(field, msg, err)
	}

	return widgetryerrors.NewValidationError("config", err.Error(), err)
}

// yamlFieldPath drops the root struct name from the namespace: "Config.paging.axis" becomes
// "paging.axis".
func yamlFieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
