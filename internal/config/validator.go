package config

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/foliokit/folio/internal/theme"
	folioerrors "github.com/foliokit/folio/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_id", func(fl validator.FieldLevel) bool {
			_, ok := theme.Resolve(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return folioerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Publish.Push && cfg.Publish.RepoPath == "" {
		return folioerrors.NewValidationError("publish.repo_path", "required when publish.push is set", nil)
	}

	return nil
}

func convertValidationError(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return folioerrors.NewValidationError("config", err.Error(), err)
	}

	first := errs[0]
	message := fmt.Sprintf("failed on %q validation", first.Tag())
	return folioerrors.NewValidationError(first.Namespace(), message, err)
}
