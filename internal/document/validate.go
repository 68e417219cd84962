package document

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	folioerrors "github.com/foliokit/folio/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})

	return validateInst
}

// Validate performs schema and cross-field validation on the document.
// Strict validation is an editor/loader concern; the rendering path uses
// Normalize instead and never aborts.
func Validate(doc *Document) error {
	if doc == nil {
		return folioerrors.NewValidationError("document", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[Kind]int, len(doc.Sections))
	for i, sec := range doc.Sections {
		if sec.Kind == "" {
			return folioerrors.NewValidationError(fmt.Sprintf("sections[%d].kind", i), "kind is required", nil)
		}
		if prev, exists := seen[sec.Kind]; exists {
			return folioerrors.NewValidationError(fmt.Sprintf("sections[%d].kind", i),
				fmt.Sprintf("duplicate kind %q (already at index %d)", sec.Kind, prev), nil)
		}
		seen[sec.Kind] = i
	}

	return nil
}

func convertValidationError(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return folioerrors.NewValidationError("", err.Error(), err)
	}

	first := errs[0]
	field := strings.TrimPrefix(first.Namespace(), "Document.")
	return folioerrors.NewValidationError(field,
		fmt.Sprintf("failed %q validation", first.Tag()), err)
}
