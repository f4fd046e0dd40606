package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tfernandez-dev/menumap/internal/common"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		c := Category(fl.Field().String())
		for _, known := range Categories {
			if c == known {
				return true
			}
		}
		return false
	})
	return v
}

// Validate checks the draft before it is submitted: name and menu link are
// required, the menu link must be a URL, and the category (when set) must be
// one of the known values. Failures wrap common.ErrInvalidDraft.
func (d *Draft) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok {
		msgs := make([]string, 0, len(errs))
		for _, fe := range errs {
			msgs = append(msgs, fmt.Sprintf("%s %s", fe.Field(), validationMessage(fe)))
		}
		return fmt.Errorf("%w: %s", common.ErrInvalidDraft, strings.Join(msgs, "; "))
	}
	return fmt.Errorf("%w: %v", common.ErrInvalidDraft, err)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "category":
		return fmt.Sprintf("must be one of %v", Categories)
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
