package validator

import (
	"errors"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-service/internal/domain"
)

const (
	// MaxTitleLength is the title limit in code points.
	MaxTitleLength = 255
	// MaxExcerptLength is the stored excerpt limit in code points.
	MaxExcerptLength = 1000
)

// Validator provides validation methods for post input.
type Validator struct {
	maxImageBytes int64
}

// NewValidator creates a new Validator. maxImageBytes bounds uploaded images.
func NewValidator(maxImageBytes int64) *Validator {
	return &Validator{maxImageBytes: maxImageBytes}
}

// MaxImageBytes returns the configured upload limit.
func (v *Validator) MaxImageBytes() int64 {
	return v.maxImageBytes
}

// ValidatePostFields validates author-supplied post fields and returns a
// *domain.ValidationError on failure.
func (v *Validator) ValidatePostFields(f *domain.PostFields) error {
	err := validation.ValidateStruct(f,
		validation.Field(&f.Title,
			validation.Required.Error("title_required"),
			validation.By(maxRunesRule(MaxTitleLength, "title_too_long")),
		),
		validation.Field(&f.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&f.Excerpt,
			validation.By(maxRunesRule(MaxExcerptLength, "excerpt_too_long")),
		),
	)
	return toValidationError(err)
}

// maxRunesRule creates a validation rule for a max length in code points.
func maxRunesRule(max int, code string) validation.RuleFunc {
	return func(value interface{}) error {
		var s string
		switch v := value.(type) {
		case string:
			s = v
		case *string:
			if v == nil {
				return nil
			}
			s = *v
		default:
			return nil
		}
		if utf8.RuneCountInString(s) > max {
			return validation.NewError(code, code)
		}
		return nil
	}
}

// toValidationError converts ozzo validation errors to a domain.ValidationError.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if !errors.As(err, &ve) {
		return domain.NewValidationError("unknown", err.Error())
	}

	fields := make(map[string]string, len(ve))
	for field, fieldErr := range ve {
		fields[field] = fieldErr.Error()
	}
	return &domain.ValidationError{Fields: fields}
}
