package validation

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// TagGameVersion validates dash separated version strings such as "1-2-8-0".
const TagGameVersion = "gameversion"

var gameVersionPattern = regexp.MustCompile(`^\d+(-\d+)*$`)

// StructValidator wraps a validator instance with the catalog's custom tags registered.
type StructValidator struct {
	validate *validator.Validate
}

var (
	defaultStructValidator *StructValidator
	defaultOnce            sync.Once
)

// NewStructValidator creates a validator with custom tags registered.
func NewStructValidator() *StructValidator {
	v := validator.New()
	_ = v.RegisterValidation(TagGameVersion, validateGameVersion)
	return &StructValidator{validate: v}
}

// Structs returns the shared validator, creating it on first use.
func Structs() *StructValidator {
	defaultOnce.Do(func() {
		defaultStructValidator = NewStructValidator()
	})
	return defaultStructValidator
}

// ValidateStruct validates a struct using its validate tags. Failures are returned as a
// single error listing each offending field.
func (v *StructValidator) ValidateStruct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	msgs := FormatValidationError(err)
	fields := make([]string, 0, len(msgs))
	for f := range msgs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+msgs[f])
	}
	return fmt.Errorf("%s: %w", strings.Join(parts, "; "), err)
}

// FormatValidationError maps each failing field to a readable message.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}
	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["error"] = err.Error()
		return out
	}
	for _, e := range verrs {
		field := strings.ToLower(e.Namespace())
		switch e.Tag() {
		case "required":
			out[field] = "is required"
		case "oneof":
			out[field] = fmt.Sprintf("must be one of [%s]", e.Param())
		case "gte":
			out[field] = fmt.Sprintf("must be at least %s", e.Param())
		case "lte":
			out[field] = fmt.Sprintf("must be at most %s", e.Param())
		case TagGameVersion:
			out[field] = "must be a dash separated version"
		default:
			out[field] = "is invalid"
		}
	}
	return out
}

func validateGameVersion(fl validator.FieldLevel) bool {
	return gameVersionPattern.MatchString(fl.Field().String())
}
