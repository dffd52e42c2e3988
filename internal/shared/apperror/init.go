package apperror

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Init registers field naming and custom rules on gin's validator. Call once
// before serving.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// Report the json name (organization_id), not the Go field name.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("slug", validateSlug)
	}
}

func validateSlug(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}

// ValidSlug reports whether s is lowercase alphanumerics joined by single dashes.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}
