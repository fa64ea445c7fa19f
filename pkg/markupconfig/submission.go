package markupconfig

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"thirdcoast.systems/videomarkup/pkg/utils/language"
)

// FieldErrors maps field names to the reason their submitted value was
// rejected.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e[name])
	}
	return "invalid settings: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("language", func(fl validator.FieldLevel) bool {
		return language.IsTag(fl.Field().String())
	})
	_ = v.RegisterValidation("texttrack", func(fl validator.FieldLevel) bool {
		return language.IsTextTrack(fl.Field().String())
	})
	return v
}

// ParseSubmission reads submitted values for every field of form on top of
// the form's current settings. All invalid fields are reported together in
// a FieldErrors; valid fields are still applied to the returned settings.
func ParseSubmission(form *Form, values url.Values) (Settings, error) {
	s := form.Settings
	s.Options = make(map[string]string, len(form.Settings.Options))
	for k, v := range form.Settings.Options {
		s.Options[k] = v
	}

	errs := FieldErrors{}
	form.Walk(func(field Field) {
		name := field.Common().Name
		if name == "" {
			return
		}
		raw := values.Get(name)

		switch f := field.(type) {
		case *SelectField:
			if !f.HasOption(raw) {
				errs[name] = "is not a valid choice"
				return
			}
			s.Set(name, raw)
		case *IntegerField:
			n, err := parseDimension(raw, name)
			if err != nil {
				errs[name] = err.Error()
				return
			}
			switch name {
			case KeyMaxWidth:
				s.MaxWidth = n
			case KeyMaxHeight:
				s.MaxHeight = n
			}
		case *TextField:
			v := strings.TrimSpace(raw)
			if f.Validate != "" {
				if err := validate.Var(v, f.Validate); err != nil {
					errs[name] = describe(err)
					return
				}
			}
			if name == KeyEmptyValue {
				s.EmptyValue = v
				return
			}
			s.Set(name, v)
		case *TextareaField:
			if name == KeyMarkupTpl {
				s.MarkupTpl = strings.ReplaceAll(raw, "\r\n", "\n")
			}
		}
	})

	var verrs validator.ValidationErrors
	if err := validate.Struct(s); errors.As(err, &verrs) {
		for _, fe := range verrs {
			if key, ok := settingsKeys[fe.StructField()]; ok {
				if _, seen := errs[key]; !seen {
					errs[key] = describe(validator.ValidationErrors{fe})
				}
			}
		}
	}
	if len(errs) > 0 {
		return s, errs
	}
	return s, nil
}

// settingsKeys maps Settings struct fields to their form field names.
var settingsKeys = map[string]string{
	"EmptyValue": KeyEmptyValue,
	"MaxWidth":   KeyMaxWidth,
	"MaxHeight":  KeyMaxHeight,
}

// parseDimension reads a size in pixels. An empty value restores the default.
func parseDimension(raw, name string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if name == KeyMaxHeight {
			return DefaultMaxHeight, nil
		}
		return DefaultMaxWidth, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("must be a whole number")
	}
	if n < 0 {
		return 0, errors.New("must not be negative")
	}
	return n, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "language":
		return "must be a language code such as en or fr-ca"
	case "texttrack":
		return "must be a language code, a locale or a language code and kind (en.captions)"
	case "hexadecimal", "len":
		return "must be a six digit hexadecimal color without #"
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "gte":
		return "must not be negative"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
