// Package validation configures the validator behind gin's binding layer:
// JSON field names in errors, the slug rule and localized messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/id"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	id_translations "github.com/go-playground/validator/v10/translations/id"
	"github.com/gosimple/slug"
)

// Validation wraps a configured validator and its translators
type Validation struct {
	validate *validator.Validate
	uni      *ut.UniversalTranslator
	fallback string
}

var (
	ginOnce       sync.Once
	ginValidation *Validation
	ginErr        error
)

// Gin configures gin's shared validator once and returns it
func Gin(fallback string) (*Validation, error) {
	ginOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			ginErr = errors.New("gin binding validator is not go-playground/validator")
			return
		}
		ginValidation, ginErr = New(v, fallback)
	})
	return ginValidation, ginErr
}

// New registers tag names, custom rules and translations on v
func New(v *validator.Validate, fallback string) (*Validation, error) {
	v.RegisterTagNameFunc(fieldName)

	if err := v.RegisterValidation("slug", isSlug); err != nil {
		return nil, fmt.Errorf("register slug rule: %w", err)
	}
	if err := v.RegisterValidation("maxnum", maxNumber); err != nil {
		return nil, fmt.Errorf("register maxnum rule: %w", err)
	}

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, id.New())

	enTrans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(v, enTrans); err != nil {
		return nil, fmt.Errorf("register en translations: %w", err)
	}
	idTrans, _ := uni.GetTranslator("id")
	if err := id_translations.RegisterDefaultTranslations(v, idTrans); err != nil {
		return nil, fmt.Errorf("register id translations: %w", err)
	}

	custom := map[ut.Translator]map[string]string{
		enTrans: {
			"slug":   "{0} must be a valid slug (lowercase letters, digits and dashes)",
			"maxnum": "{0} must not be greater than {1}",
		},
		idTrans: {
			"slug":   "{0} harus berupa slug yang valid (huruf kecil, angka dan tanda hubung)",
			"maxnum": "{0} tidak boleh lebih besar dari {1}",
		},
	}
	for trans, messages := range custom {
		for tag, text := range messages {
			if err := registerTranslation(v, trans, tag, text); err != nil {
				return nil, fmt.Errorf("register %s translation: %w", tag, err)
			}
		}
	}

	return &Validation{validate: v, uni: uni, fallback: fallback}, nil
}

func registerTranslation(v *validator.Validate, trans ut.Translator, tag, text string) error {
	return v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error {
			return t.Add(tag, text, true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, err := t.T(tag, fe.Field(), fe.Param())
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
}

// fieldName reports json (or form) tag names so error keys match the payload
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return field.Name
}

func isSlug(fl validator.FieldLevel) bool {
	return slug.IsSlug(fl.Field().String())
}

// maxNumber bounds a numeric string by the tag parameter. Values that are
// not integers pass, leaving their coercion to the caller.
func maxNumber(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	n, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return true
	}
	return n <= limit
}

// Validate runs the struct rules on obj directly
func (v *Validation) Validate(obj interface{}) error {
	return v.validate.Struct(obj)
}

// FieldErrors turns err into a field -> messages map in locale. It returns
// false when err does not come from struct validation.
func (v *Validation) FieldErrors(err error, locale string) (map[string][]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	trans, found := v.uni.GetTranslator(locale)
	if !found {
		trans, _ = v.uni.GetTranslator(v.fallback)
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], fe.Translate(trans))
	}
	return fields, true
}
