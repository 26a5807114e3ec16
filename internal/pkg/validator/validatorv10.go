package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/shandysiswandi/formcheck/internal/pkg/clock"
)

// Custom tags understood by V10Validator.
const (
	TagPersonName   = "person_name"
	TagBirthDate    = "birth_date"
	TagContactEmail = "contact_email"
	TagPhoneNumber  = "phone_number"
)

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// Validator validates request and dependency structs.
type Validator interface {
	Validate(data any) error
}

// V10Validator implements Validator using go-playground/validator v10.
type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
	clock      clock.Clocker
}

// V10ValidationError is a field-to-message map returned when validation fails.
//
// Keys are the json names of the failing fields.
type V10ValidationError map[string]string

// Error implements the error interface.
func (vs V10ValidationError) Error() string {
	if len(vs) == 0 {
		return "validation error"
	}

	b, err := json.Marshal(vs)
	if err != nil {
		return fmt.Sprintf("validation error (failed to marshal: %v)", err)
	}
	return string(b)
}

// Values returns the field error map.
func (vs V10ValidationError) Values() map[string]string {
	return vs
}

// NewV10Validator constructs a V10Validator with English translations and the
// form field rules. clk supplies "today" for birth_date without a param.
func NewV10Validator(clk clock.Clocker) (*V10Validator, error) {
	if clk == nil {
		clk = clock.New()
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	v := &V10Validator{
		validate:   validate,
		translator: enTrans,
		clock:      clk,
	}

	if err := v.registerFormRules(); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate validates a struct and returns a V10ValidationError on failure.
func (v *V10Validator) Validate(data any) error {
	if err := v.validate.Struct(data); err != nil {
		var validateErrs validator.ValidationErrors
		if !errors.As(err, &validateErrs) {
			return err
		}

		errV10 := make(V10ValidationError)
		for _, fe := range validateErrs {
			if _, exists := errV10[fe.Field()]; exists {
				continue
			}
			errV10[fe.Field()] = fe.Translate(v.translator)
		}

		return errV10
	}

	return nil
}

type formRule struct {
	tag     string
	check   validator.Func
	message func(value string) string
}

func (v *V10Validator) registerFormRules() error {
	rules := []formRule{
		{
			tag:     TagPersonName,
			check:   func(fl validator.FieldLevel) bool { return ValidateName(fieldString(fl)) == "" },
			message: ValidateName,
		},
		{
			tag:   TagBirthDate,
			check: v.checkBirthDate,
			message: func(value string) string {
				if value == "" {
					return MsgDateOfBirthRequired
				}
				return MsgDateOfBirthFuture
			},
		},
		{
			tag:     TagContactEmail,
			check:   func(fl validator.FieldLevel) bool { return ValidateEmail(fieldString(fl)) == "" },
			message: ValidateEmail,
		},
		{
			tag:     TagPhoneNumber,
			check:   func(fl validator.FieldLevel) bool { return ValidatePhoneNumber(fieldString(fl)) == "" },
			message: ValidatePhoneNumber,
		},
	}

	for _, rule := range rules {
		if err := v.validate.RegisterValidation(rule.tag, rule.check); err != nil {
			return err
		}

		if err := v.validate.RegisterTranslation(rule.tag, v.translator,
			func(trans ut.Translator) error {
				return trans.Add(rule.tag, "{0} is invalid", false)
			},
			translateWith(rule.message),
		); err != nil {
			return err
		}
	}

	return nil
}

// checkBirthDate reads "today" from the sibling field named by the tag param,
// falling back to the clock when there is no param or the sibling is empty.
func (v *V10Validator) checkBirthDate(fl validator.FieldLevel) bool {
	today := ""
	if fl.Param() != "" {
		if field, kind, _, found := fl.GetStructFieldOK2(); found && kind == reflect.String {
			today = field.String()
		}
	}
	if today == "" {
		today = clock.Today(v.clock)
	}

	return ValidateDateOfBirth(fieldString(fl), today) == ""
}

func translateWith(message func(string) string) validator.TranslationFunc {
	return func(trans ut.Translator, fe validator.FieldError) string {
		value, ok := fe.Value().(string)
		if !ok {
			t, err := trans.T(fe.Tag(), fe.Field())
			if err != nil {
				slog.Warn("warning: error translating", "FieldError", fe, "error", err)
				return fe.Error()
			}
			return t
		}

		return message(value)
	}
}

func fieldString(fl validator.FieldLevel) string {
	if fl.Field().Kind() != reflect.String {
		return ""
	}
	return fl.Field().String()
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}
