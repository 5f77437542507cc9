package validator

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/stemsi/quiz-backend/internal/model"
)

// TagAnswerIndex is the error tag reported when a question's correct_answer
// does not point into its options.
const TagAnswerIndex = "answer_index"

var (
	once   sync.Once
	engine *govalidator.Validate
	// trans is the singleton English translator for validation errors.
	trans ut.Translator
)

// Setup registers the validator with English translations on Gin's binding engine.
// Safe to call more than once; only the first call has an effect.
func Setup() {
	once.Do(setup)
}

func setup() {
	v, ok := binding.Validator.Engine().(*govalidator.Validate)
	if !ok {
		v = govalidator.New()
		v.SetTagName("binding")
	}

	// Use JSON tag name for field names in error messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterStructValidation(questionAnswerInRange, model.Question{})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)
	_ = v.RegisterTranslation(TagAnswerIndex, trans,
		func(t ut.Translator) error {
			return t.Add(TagAnswerIndex, "{0} must be a valid index into options", true)
		},
		func(t ut.Translator, fe govalidator.FieldError) string {
			msg, _ := t.T(TagAnswerIndex, fe.Field())
			return msg
		},
	)

	engine = v
}

// questionAnswerInRange enforces 0 <= correct_answer < len(options).
// The lower bound is covered by the gte tag on the field.
func questionAnswerInRange(sl govalidator.StructLevel) {
	q, ok := sl.Current().Interface().(model.Question)
	if !ok {
		return
	}
	if q.CorrectAnswer >= len(q.Options) {
		sl.ReportError(q.CorrectAnswer, "correct_answer", "CorrectAnswer", TagAnswerIndex, "")
	}
}

// TranslateErrors takes a binding/validation error and returns a map of
// field name → human-readable error message. If the error is not a
// validation error, it returns a single-key map with "detail".
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}

	fields["detail"] = err.Error()
	return fields
}

// Struct validates s against its binding tags.
// Returns nil on success or a translated field error map on failure.
func Struct(s interface{}) map[string]string {
	Setup()
	if err := engine.Struct(s); err != nil {
		return TranslateErrors(err)
	}
	return nil
}

// Var validates a single value against a tag expression such as "unique=ID".
func Var(field interface{}, tag string) error {
	Setup()
	return engine.Var(field, tag)
}

// BindURI binds and validates path parameters into dst.
// Returns nil on success or a translated field error map on failure.
func BindURI(c *gin.Context, dst interface{}) map[string]string {
	Setup()
	if err := c.ShouldBindUri(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}

// FormatFields renders a field error map as a stable single line.
func FormatFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fields[k])
	}
	return strings.Join(parts, "; ")
}
