// Package validation holds the form rules for new tweets.
package validation

import (
	"errors"
	"html"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	FieldUser    = "user"
	FieldContent = "content"
)

const (
	MsgContentTooShort = "Your tweet is too short! Add some more!"
	MsgUserTooShort    = "Your name should be at least three characters minimum."
)

var messages = map[string]string{
	FieldContent: MsgContentTooShort,
	FieldUser:    MsgUserTooShort,
}

// tweetFields carries the trimmed values. Field order is report order.
type tweetFields struct {
	Content string `form:"content" validate:"required,min=10"`
	User    string `form:"user"    validate:"required,min=3"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result holds the sanitised values whether or not the input passed.
type Result struct {
	User       string
	Content    string
	Violations []Violation
}

func (r Result) Valid() bool {
	return len(r.Violations) == 0
}

// Messages returns the violation messages in report order.
func (r Result) Messages() []string {
	out := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		out = append(out, v.Message)
	}
	return out
}

// ValidateTweet trims both fields, checks their length in runes and
// HTML-escapes them. Every rule runs, so all violations come back together.
func ValidateTweet(user, content string) Result {
	fields := tweetFields{
		Content: strings.TrimSpace(content),
		User:    strings.TrimSpace(user),
	}
	res := Result{
		User:    html.EscapeString(fields.User),
		Content: html.EscapeString(fields.Content),
	}

	err := validate.Struct(fields)
	if err == nil {
		return res
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError only happens on programmer error
		panic(err)
	}
	seen := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if seen[field] {
			continue
		}
		seen[field] = true
		res.Violations = append(res.Violations, Violation{Field: field, Message: messages[field]})
	}
	return res
}
