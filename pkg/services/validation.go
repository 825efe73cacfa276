package services

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/navarrastar/devfolio/pkg/models"
)

// Rule is a single constraint on a trimmed field value
type Rule struct {
	Message string
	Check   func(value string) bool
}

// FieldRules are evaluated in order; the first failing rule names the field's error
type FieldRules struct {
	Field models.Field
	Rules []Rule
}

// emailGrammar is safe for concurrent use once constructed
var emailGrammar = validator.New()

func minLength(n int, message string) Rule {
	return Rule{Message: message, Check: func(v string) bool { return utf8.RuneCountInString(v) >= n }}
}

func maxLength(n int, message string) Rule {
	return Rule{Message: message, Check: func(v string) bool { return utf8.RuneCountInString(v) <= n }}
}

func emailAddress(message string) Rule {
	return Rule{Message: message, Check: func(v string) bool { return emailGrammar.Var(v, "email") == nil }}
}

// ContactRules is the contact form's rule table
var ContactRules = []FieldRules{
	{Field: models.FieldName, Rules: []Rule{
		minLength(2, "Name must be at least 2 characters"),
		maxLength(100, "Name must be at most 100 characters"),
	}},
	{Field: models.FieldEmail, Rules: []Rule{
		maxLength(255, "Email must be at most 255 characters"),
		emailAddress("Invalid email address"),
	}},
	{Field: models.FieldSubject, Rules: []Rule{
		minLength(3, "Subject must be at least 3 characters"),
		maxLength(150, "Subject must be at most 150 characters"),
	}},
	{Field: models.FieldMessage, Rules: []Rule{
		minLength(20, "Message must be at least 20 characters"),
		maxLength(2000, "Message must be at most 2000 characters"),
	}},
}

// Validator checks form data against a rule table
type Validator struct {
	rules []FieldRules
}

// NewValidator creates a validator for the contact form rule table
func NewValidator() *Validator {
	return &Validator{rules: ContactRules}
}

// ValidateField returns the message of the first rule the trimmed value breaks
func (v *Validator) ValidateField(field models.Field, value string) (string, bool) {
	value = strings.TrimSpace(value)
	for _, fr := range v.rules {
		if fr.Field != field {
			continue
		}
		for _, rule := range fr.Rules {
			if !rule.Check(value) {
				return rule.Message, false
			}
		}
	}
	return "", true
}

// Validate checks every field and collects one message per invalid field.
// The result is empty when the data is valid.
func (v *Validator) Validate(data models.FormData) models.FormErrors {
	errs := models.FormErrors{}
	for _, fr := range v.rules {
		if msg, ok := v.ValidateField(fr.Field, data.Get(fr.Field)); !ok {
			errs[fr.Field] = msg
		}
	}
	return errs
}

// Normalize trims every field the same way validation does
func Normalize(data models.FormData) models.FormData {
	return models.FormData{
		Name:    strings.TrimSpace(data.Name),
		Email:   strings.TrimSpace(data.Email),
		Subject: strings.TrimSpace(data.Subject),
		Message: strings.TrimSpace(data.Message),
	}
}
