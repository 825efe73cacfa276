package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/navarrastar/devfolio/pkg/models"
)

func validForm() models.FormData {
	return models.FormData{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Hello there",
		Message: "This is a sufficiently long test message for validation.",
	}
}

func TestValidateField(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		field   models.Field
		value   string
		wantErr string
	}{
		{"name too short", models.FieldName, "J", "Name must be at least 2 characters"},
		{"name too short after trim", models.FieldName, "  J  ", "Name must be at least 2 characters"},
		{"name minimum", models.FieldName, "Jo", ""},
		{"name maximum", models.FieldName, strings.Repeat("n", 100), ""},
		{"name too long", models.FieldName, strings.Repeat("n", 101), "Name must be at most 100 characters"},
		{"name counts characters not bytes", models.FieldName, "Zoë", ""},

		{"email malformed", models.FieldEmail, "not-an-email", "Invalid email address"},
		{"email empty", models.FieldEmail, "", "Invalid email address"},
		{"email short domain", models.FieldEmail, "a@b.co", ""},
		{"email surrounded by spaces", models.FieldEmail, "  jane@example.com  ", ""},
		{"email too long", models.FieldEmail, strings.Repeat("a", 250) + "@b.com", "Email must be at most 255 characters"},

		{"subject too short", models.FieldSubject, "Hi", "Subject must be at least 3 characters"},
		{"subject minimum", models.FieldSubject, "Hey", ""},
		{"subject maximum", models.FieldSubject, strings.Repeat("s", 150), ""},
		{"subject too long", models.FieldSubject, strings.Repeat("s", 151), "Subject must be at most 150 characters"},

		{"message too short", models.FieldMessage, strings.Repeat("m", 19), "Message must be at least 20 characters"},
		{"message short once trimmed", models.FieldMessage, " " + strings.Repeat("m", 19) + "  ", "Message must be at least 20 characters"},
		{"message exactly 20", models.FieldMessage, strings.Repeat("m", 20), ""},
		{"message exactly 20 once trimmed", models.FieldMessage, "\n " + strings.Repeat("m", 20) + "\t", ""},
		{"message multibyte 20", models.FieldMessage, strings.Repeat("é", 20), ""},
		{"message maximum", models.FieldMessage, strings.Repeat("m", 2000), ""},
		{"message multibyte maximum", models.FieldMessage, strings.Repeat("é", 2000), ""},
		{"message too long", models.FieldMessage, strings.Repeat("m", 2001), "Message must be at most 2000 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := v.ValidateField(tt.field, tt.value)
			assert.Equal(t, tt.wantErr == "", ok)
			assert.Equal(t, tt.wantErr, msg)
		})
	}
}

func TestValidate(t *testing.T) {
	v := NewValidator()

	t.Run("valid form has no errors", func(t *testing.T) {
		assert.Empty(t, v.Validate(validForm()))
	})

	t.Run("collects every invalid field", func(t *testing.T) {
		errs := v.Validate(models.FormData{})
		assert.Equal(t, models.FormErrors{
			models.FieldName:    "Name must be at least 2 characters",
			models.FieldEmail:   "Invalid email address",
			models.FieldSubject: "Subject must be at least 3 characters",
			models.FieldMessage: "Message must be at least 20 characters",
		}, errs)
	})

	t.Run("valid fields carry no message", func(t *testing.T) {
		data := validForm()
		data.Email = "not-an-email"

		errs := v.Validate(data)
		assert.Len(t, errs, 1)
		assert.Equal(t, "Invalid email address", errs[models.FieldEmail])
	})

	t.Run("same input yields same errors", func(t *testing.T) {
		data := models.FormData{Name: "J", Email: "nope", Subject: "Hello", Message: "short"}
		assert.Equal(t, v.Validate(data), v.Validate(data))
	})
}

func TestNormalize(t *testing.T) {
	got := Normalize(models.FormData{
		Name:    "  Jane ",
		Email:   "\tjane@example.com\n",
		Subject: " Hi there ",
		Message: "  body  ",
	})
	assert.Equal(t, models.FormData{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hi there",
		Message: "body",
	}, got)
}
