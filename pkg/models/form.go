package models

// Field names one of the contact form inputs
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Fields lists the contact form inputs in display order
var Fields = []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}

// ParseField maps a raw input name onto a Field
func ParseField(name string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// Represents the data structure coming from the contact form
type FormData struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// Get returns the current value of a field
func (d FormData) Get(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldSubject:
		return d.Subject
	case FieldMessage:
		return d.Message
	}
	return ""
}

// Set replaces the value of a field
func (d *FormData) Set(f Field, value string) {
	switch f {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldSubject:
		d.Subject = value
	case FieldMessage:
		d.Message = value
	}
}

// FormErrors holds at most one message per field. A missing key means no error.
type FormErrors map[Field]string

// Clone returns an independent copy
func (e FormErrors) Clone() FormErrors {
	out := make(FormErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// SubmissionStatus drives which part of the contact section is shown
type SubmissionStatus string

const (
	StatusIdle    SubmissionStatus = "idle"
	StatusSending SubmissionStatus = "sending"
	StatusSuccess SubmissionStatus = "success"
	StatusError   SubmissionStatus = "error"
)

// AcceptsEdits reports whether the form inputs are enabled in this status
func (s SubmissionStatus) AcceptsEdits() bool {
	return s == StatusIdle || s == StatusError
}

// ContactMessage is the validated, trimmed payload handed to a submitter
type ContactMessage struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// FormState is a point-in-time view of a contact form controller
type FormState struct {
	Status SubmissionStatus `json:"status"`
	Form   FormData         `json:"form"`
	Errors FormErrors       `json:"errors"`
}
