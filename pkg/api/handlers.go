package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/navarrastar/devfolio/pkg/content"
	"github.com/navarrastar/devfolio/pkg/models"
	"github.com/navarrastar/devfolio/pkg/services"
)

// SessionCookie carries the visitor's session id
const SessionCookie = "devfolio_session"

const contactFormKey = "contactForm"

// Handlers contains all HTTP handlers for the site
type Handlers struct {
	sessions  *services.SessionStore
	validator *services.Validator
	site      *models.Site
	logger    *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(sessions *services.SessionStore, validator *services.Validator, site *models.Site, logger *zap.Logger) *Handlers {
	return &Handlers{
		sessions:  sessions,
		validator: validator,
		site:      site,
		logger:    logger,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Session attaches the visitor's contact form, starting a session if needed
func (h *Handlers) Session(c *gin.Context) {
	current, _ := c.Cookie(SessionCookie)

	id, form := h.sessions.GetOrCreate(current)
	if id != current {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, id, 0, "/", "", c.Request.TLS != nil, true)
	}

	c.Set(contactFormKey, form)
	c.Next()
}

func contactForm(c *gin.Context) *services.ContactForm {
	return c.MustGet(contactFormKey).(*services.ContactForm)
}

type fieldView struct {
	Key         models.Field
	Label       string
	Placeholder string
	Type        string
	Multiline   bool
	Value       string
	Error       string
}

var formFields = []fieldView{
	{Key: models.FieldName, Label: "Name", Placeholder: "John Doe", Type: "text"},
	{Key: models.FieldEmail, Label: "Email", Placeholder: "john@example.com", Type: "email"},
	{Key: models.FieldSubject, Label: "Subject", Placeholder: "Project collaboration", Type: "text"},
	{Key: models.FieldMessage, Label: "Message", Placeholder: "Tell me about your project...", Multiline: true},
}

type pageData struct {
	Site    *models.Site
	Marquee []models.TechBadge
	Contact models.FormState
	Fields  []fieldView
}

// Index renders the whole portfolio page
func (h *Handlers) Index(c *gin.Context) {
	state := contactForm(c).State()

	fields := make([]fieldView, len(formFields))
	for i, fv := range formFields {
		fv.Value = state.Form.Get(fv.Key)
		fv.Error = state.Errors[fv.Key]
		fields[i] = fv
	}

	c.HTML(http.StatusOK, "index.html", pageData{
		Site:    h.site,
		Marquee: content.Marquee(h.site.Stack),
		Contact: state,
		Fields:  fields,
	})
}

// SubmitContactForm handles the plain HTML form post
func (h *Handlers) SubmitContactForm(c *gin.Context) {
	var posted models.FormData
	if err := c.ShouldBind(&posted); err != nil {
		c.String(http.StatusBadRequest, "Invalid form submission")
		return
	}

	form := contactForm(c)
	current := form.State().Form
	for _, f := range models.Fields {
		if v := posted.Get(f); v != current.Get(f) {
			// a locked form ignores edits, Submit reports why below
			_ = form.Update(f, v)
		}
	}

	if err := form.Submit(c.Request.Context()); err != nil {
		h.logger.Debug("Contact form not submitted", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, "/#contact")
}

// ResetContactForm handles "Send Another"
func (h *Handlers) ResetContactForm(c *gin.Context) {
	if err := contactForm(c).Reset(); err != nil {
		h.logger.Debug("Contact form not reset", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, "/#contact")
}

// GetContactState returns the visitor's form state
func (h *Handlers) GetContactState(c *gin.Context) {
	c.JSON(http.StatusOK, contactForm(c).State())
}

type updateFieldRequest struct {
	Value *string `json:"value" binding:"required"`
}

// UpdateContactField applies a single field edit
func (h *Handlers) UpdateContactField(c *gin.Context) {
	field, ok := models.ParseField(c.Param("field"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrUnknownField.Error()})
		return
	}

	var req updateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	form := contactForm(c)
	if err := form.Update(field, *req.Value); err != nil {
		h.writeFormError(c, err, form)
		return
	}
	c.JSON(http.StatusOK, form.State())
}

// SubmitContact validates the visitor's form and starts delivery
func (h *Handlers) SubmitContact(c *gin.Context) {
	form := contactForm(c)
	if err := form.Submit(c.Request.Context()); err != nil {
		h.writeFormError(c, err, form)
		return
	}
	c.JSON(http.StatusAccepted, form.State())
}

// ResetContact returns a finished form to idle
func (h *Handlers) ResetContact(c *gin.Context) {
	form := contactForm(c)
	if err := form.Reset(); err != nil {
		h.writeFormError(c, err, form)
		return
	}
	c.JSON(http.StatusOK, form.State())
}

// ValidateContact checks posted form data without touching any session
func (h *Handlers) ValidateContact(c *gin.Context) {
	var data models.FormData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	errs := h.validator.Validate(data)
	c.JSON(http.StatusOK, gin.H{
		"valid":  len(errs) == 0,
		"errors": errs,
	})
}

func (h *Handlers) writeFormError(c *gin.Context, err error, form *services.ContactForm) {
	state := form.State()

	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  err.Error(),
			"status": state.Status,
			"errors": verr.Errors,
		})
	case errors.Is(err, services.ErrSubmissionInFlight),
		errors.Is(err, services.ErrFormLocked),
		errors.Is(err, services.ErrNotResettable):
		c.JSON(http.StatusConflict, gin.H{
			"error":  err.Error(),
			"status": state.Status,
		})
	default:
		h.logger.Error("Unexpected contact form error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
