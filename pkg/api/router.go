package api

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/navarrastar/devfolio/pkg/middleware"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var templateFuncs = template.FuncMap{
	// site content is trusted configuration, so its colors may contain hsl(...)
	"css": func(s string) template.CSS { return template.CSS(s) },
}

// ParseTemplates loads the embedded page templates
func ParseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return tmpl, nil
}

// NewRouter wires middleware and routes onto a gin engine
func NewRouter(h *Handlers, logger *zap.Logger) (*gin.Engine, error) {
	tmpl, err := ParseTemplates()
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("loading static assets: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.SetHTMLTemplate(tmpl)

	router.GET("/health", h.HealthCheck)
	router.StaticFS("/static", http.FS(static))

	site := router.Group("/", h.Session)
	site.GET("/", h.Index)
	site.POST("/contact", h.SubmitContactForm)
	site.POST("/contact/reset", h.ResetContactForm)

	contactAPI := router.Group("/api/contact", middleware.CORS(), h.Session)
	contactAPI.GET("", h.GetContactState)
	contactAPI.PATCH("/fields/:field", h.UpdateContactField)
	contactAPI.POST("/submit", h.SubmitContact)
	contactAPI.POST("/reset", h.ResetContact)
	contactAPI.POST("/validate", h.ValidateContact)
	contactAPI.OPTIONS("/*path", func(c *gin.Context) {})

	return router, nil
}
