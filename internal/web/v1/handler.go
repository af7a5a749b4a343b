package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/gustavosilvabr/portfolio-service/internal/content"
	"github.com/gustavosilvabr/portfolio-service/internal/logger"
	logicv1 "github.com/gustavosilvabr/portfolio-service/internal/logic/v1"
	"github.com/gustavosilvabr/portfolio-service/middleware"
)

// featuredProjects is how many starred repositories the home page shows.
const featuredProjects = 3

// messagesPageSize caps the admin messages view.
const messagesPageSize = 50

// Flash is a one-shot banner rendered at the top of a page.
type Flash struct {
	Kind    string // "success" or "error"
	Title   string
	Message string
}

// Handler groups the HTTP handlers of the portfolio site.
// Dependencies are injected via the constructor — no global state.
type Handler struct {
	gate      *logicv1.SessionGate
	projects  *logicv1.ProjectService
	contact   *logicv1.ContactService
	dashboard *logicv1.DashboardService
}

// NewHandler creates a Handler with the given services.
func NewHandler(gate *logicv1.SessionGate, projects *logicv1.ProjectService, contact *logicv1.ContactService, dashboard *logicv1.DashboardService) *Handler {
	return &Handler{
		gate:      gate,
		projects:  projects,
		contact:   contact,
		dashboard: dashboard,
	}
}

// RegisterRoutes registers every page route on the given engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)
	r.GET("/about", h.About)
	r.GET("/projects", h.Projects)
	r.GET("/contact", h.ContactForm)
	r.POST("/contact", h.ContactSubmit)

	r.GET("/admin/login", h.LoginForm)
	r.POST("/admin/login", h.Login)

	admin := r.Group("/admin", h.RequireAuth())
	{
		admin.GET("", h.Dashboard)
		admin.GET("/profile", h.AdminProfile)
		admin.GET("/projects", h.AdminProjects)
		admin.GET("/projects/:name", h.AdminProjectDetail)
		admin.GET("/content", h.AdminContent)
		admin.GET("/messages", h.AdminMessages)
		admin.POST("/logout", h.Logout)
	}

	r.NoRoute(h.NotFound)
}

// page assembles the data every template expects, merged with extra.
func (h *Handler) page(active string, extra gin.H) gin.H {
	data := gin.H{
		"Active":  active,
		"Owner":   content.Owner(),
		"Year":    time.Now().Year(),
		"Session": h.gate.Current(),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// Home renders the landing page with the hero, skills, and a few featured
// starred projects.
func (h *Handler) Home(c *gin.Context) {
	starred := h.projects.Starred(c.Request.Context())
	if len(starred) > featuredProjects {
		starred = starred[:featuredProjects]
	}

	c.HTML(http.StatusOK, "home.html", h.page("home", gin.H{
		"Skills":   content.Skills(),
		"Featured": logicv1.Cards(starred),
	}))
}

// About renders the bio with the experience and education timelines.
func (h *Handler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", h.page("about", gin.H{
		"Experience": content.Experience(),
		"Education":  content.Education(),
	}))
}

// Projects renders the showcase. The tab query switches between starred and
// owned repositories; the language query filters by primary language.
func (h *Handler) Projects(c *gin.Context) {
	tab := c.DefaultQuery("tab", "starred")
	if tab != "owned" {
		tab = "starred"
	}
	language := c.DefaultQuery("language", "all")

	var repos = h.projects.Starred(c.Request.Context())
	if tab == "owned" {
		repos = h.projects.Owned(c.Request.Context())
	}

	c.HTML(http.StatusOK, "projects.html", h.page("projects", gin.H{
		"Tab":       tab,
		"Language":  language,
		"Languages": logicv1.Languages(repos),
		"Cards":     logicv1.Cards(logicv1.FilterByLanguage(repos, language)),
	}))
}

// ContactForm renders the contact page. A sent=1 query shows the
// post-redirect success banner.
func (h *Handler) ContactForm(c *gin.Context) {
	var flash *Flash
	if c.Query("sent") == "1" {
		flash = &Flash{Kind: "success", Title: "Message sent", Message: "Thanks for reaching out, I'll get back to you soon."}
	}
	c.HTML(http.StatusOK, "contact.html", h.page("contact", gin.H{"Flash": flash}))
}

// ContactSubmit validates and stores a contact submission. Validation
// failures re-render the form with the user's input and a banner; they are
// expected outcomes, never 5xx.
func (h *Handler) ContactSubmit(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.contact_submit", trace.WithAttributes(
		attribute.String("layer", "web"),
	))
	defer span.End()

	sub := logicv1.ContactSubmission{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Subject: c.PostForm("subject"),
		Message: c.PostForm("message"),
	}

	err := h.contact.Submit(ctx, sub)
	if err == nil {
		c.Redirect(http.StatusSeeOther, "/contact?sent=1")
		return
	}

	span.RecordError(err)
	var flash Flash
	switch {
	case errors.Is(err, logicv1.ErrMissingFields):
		flash = Flash{Kind: "error", Title: "Missing information", Message: "Please fill in all required fields."}
	case errors.Is(err, logicv1.ErrInvalidEmail):
		flash = Flash{Kind: "error", Title: "Invalid email", Message: "Please enter a valid email address."}
	default:
		logger.FromContext(ctx).Error().Err(err).Msg("Contact submission failed")
		flash = Flash{Kind: "error", Title: "Something went wrong", Message: "Your message could not be sent right now. Please try again later."}
	}

	c.HTML(http.StatusOK, "contact.html", h.page("contact", gin.H{
		"Flash": &flash,
		"Form":  sub,
	}))
}

// LoginForm renders the login view. Already-authenticated visitors go
// straight to the dashboard.
func (h *Handler) LoginForm(c *gin.Context) {
	if h.gate.Current().IsAuthenticated {
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}
	c.HTML(http.StatusOK, "login.html", h.page("login", gin.H{
		"Next":     c.Query("next"),
		"Username": "",
	}))
}

// Login runs the credential check through the session gate. Success follows
// the preserved next path; failure re-renders the form with a banner.
func (h *Handler) Login(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.login", trace.WithAttributes(
		attribute.String("layer", "web"),
	))
	defer span.End()

	username := c.PostForm("username")
	password := c.PostForm("password")
	next := c.PostForm("next")

	if h.gate.Login(ctx, username, password) {
		span.SetAttributes(attribute.Bool("auth.success", true))
		c.Redirect(http.StatusSeeOther, safeAdminPath(next))
		return
	}

	span.SetAttributes(attribute.Bool("auth.success", false))
	flash := Flash{Kind: "error", Title: "Login failed", Message: "Invalid username or password"}
	if h.gate.State() == logicv1.StateChecking {
		flash = Flash{Kind: "error", Title: "Please wait", Message: "A login attempt is already in progress"}
	}
	c.HTML(http.StatusUnauthorized, "login.html", h.page("login", gin.H{
		"Flash":    &flash,
		"Next":     next,
		"Username": username,
	}))
}

// Logout resets the session and returns to the login view.
func (h *Handler) Logout(c *gin.Context) {
	h.gate.Logout(c.Request.Context())
	c.Redirect(http.StatusSeeOther, "/admin/login")
}

// Dashboard renders the admin overview with the mocked analytics.
func (h *Handler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_dashboard.html", h.page("admin", gin.H{
		"Section": "dashboard",
		"Stats":   h.dashboard.Stats(c.Request.Context()),
	}))
}

// AdminProfile renders the profile section.
func (h *Handler) AdminProfile(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_profile.html", h.page("admin", gin.H{
		"Section": "profile",
	}))
}

// AdminProjects lists the owned repositories as managed projects.
func (h *Handler) AdminProjects(c *gin.Context) {
	owned := h.projects.Owned(c.Request.Context())
	c.HTML(http.StatusOK, "admin_projects.html", h.page("admin", gin.H{
		"Section": "projects",
		"Cards":   logicv1.Cards(owned),
	}))
}

// AdminProjectDetail shows one repository in full, fetched directly from the
// source so the view reflects the live upstream state rather than the cached
// list. Unknown names fall through to the 404 page.
func (h *Handler) AdminProjectDetail(c *gin.Context) {
	repo := h.projects.Detail(c.Request.Context(), c.Param("name"))
	if repo == nil {
		h.NotFound(c)
		return
	}
	c.HTML(http.StatusOK, "admin_project_detail.html", h.page("admin", gin.H{
		"Section": "projects",
		"Card":    logicv1.NewCard(*repo),
	}))
}

// AdminContent shows the static content currently published on the site.
func (h *Handler) AdminContent(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_content.html", h.page("admin", gin.H{
		"Section":    "content",
		"Skills":     content.Skills(),
		"Experience": content.Experience(),
		"Education":  content.Education(),
	}))
}

// AdminMessages lists stored contact messages, newest first.
func (h *Handler) AdminMessages(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_messages.html", h.page("admin", gin.H{
		"Section":  "messages",
		"Messages": h.contact.Recent(c.Request.Context(), messagesPageSize),
	}))
}

// NotFound renders the catch-all 404 page.
func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.html", h.page("", nil))
}
