package v1

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireAuth gates the admin views on the session gate. Unauthenticated
// requests are redirected to the login view with the originally requested
// location preserved, query string included, so a successful login can
// forward there instead of a hardcoded default.
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// The gate is restored before the listener starts; this covers
		// wirings that skip the startup path so the guard never decides
		// against a not-yet-restored session.
		if !h.gate.Restored() {
			h.gate.Restore(c.Request.Context())
		}

		if !h.gate.Current().IsAuthenticated {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusSeeOther, "/admin/login?next="+next)
			c.Abort()
			return
		}

		c.Next()
	}
}

// safeAdminPath validates a post-login forward target. Only local admin
// paths are followed; anything else falls back to the dashboard.
func safeAdminPath(next string) string {
	if strings.HasPrefix(next, "/admin") && !strings.HasPrefix(next, "//") && !strings.Contains(next, "://") {
		return next
	}
	return "/admin"
}
