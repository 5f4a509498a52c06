package interceptors

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-admin-server/api"
)

// SessionMiddleware guards the admin API. Requests without the session
// cookie are rejected before any handler runs, so an unauthenticated call
// can never reach the document or media store.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(api.SessionCookieName)
		if err != nil || cookie != api.SessionCookieValue {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ApiError{
				Code:    http.StatusUnauthorized,
				Message: "not authorized",
			})
			return
		}
		c.Next()
	}
}

// PageSessionMiddleware guards the dashboard pages. Browsers without a
// session are redirected to the login page instead of getting a JSON 401.
func PageSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(api.SessionCookieName)
		if err != nil || cookie != api.SessionCookieValue {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
