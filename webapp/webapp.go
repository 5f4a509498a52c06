package webapp

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	restinterceptors "portfolio-admin-server/api/interceptors"
)

//go:embed templates/*.html
var templateFS embed.FS

// ConfigPages mounts the dashboard. Every page except /login sits behind
// the page-level session gate; the API routes run their own cookie check.
func ConfigPages(router *gin.Engine) {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/*.html"))
	router.SetHTMLTemplate(tmpl)

	router.GET("/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{"Title": "Sign in"})
	})

	pages := router.Group("/", restinterceptors.PageSessionMiddleware())
	{
		pages.GET("", func(c *gin.Context) {
			c.HTML(http.StatusOK, "index.html", gin.H{"Title": "Dashboard"})
		})
		pages.GET("/projects", func(c *gin.Context) {
			c.HTML(http.StatusOK, "projects.html", gin.H{"Title": "Projects"})
		})
		pages.GET("/skills", func(c *gin.Context) {
			c.HTML(http.StatusOK, "skills.html", gin.H{"Title": "Skills"})
		})
		pages.GET("/messages", func(c *gin.Context) {
			c.HTML(http.StatusOK, "messages.html", gin.H{"Title": "Messages"})
		})
		pages.GET("/profile", func(c *gin.Context) {
			c.HTML(http.StatusOK, "profile.html", gin.H{"Title": "Profile"})
		})
	}
}
