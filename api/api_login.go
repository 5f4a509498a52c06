package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"portfolio-admin-server/global"
	"portfolio-admin-server/types"
)

const (
	// SessionCookieName marks an authenticated admin browser session.
	SessionCookieName = "admin_authenticated"
	// SessionCookieValue is the only value the session gate accepts.
	SessionCookieValue = "true"
	// sessionCookieMaxAge keeps the admin signed in for 7 days.
	sessionCookieMaxAge = 7 * 24 * 60 * 60
)

type LoginApi struct {
	validate *validator.Validate
}

func NewLoginApi() *LoginApi {
	return &LoginApi{
		validate: validator.New(),
	}
}

func setSessionCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   global.Conf.Mode == gin.ReleaseMode,
		SameSite: http.SameSiteStrictMode,
	})
}

// Login checks admin credentials and opens a cookie session
// @Summary Login with the admin username and password
// @Description Login with the admin username and password
// @Tags Auth
// @Param input body types.InputLogin true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} api.ApiError "invalid input"
// @Failure 401 {object} api.ApiError "invalid credentials"
// @Failure 429 {object} api.ApiError "rate limit exceeded"
// @Accept json
// @Produce json
// @Router /api/v1/login [post]
func (a *LoginApi) Login(c *gin.Context) {
	var input types.InputLogin
	if err := c.ShouldBindJSON(&input); err != nil {
		ApiErrorf(c, http.StatusBadRequest, "invalid input")
		return
	}
	if err := a.validate.Struct(input); err != nil {
		ApiErrorf(c, http.StatusBadRequest, ValidatorErrorToUser(err.(validator.ValidationErrors)))
		return
	}

	userOk := subtle.ConstantTimeCompare([]byte(input.Username), []byte(global.Conf.Admin.Username))
	passOk := subtle.ConstantTimeCompare([]byte(input.Password), []byte(global.Conf.Admin.Password))
	if userOk&passOk != 1 {
		ApiErrorf(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	setSessionCookie(c, SessionCookieValue, sessionCookieMaxAge)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the session cookie
// @Summary Logout the current admin session
// @Description Logout the current admin session
// @Tags Auth
// @Success 200 {object} map[string]interface{}
// @Produce json
// @Router /api/v1/logout [post]
func (a *LoginApi) Logout(c *gin.Context) {
	setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Session reports whether the caller holds a valid admin session
// @Summary Check the current session
// @Description Check the current session
// @Tags Auth
// @Success 200 {object} map[string]interface{}
// @Produce json
// @Router /api/v1/session [get]
func (a *LoginApi) Session(c *gin.Context) {
	cookie, err := c.Cookie(SessionCookieName)
	authenticated := err == nil && cookie == SessionCookieValue
	c.JSON(http.StatusOK, gin.H{"authenticated": authenticated})
}
