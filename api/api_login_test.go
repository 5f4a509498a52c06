package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"portfolio-admin-server/global"
)

func loginRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	global.Conf.Admin.Username = "admin"
	global.Conf.Admin.Password = "correct horse battery staple"

	router := gin.New()
	loginApi := NewLoginApi()
	router.POST("/api/v1/login", loginApi.Login)
	router.POST("/api/v1/logout", loginApi.Logout)
	return router
}

func sessionCookie(resp *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == SessionCookieName {
			return cookie
		}
	}
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	router := loginRouter()

	body := `{"username":"admin","password":"correct horse battery staple"}`
	req := httptest.NewRequest("POST", "/api/v1/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	cookie := sessionCookie(resp)
	if assert.NotNil(t, cookie) {
		assert.Equal(t, SessionCookieValue, cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
		assert.Equal(t, sessionCookieMaxAge, cookie.MaxAge)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	router := loginRouter()

	body := `{"username":"admin","password":"guess"}`
	req := httptest.NewRequest("POST", "/api/v1/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Nil(t, sessionCookie(resp))
}

func TestLoginMissingFields(t *testing.T) {
	router := loginRouter()

	req := httptest.NewRequest("POST", "/api/v1/login", strings.NewReader(`{"username":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestLogoutExpiresCookie(t *testing.T) {
	router := loginRouter()

	req := httptest.NewRequest("POST", "/api/v1/logout", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: SessionCookieValue})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	cookie := sessionCookie(resp)
	if assert.NotNil(t, cookie) {
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	}
}
