package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"portfolio-admin-server/global"
	"portfolio-admin-server/media"
)

const uploadURL = "https://api.cloudinary.com/v1_1/testcloud/image/upload"

// minimal PNG header so content sniffing sees image/png
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

func uploadRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	mediaClient := media.NewClient(global.CloudinaryConfig{
		CloudName: "testcloud",
		ApiKey:    "key",
		ApiSecret: "secret",
	}, true)

	router := gin.New()
	uploadApi := NewUploadApi(mediaClient)
	router.POST("/api/v1/profile/upload", uploadApi.UploadProfileImage)
	router.POST("/api/v1/skills/upload", uploadApi.UploadSkillImage)
	router.POST("/api/v1/projects/upload", uploadApi.UploadProjectImages)
	return router
}

func multipartBody(t *testing.T, field string, contentType string, payloads ...[]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for i, data := range payloads {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="upload.png"`)
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatalf("writing part %d: %v", i, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, mw.FormDataContentType()
}

func TestUploadRejectsNonImage(t *testing.T) {
	router := uploadRouter()
	defer httpmock.DeactivateAndReset()

	body, contentType := multipartBody(t, "file", "text/plain", []byte("#!/bin/sh\necho hi\n"))
	req := httptest.NewRequest("POST", "/api/v1/skills/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	// no media store call was made
	assert.Equal(t, 0, httpmock.GetCallCountInfo()["POST "+uploadURL])
}

func TestUploadRejectsSpoofedContentType(t *testing.T) {
	router := uploadRouter()
	defer httpmock.DeactivateAndReset()

	// declared image/png but the bytes are plain text
	body, contentType := multipartBody(t, "file", "image/png", []byte("not really an image"))
	req := httptest.NewRequest("POST", "/api/v1/profile/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, 0, httpmock.GetCallCountInfo()["POST "+uploadURL])
}

func TestUploadSkillImage(t *testing.T) {
	router := uploadRouter()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", uploadURL,
		httpmock.NewJsonResponderOrPanic(200, json.RawMessage(`{"secure_url":"https://cdn.example.com/skill.png","public_id":"portfolio/skills/skill"}`)))

	body, contentType := multipartBody(t, "file", "image/png", pngBytes)
	req := httptest.NewRequest("POST", "/api/v1/skills/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"public_id":"portfolio/skills/skill"`)
	assert.Equal(t, 1, httpmock.GetCallCountInfo()["POST "+uploadURL])
}

func TestUploadProjectImagesConcurrently(t *testing.T) {
	router := uploadRouter()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", uploadURL,
		httpmock.NewJsonResponderOrPanic(200, json.RawMessage(`{"secure_url":"https://cdn.example.com/p.jpg","public_id":"portfolio/projects/p"}`)))

	body, contentType := multipartBody(t, "files", "image/png", pngBytes, pngBytes, pngBytes)
	req := httptest.NewRequest("POST", "/api/v1/projects/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 3, httpmock.GetCallCountInfo()["POST "+uploadURL])
}

func TestUploadProjectImagesFailsAsAWhole(t *testing.T) {
	router := uploadRouter()
	defer httpmock.DeactivateAndReset()

	var calls int32
	httpmock.RegisterResponder("POST", uploadURL,
		func(r *http.Request) (*http.Response, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				return httpmock.NewStringResponse(200, `{"secure_url":"https://cdn.example.com/p.jpg","public_id":"portfolio/projects/p"}`), nil
			}
			return httpmock.NewStringResponse(500, `{"error":{"message":"server error"}}`), nil
		})

	body, contentType := multipartBody(t, "files", "image/png", pngBytes, pngBytes)
	req := httptest.NewRequest("POST", "/api/v1/projects/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// one file failing fails the whole submission
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestUploadProjectImagesTooMany(t *testing.T) {
	router := uploadRouter()
	defer httpmock.DeactivateAndReset()

	body, contentType := multipartBody(t, "files", "image/png", pngBytes, pngBytes, pngBytes, pngBytes, pngBytes)
	req := httptest.NewRequest("POST", "/api/v1/projects/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, 0, httpmock.GetCallCountInfo()["POST "+uploadURL])
}
