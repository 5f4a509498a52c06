package api

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-admin-server/global"
	"portfolio-admin-server/media"
	"portfolio-admin-server/metrics"
	"portfolio-admin-server/types"
)

const (
	uploadTimeout   = 60 * time.Second
	maxUploadBytes  = 10 << 20 // 10 MB per file
	uploadFormField = "file"
)

type UploadApi struct {
	mediaClient *media.Client
}

func NewUploadApi(mediaClient *media.Client) *UploadApi {
	return &UploadApi{mediaClient: mediaClient}
}

// readImage rejects anything that is not an image before a single byte
// leaves the process. Both the declared content type and the sniffed one
// must agree.
func readImage(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > maxUploadBytes {
		return nil, types.ErrBadRequest
	}
	declared := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(declared, "image/") {
		return nil, types.ErrBadRequest
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, rErr := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if rErr != nil {
		return nil, rErr
	}
	if int64(len(data)) > maxUploadBytes {
		return nil, types.ErrBadRequest
	}
	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return nil, types.ErrBadRequest
	}
	return data, nil
}

func (a *UploadApi) uploadSingle(c *gin.Context, folder string, transformation string) {
	fh, err := c.FormFile(uploadFormField)
	if err != nil {
		ApiErrorf(c, http.StatusBadRequest, "file is required")
		return
	}
	data, rErr := readImage(fh)
	if rErr != nil {
		ApiErrorf(c, http.StatusBadRequest, "only image files are accepted")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()

	result, uErr := a.mediaClient.UploadImage(ctx, data, fh.Filename, folder, transformation)
	if uErr != nil {
		global.Logger.Log("UploadApi", "upload failed", "folder", folder, "error", uErr.Error())
		ApiErrorf(c, http.StatusInternalServerError, "upload failed")
		return
	}
	metrics.MediaUploadsCount.Inc()

	c.JSON(http.StatusOK, types.OutputUpload{
		Success:  true,
		Path:     result.SecureURL,
		PublicID: result.PublicID,
	})
}

// UploadProfileImage uploads the profile photo
// @Security Bearer
// @Summary Upload the profile image
// @Description Upload the profile image (face-aware 400x400 crop)
// @Tags Upload
// @Param file formData file true "Image file"
// @Success 200 {object} types.OutputUpload
// @Failure 400 {object} api.ApiError "not an image"
// @Failure 429 {object} api.ApiError "rate limit exceeded"
// @Failure 500 {object} api.ApiError "upload failed"
// @Accept multipart/form-data
// @Produce json
// @Router /api/v1/profile/upload [post]
func (a *UploadApi) UploadProfileImage(c *gin.Context) {
	a.uploadSingle(c, media.FolderProfile, media.TransformationProfile)
}

// UploadSkillImage uploads a skill icon
// @Security Bearer
// @Summary Upload a skill image
// @Description Upload a skill image (square 200x200 crop)
// @Tags Upload
// @Param file formData file true "Image file"
// @Success 200 {object} types.OutputUpload
// @Failure 400 {object} api.ApiError "not an image"
// @Failure 429 {object} api.ApiError "rate limit exceeded"
// @Failure 500 {object} api.ApiError "upload failed"
// @Accept multipart/form-data
// @Produce json
// @Router /api/v1/skills/upload [post]
func (a *UploadApi) UploadSkillImage(c *gin.Context) {
	a.uploadSingle(c, media.FolderSkills, media.TransformationSkill)
}

// UploadProjectImages uploads one or more gallery images concurrently
// @Security Bearer
// @Summary Upload project gallery images
// @Description Upload project gallery images (bounded 1200x800); all files succeed or the submission fails
// @Tags Upload
// @Param files formData file true "Image files"
// @Success 200 {object} types.OutputUploadMulti
// @Failure 400 {object} api.ApiError "not an image"
// @Failure 429 {object} api.ApiError "rate limit exceeded"
// @Failure 500 {object} api.ApiError "upload failed"
// @Accept multipart/form-data
// @Produce json
// @Router /api/v1/projects/upload [post]
func (a *UploadApi) UploadProjectImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		ApiErrorf(c, http.StatusBadRequest, "multipart form is required")
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		// single-file fallback for clients that post one gallery image
		files = form.File[uploadFormField]
	}
	if len(files) == 0 {
		ApiErrorf(c, http.StatusBadRequest, "files are required")
		return
	}
	if len(files) > types.MaxGalleryImages {
		ApiErrorf(c, http.StatusBadRequest, "a project gallery holds at most %d images", types.MaxGalleryImages)
		return
	}

	// every file is validated before the first media-store call
	payloads := make([][]byte, len(files))
	for i, fh := range files {
		data, rErr := readImage(fh)
		if rErr != nil {
			ApiErrorf(c, http.StatusBadRequest, "only image files are accepted")
			return
		}
		payloads[i] = data
	}

	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()

	results := make([]*media.Upload, len(files))
	uploadErrs := make([]error, len(files))
	var wg sync.WaitGroup
	for i := range files {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], uploadErrs[i] = a.mediaClient.UploadImage(ctx, payloads[i], files[i].Filename, media.FolderProjects, media.TransformationProject)
		}(i)
	}
	wg.Wait()

	paths := make([]string, 0, len(results))
	publicIds := make([]string, 0, len(results))
	for i, uploadErr := range uploadErrs {
		if uploadErr != nil {
			// already-uploaded assets are not rolled back
			global.Logger.Log("UploadApi", "gallery upload failed", "file", files[i].Filename, "error", uploadErr.Error())
			ApiErrorf(c, http.StatusInternalServerError, "upload failed")
			return
		}
		paths = append(paths, results[i].SecureURL)
		publicIds = append(publicIds, results[i].PublicID)
	}
	metrics.MediaUploadsCount.Add(float64(len(results)))

	c.JSON(http.StatusOK, types.OutputUploadMulti{
		Success:   true,
		Paths:     paths,
		PublicIds: publicIds,
	})
}
