package media

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"

	"portfolio-admin-server/global"
	"portfolio-admin-server/types"
)

// Per-resource eager transformations applied at upload time.
const (
	TransformationSkill   = "c_fill,w_200,h_200"
	TransformationProfile = "c_fill,g_face,w_400,h_400"
	TransformationProject = "c_limit,w_1200,h_800,q_auto"
)

// Media-store folders, one per resource.
const (
	FolderProfile  = "portfolio/profile"
	FolderProjects = "portfolio/projects"
	FolderSkills   = "portfolio/skills"
)

// Client talks to the Cloudinary upload API. It is constructed once at
// startup and passed to the services; there is no ambient global state.
type Client struct {
	cl        *resty.Client
	apiKey    string
	apiSecret string
}

// Upload is the subset of the upload response the documents reference.
type Upload struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type destroyResponse struct {
	Result string `json:"result"`
}

func NewClient(conf global.CloudinaryConfig, mock bool) *Client {
	cl := resty.New().
		SetBaseURL(fmt.Sprintf("https://api.cloudinary.com/v1_1/%s", conf.CloudName)).
		SetTimeout(time.Second * 30)

	if mock {
		httpmock.ActivateNonDefault(cl.GetClient())
	}

	return &Client{
		cl:        cl,
		apiKey:    conf.ApiKey,
		apiSecret: conf.ApiSecret,
	}
}

// UploadImage sends one image with the given folder and eager transformation.
func (c *Client) UploadImage(ctx context.Context, data []byte, filename string, folder string, transformation string) (*Upload, error) {
	params := map[string]string{
		"timestamp": strconv.FormatInt(time.Now().Unix(), 10),
	}
	if folder != "" {
		params["folder"] = folder
	}
	if transformation != "" {
		params["transformation"] = transformation
	}

	form := c.signedForm(params)

	var result Upload
	var uploadErr apiError
	response, err := c.cl.R().SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(data)).
		SetFormData(form).
		SetResult(&result).
		SetError(&uploadErr).
		Post("/image/upload")
	if err != nil {
		return nil, err
	}
	if response.IsError() {
		if uploadErr.Error.Message != "" {
			return nil, fmt.Errorf("media upload failed: %s", uploadErr.Error.Message)
		}
		return nil, fmt.Errorf("media upload failed with status %d", response.StatusCode())
	}
	if result.SecureURL == "" || result.PublicID == "" {
		return nil, fmt.Errorf("media upload returned incomplete result")
	}
	return &result, nil
}

// Destroy removes an uploaded asset by its public id.
func (c *Client) Destroy(ctx context.Context, publicID string) error {
	params := map[string]string{
		"public_id": publicID,
		"timestamp": strconv.FormatInt(time.Now().Unix(), 10),
	}
	form := c.signedForm(params)

	var result destroyResponse
	var destroyErr apiError
	response, err := c.cl.R().SetContext(ctx).
		SetFormData(form).
		SetResult(&result).
		SetError(&destroyErr).
		Post("/image/destroy")
	if err != nil {
		return err
	}
	if response.IsError() {
		if destroyErr.Error.Message != "" {
			return fmt.Errorf("media destroy failed: %s", destroyErr.Error.Message)
		}
		return fmt.Errorf("media destroy failed with status %d", response.StatusCode())
	}
	if result.Result == "not found" {
		return types.ErrNotFound
	}
	if result.Result != "ok" {
		return fmt.Errorf("media destroy failed: %s", result.Result)
	}
	return nil
}

// signedForm adds api_key and the SHA-1 request signature the upload API
// requires (sorted key=value pairs joined with &, secret appended).
func (c *Client) signedForm(params map[string]string) map[string]string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	digest := sha1.Sum([]byte(strings.Join(pairs, "&") + c.apiSecret))

	form := make(map[string]string, len(params)+2)
	for k, v := range params {
		form[k] = v
	}
	form["api_key"] = c.apiKey
	form["signature"] = hex.EncodeToString(digest[:])
	return form
}
