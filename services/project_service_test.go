package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"portfolio-admin-server/types"
)

func existingProject() *types.Project {
	return &types.Project{
		BaseDocument: types.BaseDocument{ID: "p1", Rev: "3-abc"},
		Title:        "Portfolio site",
		TechStack:    []string{"go", "couchdb"},
		ImageURL:     "https://cdn.example.com/a.jpg",
		Gallery: []types.GalleryImage{
			{URL: "https://cdn.example.com/a.jpg", PublicID: "idA"},
			{URL: "https://cdn.example.com/b.jpg", PublicID: "idB"},
			{URL: "https://cdn.example.com/c.jpg", PublicID: "idC"},
		},
		Created:  100,
		Modified: 100,
	}
}

func TestProjectUpdateDestroysRemovedAssets(t *testing.T) {
	selector, mediaClient, err := newTestSelector()
	if err != nil {
		t.Fatal(err)
	}
	defer httpmock.DeactivateAndReset()
	svc := NewProjectService(selector, mediaClient, types.NewEnvironment(nil))

	get, _ := httpmock.NewJsonResponder(200, existingProject())
	httpmock.RegisterResponder("GET", fmt.Sprintf("%s/projects/p1", dbURL), get)

	var destroyed []string
	httpmock.RegisterResponder("POST", mediaBase+"/image/destroy",
		func(req *http.Request) (*http.Response, error) {
			_ = req.ParseForm()
			destroyed = append(destroyed, req.FormValue("public_id"))
			return httpmock.NewJsonResponse(200, json.RawMessage(`{"result":"ok"}`))
		})

	var saved types.Project
	httpmock.RegisterResponder("PUT", fmt.Sprintf("%s/projects/p1", dbURL),
		func(req *http.Request) (*http.Response, error) {
			if dErr := json.NewDecoder(req.Body).Decode(&saved); dErr != nil {
				return httpmock.NewStringResponse(400, `{"error":"bad_request"}`), nil
			}
			resp, _ := httpmock.NewJsonResponse(201, types.SaveResponse{IsOK: true, ID: "p1", Rev: "4-def"})
			return resp, nil
		})

	images := []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/c.jpg"}
	publicIds := []string{"idA", "idC"}
	updated, warnings, uErr := svc.Update("p1", &types.InputProject{
		Images:              &images,
		CloudinaryPublicIds: &publicIds,
	})

	assert.NoError(t, uErr)
	assert.Empty(t, warnings)
	assert.Equal(t, []string{"idB"}, destroyed)
	assert.Equal(t, 1, destroyCallCount())
	assert.Equal(t, []string{"idA", "idC"}, updated.PublicIDs())
	assert.Equal(t, []string{"idA", "idC"}, saved.PublicIDs())
	assert.Greater(t, saved.Modified, int64(100))
}

func TestProjectUpdatePersistsWhenDestroyFails(t *testing.T) {
	selector, mediaClient, err := newTestSelector()
	if err != nil {
		t.Fatal(err)
	}
	defer httpmock.DeactivateAndReset()
	svc := NewProjectService(selector, mediaClient, types.NewEnvironment(nil))

	get, _ := httpmock.NewJsonResponder(200, existingProject())
	httpmock.RegisterResponder("GET", fmt.Sprintf("%s/projects/p1", dbURL), get)

	httpmock.RegisterResponder("POST", mediaBase+"/image/destroy",
		httpmock.NewStringResponder(500, `{"error":{"message":"server error"}}`))

	put, _ := httpmock.NewJsonResponder(201, types.SaveResponse{IsOK: true, ID: "p1", Rev: "4-def"})
	httpmock.RegisterResponder("PUT", fmt.Sprintf("%s/projects/p1", dbURL), put)

	images := []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/c.jpg"}
	publicIds := []string{"idA", "idC"}
	updated, warnings, uErr := svc.Update("p1", &types.InputProject{
		Images:              &images,
		CloudinaryPublicIds: &publicIds,
	})

	// cleanup failure must not block the document write
	assert.NoError(t, uErr)
	assert.Len(t, warnings, 1)
	assert.Equal(t, "idB", warnings[0].PublicID)
	assert.Equal(t, []string{"idA", "idC"}, updated.PublicIDs())
	assert.Equal(t, 1, destroyCallCount())
	assert.Equal(t, 1, httpmock.GetCallCountInfo()[fmt.Sprintf("PUT %s/projects/p1", dbURL)])
}

func TestProjectUpdateMismatchedGallery(t *testing.T) {
	selector, mediaClient, err := newTestSelector()
	if err != nil {
		t.Fatal(err)
	}
	defer httpmock.DeactivateAndReset()
	svc := NewProjectService(selector, mediaClient, types.NewEnvironment(nil))

	get, _ := httpmock.NewJsonResponder(200, existingProject())
	httpmock.RegisterResponder("GET", fmt.Sprintf("%s/projects/p1", dbURL), get)

	images := []string{"https://cdn.example.com/a.jpg"}
	publicIds := []string{"idA", "idC"}
	_, _, uErr := svc.Update("p1", &types.InputProject{
		Images:              &images,
		CloudinaryPublicIds: &publicIds,
	})

	assert.ErrorIs(t, uErr, types.ErrGalleryMismatch)
	assert.Equal(t, 0, destroyCallCount())
}

func TestProjectDeleteDestroysAllAssets(t *testing.T) {
	selector, mediaClient, err := newTestSelector()
	if err != nil {
		t.Fatal(err)
	}
	defer httpmock.DeactivateAndReset()
	svc := NewProjectService(selector, mediaClient, types.NewEnvironment(nil))

	get, _ := httpmock.NewJsonResponder(200, existingProject())
	httpmock.RegisterResponder("GET", fmt.Sprintf("%s/projects/p1", dbURL), get)
	httpmock.RegisterResponder("POST", mediaBase+"/image/destroy",
		httpmock.NewJsonResponderOrPanic(200, json.RawMessage(`{"result":"ok"}`)))
	del, _ := httpmock.NewJsonResponder(200, types.SaveResponse{IsOK: true, ID: "p1", Rev: "4-def"})
	httpmock.RegisterResponder("DELETE", fmt.Sprintf("%s/projects/p1", dbURL), del)

	warnings, dErr := svc.Delete("p1")
	assert.NoError(t, dErr)
	assert.Empty(t, warnings)
	assert.Equal(t, 3, destroyCallCount())
	assert.Equal(t, 1, httpmock.GetCallCountInfo()[fmt.Sprintf("DELETE %s/projects/p1", dbURL)])
}

func TestProjectCreateDefaultsThumbnail(t *testing.T) {
	selector, mediaClient, err := newTestSelector()
	if err != nil {
		t.Fatal(err)
	}
	defer httpmock.DeactivateAndReset()
	svc := NewProjectService(selector, mediaClient, types.NewEnvironment(nil))

	httpmock.RegisterResponder("PUT", `=~^http://localhost:5689/projects/.+`,
		func(req *http.Request) (*http.Response, error) {
			resp, _ := httpmock.NewJsonResponse(201, types.SaveResponse{IsOK: true})
			return resp, nil
		})

	created, cErr := svc.Create(&types.Project{
		Title: "New project",
		Gallery: []types.GalleryImage{
			{URL: "https://cdn.example.com/x.jpg", PublicID: "idX"},
		},
	})
	assert.NoError(t, cErr)
	assert.Equal(t, "https://cdn.example.com/x.jpg", created.ImageURL)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, created.Created, created.Modified)
}
