package services

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"portfolio-admin-server/types"
)

func storedProfile() types.Profile {
	return types.Profile{
		BaseDocument: types.BaseDocument{ID: types.ProfileDocID, Rev: "2-abc"},
		Name:         "Jane Doe",
		Title:        "Software Engineer",
		Bio:          "Hello",
		Socials: types.Socials{
			Github: "https://github.com/janedoe",
			Email:  "jane@example.com",
		},
		Created:  100,
		Modified: 100,
	}
}

func TestProfilePartialUpdate(t *testing.T) {
	selector, mediaClient, err := newTestSelector()
	if err != nil {
		t.Fatal(err)
	}
	defer httpmock.DeactivateAndReset()
	svc := NewProfileService(selector, mediaClient, types.NewEnvironment(nil))

	get, _ := httpmock.NewJsonResponder(200, storedProfile())
	httpmock.RegisterResponder("GET", fmt.Sprintf("%s/profile/%s", dbURL, types.ProfileDocID), get)
	put, _ := httpmock.NewJsonResponder(201, types.SaveResponse{IsOK: true})
	httpmock.RegisterResponder("PUT", fmt.Sprintf("%s/profile/%s", dbURL, types.ProfileDocID), put)

	bio := "x"
	updated, warnings, uErr := svc.Update(&types.InputProfile{Bio: &bio})
	assert.NoError(t, uErr)
	assert.Empty(t, warnings)
	assert.Equal(t, "x", updated.Bio)
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, "Software Engineer", updated.Title)
	assert.Equal(t, "https://github.com/janedoe", updated.Socials.Github)
	assert.Greater(t, updated.Modified, int64(100))
	assert.Equal(t, 0, destroyCallCount())
}

func TestProfileUpdateReplacingImageDestroysOld(t *testing.T) {
	selector, mediaClient, err := newTestSelector()
	if err != nil {
		t.Fatal(err)
	}
	defer httpmock.DeactivateAndReset()
	svc := NewProfileService(selector, mediaClient, types.NewEnvironment(nil))

	stored := storedProfile()
	stored.ProfileImage = "https://cdn.example.com/me.jpg"
	stored.CloudinaryImageID = "portfolio/profile/old"
	get, _ := httpmock.NewJsonResponder(200, stored)
	httpmock.RegisterResponder("GET", fmt.Sprintf("%s/profile/%s", dbURL, types.ProfileDocID), get)
	httpmock.RegisterResponder("POST", mediaBase+"/image/destroy",
		httpmock.NewJsonResponderOrPanic(200, json.RawMessage(`{"result":"ok"}`)))
	put, _ := httpmock.NewJsonResponder(201, types.SaveResponse{IsOK: true})
	httpmock.RegisterResponder("PUT", fmt.Sprintf("%s/profile/%s", dbURL, types.ProfileDocID), put)

	newID := "portfolio/profile/new"
	updated, warnings, uErr := svc.Update(&types.InputProfile{CloudinaryImageID: &newID})
	assert.NoError(t, uErr)
	assert.Empty(t, warnings)
	assert.Equal(t, 1, destroyCallCount())
	assert.Equal(t, "portfolio/profile/new", updated.CloudinaryImageID)
}

func TestProfileCreateConflictsWhenPresent(t *testing.T) {
	selector, mediaClient, err := newTestSelector()
	if err != nil {
		t.Fatal(err)
	}
	defer httpmock.DeactivateAndReset()
	svc := NewProfileService(selector, mediaClient, types.NewEnvironment(nil))

	get, _ := httpmock.NewJsonResponder(200, storedProfile())
	httpmock.RegisterResponder("GET", fmt.Sprintf("%s/profile/%s", dbURL, types.ProfileDocID), get)

	_, cErr := svc.Create(&types.Profile{Name: "Someone Else"})
	assert.ErrorIs(t, cErr, types.ErrConflict)
}
