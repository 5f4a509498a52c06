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

func TestContactMarkReadFlipsOnlyIsRead(t *testing.T) {
	selector, _, err := newTestSelector()
	if err != nil {
		t.Fatal(err)
	}
	defer httpmock.DeactivateAndReset()
	svc := NewContactService(selector, types.NewEnvironment(nil))

	stored := types.Contact{
		BaseDocument: types.BaseDocument{ID: "c1", Rev: "1-abc"},
		Name:         "Visitor",
		Email:        "visitor@example.com",
		Phone:        "+38640123456",
		Message:      "Hi there",
		IsRead:       false,
		Created:      100,
		Modified:     100,
	}
	get, _ := httpmock.NewJsonResponder(200, stored)
	httpmock.RegisterResponder("GET", fmt.Sprintf("%s/contacts/c1", dbURL), get)

	var saved types.Contact
	httpmock.RegisterResponder("PUT", fmt.Sprintf("%s/contacts/c1", dbURL),
		func(req *http.Request) (*http.Response, error) {
			if dErr := json.NewDecoder(req.Body).Decode(&saved); dErr != nil {
				return httpmock.NewStringResponse(400, `{"error":"bad_request"}`), nil
			}
			resp, _ := httpmock.NewJsonResponse(201, types.SaveResponse{IsOK: true})
			return resp, nil
		})

	updated, uErr := svc.MarkRead("c1")
	assert.NoError(t, uErr)
	assert.True(t, updated.IsRead)

	// everything except isRead is byte-identical with the stored document
	assert.Equal(t, stored.Name, saved.Name)
	assert.Equal(t, stored.Email, saved.Email)
	assert.Equal(t, stored.Phone, saved.Phone)
	assert.Equal(t, stored.Message, saved.Message)
	assert.Equal(t, stored.Created, saved.Created)
	assert.Equal(t, stored.Modified, saved.Modified)
}

func TestContactMarkReadIdempotent(t *testing.T) {
	selector, _, err := newTestSelector()
	if err != nil {
		t.Fatal(err)
	}
	defer httpmock.DeactivateAndReset()
	svc := NewContactService(selector, types.NewEnvironment(nil))

	stored := types.Contact{
		BaseDocument: types.BaseDocument{ID: "c2", Rev: "2-abc"},
		Name:         "Visitor",
		Email:        "visitor@example.com",
		Message:      "Hi there",
		IsRead:       true,
		Created:      100,
		Modified:     100,
	}
	get, _ := httpmock.NewJsonResponder(200, stored)
	httpmock.RegisterResponder("GET", fmt.Sprintf("%s/contacts/c2", dbURL), get)

	updated, uErr := svc.MarkRead("c2")
	assert.NoError(t, uErr)
	assert.True(t, updated.IsRead)
	// already read: no write issued
	assert.Equal(t, 0, httpmock.GetCallCountInfo()[fmt.Sprintf("PUT %s/contacts/c2", dbURL)])
}

func TestContactCreate(t *testing.T) {
	selector, _, err := newTestSelector()
	if err != nil {
		t.Fatal(err)
	}
	defer httpmock.DeactivateAndReset()
	svc := NewContactService(selector, types.NewEnvironment(nil))

	httpmock.RegisterResponder("PUT", `=~^http://localhost:5689/contacts/.+`,
		func(req *http.Request) (*http.Response, error) {
			resp, _ := httpmock.NewJsonResponse(201, types.SaveResponse{IsOK: true})
			return resp, nil
		})

	contact, cErr := svc.Create(&types.InputContact{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hi there",
	})
	assert.NoError(t, cErr)
	assert.NotEmpty(t, contact.ID)
	assert.False(t, contact.IsRead)
	assert.Equal(t, contact.Created, contact.Modified)
}
