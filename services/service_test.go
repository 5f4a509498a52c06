package services

import (
	"fmt"

	"github.com/jarcoal/httpmock"

	"portfolio-admin-server/global"
	"portfolio-admin-server/media"
	"portfolio-admin-server/repository"
	"portfolio-admin-server/types"
)

const (
	dbURL     = "http://localhost:5689"
	mediaBase = "https://api.cloudinary.com/v1_1/testcloud"
)

// newTestSelector wires mocked repositories for every resource database and
// a mocked media client. Responders for the actual test traffic are
// registered by each test.
func newTestSelector() (*repository.CouchDBSelector, *media.Client, error) {
	httpmock.Activate()

	ok, err := httpmock.NewJsonResponder(201, types.OK{IsOK: true})
	if err != nil {
		return nil, nil, err
	}
	selector := repository.NewCouchDBSelector()
	for _, dbName := range []string{repository.Profile, repository.Projects, repository.Skills, repository.Contacts} {
		httpmock.RegisterResponder("HEAD", fmt.Sprintf("%s/%s", dbURL, dbName), ok)
		httpmock.RegisterResponder("PUT", fmt.Sprintf("%s/%s", dbURL, dbName), ok)
		db, dbErr := repository.NewCouchDBRepository(dbURL, dbName, "test", "test", true)
		if dbErr != nil {
			return nil, nil, dbErr
		}
		selector.AddDB(db)
	}

	mediaClient := media.NewClient(global.CloudinaryConfig{
		CloudName: "testcloud",
		ApiKey:    "key",
		ApiSecret: "secret",
	}, true)

	return selector, mediaClient, nil
}

func destroyCallCount() int {
	return httpmock.GetCallCountInfo()["POST "+mediaBase+"/image/destroy"]
}
