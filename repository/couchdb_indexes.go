package repository

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

// CreateCreatedDescIndex creates the index backing the newest-first list
// queries (GetAll sorts on created desc).
func CreateCreatedDescIndex(repo Repository) error {
	dbName := repo.GetDBName()
	indexPayload := map[string]interface{}{
		"index": map[string]interface{}{
			"fields": []map[string]interface{}{
				{"created": "desc"},
			},
		},
		"name": "created-desc-index",
		"ddoc": "created-desc-index",
		"type": "json",
	}

	c := repo.GetClient().(*resty.Client)
	resp, rErr := c.R().SetBody(indexPayload).Post(fmt.Sprintf("%s/%s", dbName, "_index"))
	if rErr != nil {
		return rErr
	}
	if resp.IsError() {
		return handleError(resp)
	}
	return nil
}
