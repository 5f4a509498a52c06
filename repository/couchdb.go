package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"

	"portfolio-admin-server/types"
)

// implements Repository interface using CouchDB
type CouchDBRepository struct {
	client *resty.Client
	dbName string
}

func NewCouchDBRepository(url, dbName string, username string, password string, mock bool) (Repository, error) {
	cl := resty.New().SetBaseURL(url).SetTimeout(time.Second * 10)
	cl.SetHeader("Content-Type", "application/json")
	cl.SetHeader("Accept", "application/json")
	cl.SetBasicAuth(username, password)

	if mock {
		httpmock.ActivateNonDefault(cl.GetClient())
	}

	existsRes, existsErr := cl.R().Head(dbName)
	if existsErr != nil {
		return nil, fmt.Errorf("failed to check if database exists: %s", existsErr.Error())
	}
	if existsRes.StatusCode() == 200 {
		return &CouchDBRepository{cl, dbName}, nil
	}

	var ok types.OK
	var dbErr types.CouchDBError
	// create DB since it doesn't exist
	cl.R().SetResult(&ok).SetError(&dbErr).Put(dbName)
	if dbErr.Error != "" {
		return nil, fmt.Errorf("failed to create database %s: %s", dbName, dbErr.Error)
	}
	if !ok.IsOK {
		return nil, fmt.Errorf("failed to create database %s", dbName)
	}
	return &CouchDBRepository{cl, dbName}, nil
}

// GetByID returns a document by its ID (resty response to be mapped with MapToObject)
func (c *CouchDBRepository) GetByID(ctx context.Context, id string) (interface{}, error) {
	response, err := c.client.R().SetContext(ctx).Get(fmt.Sprintf("%s/%s", c.dbName, id))
	if err != nil {
		return nil, err
	}
	if response.IsError() {
		return nil, handleError(response)
	}
	return response, nil
}

// GetAll returns documents sorted newest-created-first via a mango _find
// query (requires the created-desc index, created at startup).
func (c *CouchDBRepository) GetAll(ctx context.Context, limit int, skip int) ([]types.RawDocument, error) {
	var result types.FindResponse
	var dbErr types.CouchDBError

	response, err := c.client.R().SetContext(ctx).SetBody(map[string]interface{}{
		"selector": map[string]interface{}{
			"created": map[string]interface{}{
				"$gt": 0,
			},
		},
		"sort":  []map[string]interface{}{{"created": "desc"}},
		"limit": limit,
		"skip":  skip,
	}).SetResult(&result).SetError(&dbErr).Post(fmt.Sprintf("%s/_find", c.dbName))
	if err != nil {
		return nil, err
	}
	if dbErr.Error != "" {
		return nil, fmt.Errorf("failed to get list of documents: %s", dbErr.Error)
	}
	if response.IsError() {
		return nil, handleError(response)
	}
	return result.Docs, nil
}

// Save creates a new doc or updates an existing one (callers carry the _rev
// over on updates).
func (c *CouchDBRepository) Save(ctx context.Context, docID string, data interface{}) error {
	var ok types.SaveResponse
	var dbErr types.CouchDBError

	response, err := c.client.R().SetContext(ctx).SetBody(data).SetResult(&ok).SetError(&dbErr).Put(fmt.Sprintf("%s/%s", c.dbName, docID))
	if err != nil {
		return err
	}
	if response.IsError() {
		return handleError(response)
	}
	if dbErr.Error != "" {
		return fmt.Errorf("failed to save document: %s", dbErr.Error)
	}
	if !ok.IsOK {
		return fmt.Errorf("failed to save document %s", docID)
	}
	return nil
}

// Delete deletes a document by its ID
func (c *CouchDBRepository) Delete(ctx context.Context, id string) error {
	doc, err := c.GetByID(ctx, id)
	if err != nil {
		return err
	}
	var base types.BaseDocument
	if mErr := MapToObject(doc, &base); mErr != nil {
		return mErr
	}

	var delErr types.CouchDBError
	response, err := c.client.R().SetContext(ctx).SetError(&delErr).SetQueryParam("rev", base.Rev).Delete(fmt.Sprintf("%s/%s", c.dbName, id))
	if err != nil {
		return err
	}
	if response.IsError() {
		return handleError(response)
	}
	if delErr.Error != "" {
		return fmt.Errorf("failed to delete document: %s", delErr.Error)
	}
	return nil
}

// return name of the database
func (c *CouchDBRepository) GetDBName() string {
	return c.dbName
}

// returns a resty client
func (c *CouchDBRepository) GetClient() interface{} {
	return c.client
}
