package repository

import (
	"encoding/json"
	"errors"
	"reflect"

	"github.com/go-resty/resty/v2"
)

// MapToObject decodes a raw CouchDB resty response into the given document
// struct.
func MapToObject(resp interface{}, obj interface{}) error {
	response, ok := resp.(*resty.Response)
	if !ok {
		return errors.New("resp is not a resty.Response")
	}

	// obj must be a pointer to a struct
	val := reflect.ValueOf(obj)
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		return errors.New("obj is not a pointer to a struct")
	}

	if err := json.Unmarshal(response.Body(), obj); err != nil {
		return errors.New(string(response.Body()) + " cannot be mapped to the given object")
	}
	return nil
}
