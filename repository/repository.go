package repository

import (
	"context"

	"portfolio-admin-server/types"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (interface{}, error)
	GetAll(ctx context.Context, limit int, skip int) ([]types.RawDocument, error)
	Save(ctx context.Context, docID string, data interface{}) error
	Delete(ctx context.Context, id string) error
	GetDBName() string
	GetClient() interface{}
}

// DBSelector hands out the per-resource repositories wired at startup.
type DBSelector interface {
	ChooseDB(dbName string) (Repository, error)
}
