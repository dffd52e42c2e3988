package crud

import (
	"context"
	"database/sql"

	"go-orgs/internal/shared/query"

	"gorm.io/gorm"
)

// Store runs a parameterized statement and hands back its rows.
type Store interface {
	Query(ctx context.Context, stmt query.Statement) (*sql.Rows, error)
}

// GormStore executes raw statements through gorm, which rebinds ? placeholders
// for the configured dialect.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Query(ctx context.Context, stmt query.Statement) (*sql.Rows, error) {
	return s.db.WithContext(ctx).Raw(stmt.SQL, stmt.Args...).Rows()
}
