package company

import (
	"context"

	"go-orgs/internal/shared/crud"
	"go-orgs/internal/shared/query"

	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context, orgID string, opts query.ListOptions) ([]Company, error)
	GetByName(ctx context.Context, orgID, name string, filter []string) (*Company, error)
	Create(ctx context.Context, orgID string, values []query.Assignment) (*Company, error)
	UpdateByName(ctx context.Context, orgID, name string, values []query.Assignment) (*Company, bool, error)
	DeleteByName(ctx context.Context, orgID, name string) (*Company, error)
}

type repository struct {
	crud *crud.Repository[Company]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{crud: crud.NewRepository(crud.NewGormStore(db), Table)}
}

func (r *repository) List(ctx context.Context, orgID string, opts query.ListOptions) ([]Company, error) {
	return r.crud.List(ctx, orgID, opts)
}

func (r *repository) GetByName(ctx context.Context, orgID, name string, filter []string) (*Company, error) {
	return r.crud.GetByKey(ctx, orgID, name, filter)
}

func (r *repository) Create(ctx context.Context, orgID string, values []query.Assignment) (*Company, error) {
	return r.crud.Create(ctx, orgID, values)
}

func (r *repository) UpdateByName(ctx context.Context, orgID, name string, values []query.Assignment) (*Company, bool, error) {
	return r.crud.UpdateByKey(ctx, orgID, name, values)
}

func (r *repository) DeleteByName(ctx context.Context, orgID, name string) (*Company, error) {
	return r.crud.DeleteByKey(ctx, orgID, name)
}
