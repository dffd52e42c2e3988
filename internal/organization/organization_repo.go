package organization

import (
	"context"

	"go-orgs/internal/shared/crud"
	"go-orgs/internal/shared/query"

	"gorm.io/gorm"
)

//go:generate mockgen -source=organization_repo.go -destination=mock/organization_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context, opts query.ListOptions) ([]Organization, error)
	GetBySlug(ctx context.Context, slug string, filter []string) (*Organization, error)
	Create(ctx context.Context, values []query.Assignment) (*Organization, error)
	UpdateBySlug(ctx context.Context, slug string, values []query.Assignment) (*Organization, bool, error)
	DeleteBySlug(ctx context.Context, slug string) (*Organization, error)
}

// Organizations are the tenant root, so no scope value is ever bound.
const noScope = ""

type repository struct {
	crud *crud.Repository[Organization]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{crud: crud.NewRepository(crud.NewGormStore(db), Table)}
}

func (r *repository) List(ctx context.Context, opts query.ListOptions) ([]Organization, error) {
	return r.crud.List(ctx, noScope, opts)
}

func (r *repository) GetBySlug(ctx context.Context, slug string, filter []string) (*Organization, error) {
	return r.crud.GetByKey(ctx, noScope, slug, filter)
}

func (r *repository) Create(ctx context.Context, values []query.Assignment) (*Organization, error) {
	return r.crud.Create(ctx, noScope, values)
}

func (r *repository) UpdateBySlug(ctx context.Context, slug string, values []query.Assignment) (*Organization, bool, error) {
	return r.crud.UpdateByKey(ctx, noScope, slug, values)
}

func (r *repository) DeleteBySlug(ctx context.Context, slug string) (*Organization, error) {
	return r.crud.DeleteByKey(ctx, noScope, slug)
}
