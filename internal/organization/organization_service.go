package organization

import (
	"context"
	"net/http"

	"go-orgs/internal/events"
	organizationerrors "go-orgs/internal/organization/errors"
	"go-orgs/internal/shared/apperror"
	"go-orgs/internal/shared/contextutil"
	"go-orgs/internal/shared/query"

	"go.uber.org/zap"
)

//go:generate mockgen -source=organization_service.go -destination=mock/organization_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, opts query.ListOptions) ([]Organization, error)
	GetBySlug(ctx context.Context, slug string, filter []string) (*Organization, error)
	Create(ctx context.Context, req CreateOrganizationRequest) (*Organization, error)
	// Update reports false when the request matched the stored values and
	// nothing was written.
	Update(ctx context.Context, slug string, req UpdateOrganizationRequest) (*Organization, bool, error)
	Delete(ctx context.Context, slug string) (*Organization, error)
}

type service struct {
	repo      Repository
	publisher events.Publisher
	logger    *zap.Logger
}

func NewService(repo Repository, publisher events.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("organization.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("organization.service")
	}
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &service{repo: repo, publisher: publisher, logger: l}
}

func (s *service) List(ctx context.Context, opts query.ListOptions) ([]Organization, error) {
	orgs, err := s.repo.List(ctx, opts)
	if err != nil {
		s.log(ctx).Error("list organizations failed", zap.Error(err))
		return nil, mapRepositoryError(err, opRead)
	}
	return orgs, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string, filter []string) (*Organization, error) {
	org, err := s.repo.GetBySlug(ctx, slug, filter)
	if err != nil {
		s.log(ctx).Error("get organization failed", zap.String("slug", slug), zap.Error(err))
		return nil, mapRepositoryError(err, opRead)
	}
	if org == nil {
		return nil, organizationerrors.ErrOrganizationNotFound
	}
	return org, nil
}

func (s *service) Create(ctx context.Context, req CreateOrganizationRequest) (*Organization, error) {
	log := s.log(ctx).With(zap.String("slug", req.Slug))
	log.Debug("create organization requested")

	org, err := s.repo.Create(ctx, req.Assignments())
	if err != nil {
		mapped := mapRepositoryError(err, opCreate)
		logRepositoryError(log, "create organization", err, mapped)
		return nil, mapped
	}

	s.publish(ctx, events.ActionCreated, org)
	log.Info("organization created", zap.String("organization_id", org.ID))
	return org, nil
}

func (s *service) Update(ctx context.Context, slug string, req UpdateOrganizationRequest) (*Organization, bool, error) {
	log := s.log(ctx).With(zap.String("slug", slug))

	org, changed, err := s.repo.UpdateBySlug(ctx, slug, req.Assignments())
	if err != nil {
		mapped := mapRepositoryError(err, opUpdate)
		logRepositoryError(log, "update organization", err, mapped)
		return nil, false, mapped
	}
	if org == nil {
		return nil, false, organizationerrors.ErrOrganizationNotFound
	}
	if !changed {
		log.Debug("update organization is a no-op")
		return org, false, nil
	}

	s.publish(ctx, events.ActionUpdated, org)
	log.Info("organization updated", zap.String("organization_id", org.ID))
	return org, true, nil
}

func (s *service) Delete(ctx context.Context, slug string) (*Organization, error) {
	org, err := s.repo.DeleteBySlug(ctx, slug)
	if err != nil {
		s.log(ctx).Error("delete organization failed", zap.String("slug", slug), zap.Error(err))
		return nil, mapRepositoryError(err, opUpdate)
	}
	if org == nil {
		return nil, organizationerrors.ErrOrganizationNotFound
	}

	s.publish(ctx, events.ActionDeleted, org)
	s.log(ctx).Info("organization deleted", zap.String("slug", slug), zap.String("organization_id", org.ID))
	return org, nil
}

// publish is best effort. The write already happened, so a broker failure is
// logged and the request still succeeds.
func (s *service) publish(ctx context.Context, action string, org *Organization) {
	event := events.NewLifecycleEvent(
		events.AggregateOrganization, action,
		org.ID, org.ID, org.Slug,
		contextutil.GetRequestID(ctx),
	)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log(ctx).Warn("publish organization event failed",
			zap.String("event_type", event.EventType),
			zap.String("organization_id", org.ID),
			zap.Error(err),
		)
	}
}

// logRepositoryError logs client-caused failures at warn and the rest at error.
func logRepositoryError(log *zap.Logger, action string, err, mapped error) {
	if apperror.ToHTTP(mapped).Status < http.StatusInternalServerError {
		log.Warn(action+" rejected", zap.Error(err))
		return
	}
	log.Error(action+" failed", zap.Error(err))
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}
