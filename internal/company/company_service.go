package company

import (
	"context"
	"net/http"

	companyerrors "go-orgs/internal/company/errors"
	"go-orgs/internal/events"
	"go-orgs/internal/shared/apperror"
	"go-orgs/internal/shared/contextutil"
	"go-orgs/internal/shared/query"

	"go.uber.org/zap"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, orgID string, opts query.ListOptions) ([]Company, error)
	GetByName(ctx context.Context, orgID, name string, filter []string) (*Company, error)
	Create(ctx context.Context, orgID string, req CreateCompanyRequest) (*Company, error)
	Update(ctx context.Context, orgID, name string, req UpdateCompanyRequest) (*Company, bool, error)
	Delete(ctx context.Context, orgID, name string) (*Company, error)
}

type service struct {
	repo      Repository
	publisher events.Publisher
	logger    *zap.Logger
}

func NewService(repo Repository, publisher events.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &service{repo: repo, publisher: publisher, logger: l}
}

func (s *service) List(ctx context.Context, orgID string, opts query.ListOptions) ([]Company, error) {
	companies, err := s.repo.List(ctx, orgID, opts)
	if err != nil {
		s.log(ctx).Error("list companies failed", zap.Error(err))
		return nil, mapRepositoryError(err, opRead)
	}
	return companies, nil
}

func (s *service) GetByName(ctx context.Context, orgID, name string, filter []string) (*Company, error) {
	comp, err := s.repo.GetByName(ctx, orgID, name, filter)
	if err != nil {
		s.log(ctx).Error("get company failed", zap.String("name", name), zap.Error(err))
		return nil, mapRepositoryError(err, opRead)
	}
	if comp == nil {
		return nil, companyerrors.ErrCompanyNotFound
	}
	return comp, nil
}

func (s *service) Create(ctx context.Context, orgID string, req CreateCompanyRequest) (*Company, error) {
	log := s.log(ctx).With(zap.String("name", req.Name))
	log.Debug("create company requested")

	comp, err := s.repo.Create(ctx, orgID, req.Assignments())
	if err != nil {
		mapped := mapRepositoryError(err, opCreate)
		logRepositoryError(log, "create company", err, mapped)
		return nil, mapped
	}

	s.publish(ctx, events.ActionCreated, comp)
	log.Info("company created", zap.String("company_id", comp.ID))
	return comp, nil
}

func (s *service) Update(ctx context.Context, orgID, name string, req UpdateCompanyRequest) (*Company, bool, error) {
	log := s.log(ctx).With(zap.String("name", name))

	comp, changed, err := s.repo.UpdateByName(ctx, orgID, name, req.Assignments())
	if err != nil {
		mapped := mapRepositoryError(err, opUpdate)
		logRepositoryError(log, "update company", err, mapped)
		return nil, false, mapped
	}
	if comp == nil {
		return nil, false, companyerrors.ErrCompanyNotFound
	}
	if !changed {
		log.Debug("update company is a no-op")
		return comp, false, nil
	}

	s.publish(ctx, events.ActionUpdated, comp)
	log.Info("company updated", zap.String("company_id", comp.ID))
	return comp, true, nil
}

func (s *service) Delete(ctx context.Context, orgID, name string) (*Company, error) {
	log := s.log(ctx).With(zap.String("name", name))

	comp, err := s.repo.DeleteByName(ctx, orgID, name)
	if err != nil {
		log.Error("delete company failed", zap.Error(err))
		return nil, mapRepositoryError(err, opUpdate)
	}
	if comp == nil {
		return nil, companyerrors.ErrCompanyNotFound
	}

	s.publish(ctx, events.ActionDeleted, comp)
	log.Info("company deleted", zap.String("company_id", comp.ID))
	return comp, nil
}

func (s *service) publish(ctx context.Context, action string, comp *Company) {
	event := events.NewLifecycleEvent(
		events.AggregateCompany, action,
		comp.ID, comp.OrganizationID, comp.Name,
		contextutil.GetRequestID(ctx),
	)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log(ctx).Warn("publish company event failed",
			zap.String("event_type", event.EventType),
			zap.String("company_id", comp.ID),
			zap.Error(err),
		)
	}
}

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
