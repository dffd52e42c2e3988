package company

import (
	"errors"
	"net/http"
	"net/url"

	companyerrors "go-orgs/internal/company/errors"
	"go-orgs/internal/middleware"
	"go-orgs/internal/shared/apperror"
	"go-orgs/internal/shared/request"
	"go-orgs/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("company.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.handler")
	}
	return &Handler{service: service, logger: l}
}

// Location is the canonical URL of a company within the caller's organization.
func Location(name string) string {
	return request.BasePath + ResourcePath + "/" + url.PathEscape(name)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("company request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.String("organization_id", c.GetString(middleware.OrganizationIDKey)),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// organizationID is set by middleware.OrganizationScope. Handlers reached
// without it are a routing mistake and answer 401.
func (h *Handler) organizationID(c *gin.Context) (string, bool) {
	orgID := c.GetString(middleware.OrganizationIDKey)
	if orgID == "" {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return "", false
	}
	return orgID, true
}

func (h *Handler) List(c *gin.Context) {
	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	companies, err := h.service.List(c.Request.Context(), orgID, request.ListOptions(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, companies, request.PaginationMeta(c))
}

func (h *Handler) GetByName(c *gin.Context) {
	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	comp, err := h.service.GetByName(c.Request.Context(), orgID, c.Param("name"), request.Filter(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("company request body rejected", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	comp, err := h.service.Create(c.Request.Context(), orgID, req)
	if err != nil {
		if errors.Is(err, companyerrors.ErrCompanyAlreadyExists) {
			response.Redirect(c, Location(req.Name))
			return
		}
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, comp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("company request body rejected", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	comp, changed, err := h.service.Update(c.Request.Context(), orgID, c.Param("name"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if !changed {
		response.Redirect(c, Location(comp.Name))
		return
	}

	response.Success(c, http.StatusOK, comp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	comp, err := h.service.Delete(c.Request.Context(), orgID, c.Param("name"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comp, nil)
}
