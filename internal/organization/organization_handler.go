package organization

import (
	"errors"
	"net/http"
	"net/url"

	organizationerrors "go-orgs/internal/organization/errors"
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
	l := zap.L().Named("organization.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("organization.handler")
	}
	return &Handler{service: service, logger: l}
}

// Location is the canonical URL of an organization.
func Location(slug string) string {
	return request.BasePath + ResourcePath + "/" + url.PathEscape(slug)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("organization request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	h.logger.Debug("organization request body rejected", zap.Error(err))
	h.writeServiceError(c, apperror.MapValidationError(err))
}

func (h *Handler) List(c *gin.Context) {
	orgs, err := h.service.List(c.Request.Context(), request.ListOptions(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, orgs, request.PaginationMeta(c))
}

func (h *Handler) GetBySlug(c *gin.Context) {
	org, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"), request.Filter(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, org, nil)
}

// Create answers 201 with the new organization, or 303 to the existing one
// when the slug is taken.
func (h *Handler) Create(c *gin.Context) {
	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	org, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, organizationerrors.ErrOrganizationAlreadyExists) {
			response.Redirect(c, Location(req.Slug))
			return
		}
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, org, nil)
}

// Update answers 200 with the updated organization, or 303 to its canonical
// URL when nothing changed.
func (h *Handler) Update(c *gin.Context) {
	var req UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	org, changed, err := h.service.Update(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if !changed {
		response.Redirect(c, Location(org.Slug))
		return
	}

	response.Success(c, http.StatusOK, org, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	org, err := h.service.Delete(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, org, nil)
}
