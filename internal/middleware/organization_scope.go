package middleware

import (
	"errors"
	"net/http"

	"go-orgs/internal/shared/apperror"
	"go-orgs/internal/shared/contextutil"
	"go-orgs/internal/shared/response"
	"go-orgs/internal/tenant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const OrganizationIDKey = "organization_id"

// OrganizationScope requires the X-Organization header and pins the request
// to that organization. Absent is 401, blank or malformed is 400.
func OrganizationScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID, err := tenant.FromHeader(c.Request.Header)
		if err != nil {
			if errors.Is(err, tenant.ErrMissingOrganization) {
				response.AbortError(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "X-Organization header is required")
				return
			}
			response.AbortError(c, http.StatusBadRequest, apperror.CodeInvalidInput, "X-Organization header must be an organization id")
			return
		}

		c.Set(OrganizationIDKey, orgID)

		ctx := contextutil.WithOrganizationID(c.Request.Context(), orgID)
		ctx = contextutil.WithLogger(ctx, contextutil.GetLogger(ctx, zap.L()).With(zap.String("organization_id", orgID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
