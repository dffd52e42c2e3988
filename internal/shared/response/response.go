package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PaginationMeta echoes the paging window a list was read with. The store is
// never asked for a total count.
type PaginationMeta struct {
	Page     int `json:"page,omitempty"`
	PageSize int `json:"pageSize,omitempty"`
}

// NewPaginationMeta returns nil when the client asked for neither a page nor
// a size, so unpaged lists carry no meta.
func NewPaginationMeta(page, size int) *PaginationMeta {
	if page <= 0 && size <= 0 {
		return nil
	}
	return &PaginationMeta{Page: page, PageSize: size}
}

type ApiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  any             `json:"data,omitempty"`
	Meta  *PaginationMeta `json:"meta,omitempty"`
	Error any             `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data any, meta *PaginationMeta) {
	c.JSON(status, ApiEnvelope{
		Ok:   true,
		Data: data,
		Meta: meta,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, ApiEnvelope{
		Ok: false,
		Error: map[string]any{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}

// AbortError writes the error envelope and stops the handler chain. Used by
// middleware.
func AbortError(c *gin.Context, status int, errorCode string, message string) {
	Error(c, status, errorCode, message, nil)
	c.Abort()
}

// Redirect answers 303 See Other pointing at the canonical resource URL.
func Redirect(c *gin.Context, location string) {
	c.Header("Location", location)
	c.Status(http.StatusSeeOther)
}
