package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard/internal/domain"
	"jobboard/internal/http/middleware"
	"jobboard/internal/query"
)

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// pageFromRequest funnels raw paging/sorting query params through the
// normalizer. Handlers never hand raw sort input to a repository.
func pageFromRequest(c *gin.Context, sortable map[string]bool, defaultSort string) domain.PageRequest {
	return query.Normalize(
		c.Query("page"),
		c.Query("limit"),
		c.Query("sort"),
		c.Query("order"),
		sortable,
		defaultSort,
	)
}

// idParam parses the :id path segment; responds 400 and returns false when it
// is not a positive integer.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return id, true
}

func respondPage[T any](c *gin.Context, items []T, total int) {
	c.JSON(http.StatusOK, domain.Page[T]{Data: items, Total: total})
}
