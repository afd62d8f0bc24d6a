package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/chinook-backend/internal/data/repos"
	"github.com/yungbote/chinook-backend/internal/http/response"
	"github.com/yungbote/chinook-backend/internal/platform/validate"
)

const (
	codeInvalidID      = "invalid_id"
	codeInvalidQuery   = "invalid_query"
	codeInvalidRequest = "invalid_request"
)

// pathID reads a positive-or-zero integer path parameter. On failure the 400
// has already been written.
func pathID(c *gin.Context, name string) (int, bool) {
	raw := c.Param(name)
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		response.RespondError(c, http.StatusBadRequest, codeInvalidID, fmt.Errorf("%s must be an integer, got %q", name, raw))
		return 0, false
	}
	return n, true
}

// queryInt reads an optional non-negative integer query parameter.
func queryInt(c *gin.Context, name string) (*int, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		response.RespondError(c, http.StatusBadRequest, codeInvalidQuery, fmt.Errorf("%s must be a non-negative integer, got %q", name, raw))
		return nil, false
	}
	return &n, true
}

// GET ...?skip=0&limit=100
func pageQuery(c *gin.Context) (repos.Page, bool) {
	page := repos.DefaultPage()
	skip, ok := queryInt(c, "skip")
	if !ok {
		return page, false
	}
	limit, ok := queryInt(c, "limit")
	if !ok {
		return page, false
	}
	if skip != nil {
		page.Skip = *skip
	}
	if limit != nil {
		page.Limit = *limit
	}
	return page, true
}

// bindJSON decodes the body into dst and runs its binding tags.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		msg := validate.Message(err)
		if errors.Is(err, io.EOF) {
			msg = "request body is required"
		}
		response.RespondError(c, http.StatusBadRequest, codeInvalidRequest, errors.New(msg))
		return false
	}
	return true
}

// list writes rows, rendering a nil slice as [].
func list[T any](c *gin.Context, rows []T) {
	if rows == nil {
		rows = []T{}
	}
	response.RespondOK(c, rows)
}
