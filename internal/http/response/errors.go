package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/chinook-backend/internal/observability"
	"github.com/yungbote/chinook-backend/internal/platform/apierr"
	"github.com/yungbote/chinook-backend/internal/platform/ctxutil"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

const CodeInternal = "internal_error"

// RespondErr writes err in the error envelope. *apierr.Error keeps its status
// and code; anything else is logged and reported as a 500 without detail.
func RespondErr(c *gin.Context, log *logger.Logger, err error) {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		RespondError(c, ae.Status, ae.Code, ae.Err)
		return
	}
	route := c.FullPath()
	if log != nil {
		fields := append([]interface{}{"error", err, "method", c.Request.Method, "route", route}, ctxutil.LogFields(c.Request.Context())...)
		log.Error("Request failed", fields...)
	}
	observability.Current().IncStorageError(route)
	RespondError(c, http.StatusInternalServerError, CodeInternal, errors.New("Internal server error"))
}
