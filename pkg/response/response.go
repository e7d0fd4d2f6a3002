package response

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	pkgErrors "item-service/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error renders err. An *errors.HTTPError keeps its status code and message,
// anything else is treated as an internal error.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		InternalError(c, err)
		return
	}
	if httpErr.Code >= http.StatusInternalServerError {
		capture(c, err)
	}

	c.AbortWithStatusJSON(httpErr.Code, Resp{
		ErrorCode: httpErr.Code,
		Message:   httpErr.Message,
	})
}

// InternalError sends 500 internal server error and reports err to Sentry.
func InternalError(c *gin.Context, err error) {
	capture(c, err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   TooManyRequestsMessage,
	})
}

// capture is a no-op unless sentry.Init was called.
func capture(c *gin.Context, err error) {
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetRequest(c.Request)
	})
	hub.CaptureException(err)
}
