package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/airelay/dispatch"
	apperrors "github.com/kbukum/airelay/errors"
)

// DataResponse is the success envelope.
type DataResponse struct {
	Data any `json:"data"`
}

// TextData is the payload of every dispatch reply.
type TextData struct {
	Text string `json:"text"`
}

// RespondWithError derives the status and body from an AppError; any other
// error is sent as a generic 500. The error is also attached to the Gin
// context so the request span records it.
func RespondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.Internal(err)
	}
	_ = c.Error(appErr)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
}

// RespondOK sends a 200 response wrapping data.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

// RespondResult maps a dispatch Result onto the envelope.
func RespondResult(c *gin.Context, res dispatch.Result) {
	if err := res.Err(); err != nil {
		RespondWithError(c, err)
		return
	}
	RespondOK(c, TextData{Text: res.Text})
}
