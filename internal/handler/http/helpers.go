package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Studiofolio/internal/handler/http/dto"
	"github.com/mikiasgoitom/Studiofolio/internal/usecase"
	"github.com/mikiasgoitom/Studiofolio/internal/usecase/arrangement"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// UsecaseErrorHandler maps domain and board errors to status codes. Anything unknown is
// logged by gin and reported as a 500 without internals.
func UsecaseErrorHandler(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrGalleryNotFound),
		errors.Is(err, usecase.ErrMediaNotFound),
		errors.Is(err, usecase.ErrStaffNotFound),
		errors.Is(err, usecase.ErrEngagementNotFound),
		errors.Is(err, arrangement.ErrUnknownItem):
		status = http.StatusNotFound
	case errors.Is(err, usecase.ErrSlugTaken),
		errors.Is(err, arrangement.ErrNotEditing),
		errors.Is(err, arrangement.ErrUploading),
		errors.Is(err, arrangement.ErrNoPendingDelete):
		status = http.StatusConflict
	case errors.Is(err, arrangement.ErrDeleteDisabled):
		status = http.StatusMethodNotAllowed
	case errors.Is(err, arrangement.ErrClosed):
		status = http.StatusServiceUnavailable
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, usecase.ErrTitleRequired),
		errors.Is(err, usecase.ErrUnknownID),
		errors.Is(err, usecase.ErrDuplicateID),
		errors.Is(err, usecase.ErrNothingToUpdate),
		errors.Is(err, usecase.ErrStaffNameRequired),
		errors.Is(err, usecase.ErrStoryIDRequired),
		errors.Is(err, usecase.ErrInvalidReaction),
		errors.Is(err, usecase.ErrContentRequired),
		errors.Is(err, usecase.ErrContentTooLong):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		ErrorHandler(c, status, "internal server error")
		return
	}
	ErrorHandler(c, status, err.Error())
}
