package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrorBody is the JSON shape of every error response. Validation
// failures additionally carry a field→message map.
type ErrorBody struct {
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Message: message})
}

// ValidationError renders a 400 with per-field errors when err is an
// ozzo validation.Errors, and a plain 400 otherwise.
func ValidationError(c *gin.Context, err error) {
	if fieldErrs, ok := err.(validation.Errors); ok {
		c.JSON(http.StatusBadRequest, ErrorBody{
			Message: "invalid request data",
			Errors:  fieldErrs,
		})
		return
	}
	Error(c, http.StatusBadRequest, err.Error())
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
