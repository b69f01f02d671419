package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"assettrack/internal/core/validation"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/metadata"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Error writes the status and body that correspond to err. Unknown errors are
// logged and reported as 500 without details.
func Error(c *gin.Context, logger *zap.Logger, err error) {
	var (
		notFound      *custom_error.NotFoundError
		alreadyExists *custom_error.AlreadyExistsError
		invalid       *custom_error.ValidationError
		ruleViolation *custom_error.RuleViolationError
		unauthorized  *custom_error.UnauthorizedError
	)

	switch {
	case errors.As(err, &notFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &alreadyExists):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &invalid):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": invalid.Fields})
	case errors.As(err, &ruleViolation):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &unauthorized):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		logger.Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// BindError reports a payload that could not be decoded or failed binding rules.
func BindError(c *gin.Context, err error) {
	var (
		fieldErrors validator.ValidationErrors
		enumErr     *metadata.InvalidValueError
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &fieldErrors):
		details := make(map[string]string, len(fieldErrors))
		for _, fe := range fieldErrors {
			details[fe.Field()] = validation.Message(fe)
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": details})
	case errors.As(err, &enumErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": gin.H{enumErr.Field: enumErr.Error()}})
	case errors.As(err, &syntaxErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": "malformed JSON"})
	case errors.As(err, &typeErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": typeErr.Field + " has the wrong type"})
	default:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
	}
}
