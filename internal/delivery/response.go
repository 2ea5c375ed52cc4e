package delivery

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindUnhandled:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body for err. Typed domain errors map to
// 400/404/409; anything else is an internal error and its detail is not exposed.
func respondError(c *gin.Context, logger logrus.FieldLogger, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		logger.Errorf("Handler Error: unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}
	status := statusForKind(de.Kind)
	if status >= http.StatusInternalServerError {
		logger.Errorf("Handler Error: %v", err)
	} else {
		logger.Warnf("Handler Error: %s error mapped to HTTP %d: %v", de.Kind, status, err)
	}
	c.JSON(status, ErrorResponse{Error: de.Message, Fields: de.Fields})
}

// bindJSON decodes the request body into dst. Malformed or mistyped bodies
// become an unhandled-kind error answered with 400.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewUnhandledError("Invalid request body: body is empty", err)
		}
		return domain.NewUnhandledError("Invalid request body", err)
	}
	return nil
}

// userID resolves the acting user from ?userId=, falling back to the default
// demo identity.
func userID(c *gin.Context, fallback string) string {
	if id := strings.TrimSpace(c.Query("userId")); id != "" {
		return id
	}
	return fallback
}

func parseIntID(raw, field string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("Invalid "+field+" format", domain.FieldError{
			Field: field, Rule: "gte", Message: "must be a positive integer",
		})
	}
	return id, nil
}
