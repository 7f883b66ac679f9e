package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "oper-review-backend/internal/errors"
	"oper-review-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"unit not found"`
}

// parseUnitID reads the :id path parameter. Only a non-integer is a bad request;
// an integer no unit can have (zero, negative, out of range) answers notFound.
func parseUnitID(c *gin.Context, notFound error) (uint, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			respondError(c, notFound)
			return 0, false
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid unit id"})
		return 0, false
	}
	if id <= 0 || uint64(id) > uint64(^uint(0)) {
		respondError(c, notFound)
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the request body, answering 400 on malformed input
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid body: " + err.Error()})
		return false
	}
	return true
}

// respondError maps service errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsValidation(err):
		status = http.StatusBadRequest
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsAlreadyExists(err):
		status = http.StatusConflict
	default:
		logger.WithContext(c.Request.Context()).
			WithError(err).
			WithField("path", c.FullPath()).
			Error("Request failed")
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
