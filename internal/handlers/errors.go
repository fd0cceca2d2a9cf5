package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/compstack/company_tracker_app/internal/apperrors"
)

// errorKind names the taxonomy bucket an error belongs to. The conversational
// binding surfaces kind and detail verbatim.
func errorKind(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return "INVALID_ARGUMENT"
	case errors.Is(err, apperrors.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, apperrors.ErrConflict):
		return "CONFLICT"
	case errors.Is(err, apperrors.ErrAmbiguous):
		return "AMBIGUOUS"
	case errors.Is(err, apperrors.ErrExhausted):
		return "EXHAUSTED"
	default:
		return "INTERNAL"
	}
}

// respondError writes the error with the HTTP status its kind maps to.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrAmbiguous),
		errors.Is(err, apperrors.ErrExhausted):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"kind": errorKind(err), "error": err.Error()})
}
