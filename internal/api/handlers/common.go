package handlers

import (
	"errors"
	"net/http"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/auth"
	apperrors "github.com/CyberToe/HockeyAnalyst-sub000/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// badRequestErrors are business rule violations that map to 400
var badRequestErrors = []error{
	apperrors.ErrLastAdmin,
	apperrors.ErrSelfRemoval,
	apperrors.ErrPlayerNotOnTeam,
	apperrors.ErrPeriodNotInGame,
	apperrors.ErrWonExceedsTaken,
	apperrors.ErrGameHasShots,
	apperrors.ErrPlayerHasShots,
	apperrors.ErrInvalidTeamCode,
}

// respondError translates service errors into HTTP responses
func respondError(c *gin.Context, err error) {
	var confirmErr *apperrors.ConfirmationRequiredError
	if errors.As(err, &confirmErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":                confirmErr.Message,
			"confirmationRequired": true,
		})
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) || apperrors.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		for _, known := range badRequestErrors {
			if errors.Is(err, known) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// currentUserID extracts the authenticated user's id, aborting with 401 when
// the auth middleware did not run.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return uuid.Nil, false
	}
	return userID, true
}

// parseUUIDParam parses a path parameter as a UUID, responding 400 on failure
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
