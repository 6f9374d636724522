package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in team"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfirmationRequiredError is the soft 400 used by the team deletion
// two-step protocol: the caller is expected to repeat the request with the
// confirmation flag set.
type ConfirmationRequiredError struct {
	Message string
}

func (e *ConfirmationRequiredError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrTeamNotFound       = &NotFoundError{Entity: "team"}
	ErrMembershipNotFound = &NotFoundError{Entity: "team membership"}
	ErrPlayerNotFound     = &NotFoundError{Entity: "player"}
	ErrGameNotFound       = &NotFoundError{Entity: "game"}
	ErrPeriodNotFound     = &NotFoundError{Entity: "period"}
	ErrGamePlayerNotFound = &NotFoundError{Entity: "game player"}
	ErrShotNotFound       = &NotFoundError{Entity: "shot"}
	ErrGoalNotFound       = &NotFoundError{Entity: "goal"}
	ErrFaceoffNotFound    = &NotFoundError{Entity: "faceoff"}
)

// Already Exists Errors
var (
	ErrEmailExists        = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrMembershipExists   = &AlreadyExistsError{Entity: "team membership", Context: "for this user"}
	ErrPlayerNameExists   = &AlreadyExistsError{Entity: "player", Context: "with this name on the team"}
	ErrJerseyNumberExists = &AlreadyExistsError{Entity: "player", Context: "with this jersey number on the team"}
	ErrFaceoffExists      = &AlreadyExistsError{Entity: "faceoff", Context: "for this player in the game"}
)

// Business Logic Errors
var (
	ErrInvalidCredentials     = &AuthenticationError{Message: "invalid email or password"}
	ErrNotTeamMember          = &AuthorizationError{Message: "user is not a member of this team"}
	ErrNotTeamAdmin           = &AuthorizationError{Message: "admin role required for this action"}
	ErrLastAdmin              = errors.New("team must retain at least one admin")
	ErrSelfRemoval            = errors.New("use leave to remove your own membership")
	ErrPlayerNotOnTeam        = errors.New("player does not belong to the game's team")
	ErrPeriodNotInGame        = errors.New("period does not belong to this game")
	ErrWonExceedsTaken        = errors.New("won count cannot exceed taken count")
	ErrGameHasShots           = errors.New("game has recorded shots and cannot be deleted")
	ErrPlayerHasShots         = errors.New("player has recorded shots and cannot be deleted")
	ErrTeamCodeExhausted      = errors.New("could not generate a unique team code")
	ErrInvalidTeamCode        = errors.New("invalid team code")
	ErrGoalTrackingDivergence = errors.New("shot-based and goal-record counts diverge")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfirmationRequired checks if an error is a ConfirmationRequiredError
func IsConfirmationRequired(err error) bool {
	var confirmErr *ConfirmationRequiredError
	return errors.As(err, &confirmErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfirmationRequiredError creates a new ConfirmationRequiredError
func NewConfirmationRequiredError(message string) error {
	return &ConfirmationRequiredError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
