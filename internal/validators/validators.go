package validators

import (
	"fmt"
	"regexp"
	"strings"
)

// UUID validation regex (RFC 4122 v4)
var uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// Semantic versioning regex (basic)
var semverRegex = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

// Request IDs are echoed back to clients, so only a conservative charset is accepted
var requestIDRegex = regexp.MustCompile(`^[A-Za-z0-9._:-]+$`)

// MaxRequestIDLength caps client-supplied X-Request-ID values
const MaxRequestIDLength = 128

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidUUID checks if the string is a valid RFC 4122 v4 UUID
func IsValidUUID(uuid string) bool {
	if uuid == "" {
		return false
	}
	return uuidRegex.MatchString(strings.ToLower(uuid))
}

// IsValidSemanticVersion checks if the version follows semver (e.g. 1.2.3, 1.2.3-beta.1)
// Go module versions carry a leading "v", which is accepted
func IsValidSemanticVersion(version string) bool {
	if version == "" {
		return false
	}
	return semverRegex.MatchString(strings.TrimPrefix(version, "v"))
}

// ValidateLibraryVersion validates a dependency version string
func ValidateLibraryVersion(version string, fieldName string) error {
	if version == "" {
		return NewValidationError(fieldName, "version is required")
	}
	if !IsValidSemanticVersion(version) {
		return NewValidationError(fieldName, fmt.Sprintf("invalid semantic version: %s", version))
	}
	return nil
}

// ValidateStringLength validates string length constraints
func ValidateStringLength(value string, fieldName string, minLength, maxLength int) error {
	length := len(value)
	if length < minLength {
		return NewValidationError(fieldName, fmt.Sprintf("must be at least %d characters (got %d)", minLength, length))
	}
	if maxLength > 0 && length > maxLength {
		return NewValidationError(fieldName, fmt.Sprintf("must be at most %d characters (got %d)", maxLength, length))
	}
	return nil
}

// ValidateRequestID validates a client-supplied request identifier
func ValidateRequestID(id string, fieldName string) error {
	if err := ValidateStringLength(id, fieldName, 1, MaxRequestIDLength); err != nil {
		return err
	}
	if !requestIDRegex.MatchString(id) {
		return NewValidationError(fieldName, "contains unsupported characters")
	}
	return nil
}
