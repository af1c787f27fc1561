package security

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/RachitaModiTR/PlanPoker/internal/models"
)

// Input length constraints
const (
	MaxSessionNameLength     = 100
	MaxParticipantNameLength = 50
	MaxWorkItemTitleLength   = 200
	MinNameLength            = 1
)

var (
	// Name validation regex - Unicode letters, digits, spaces, apostrophes, hyphens, underscores, dots
	// \p{L} matches any Unicode letter (includes accented characters)
	// \p{N} matches any Unicode number
	nameRegex = regexp.MustCompile(`^[\p{L}\p{N}\s'\-_.]+$`)
	// Dangerous characters that could be used for injection attacks
	dangerousCharsRegex = regexp.MustCompile(`[<>{}[\]\\;|&$()` + "`" + `]`)
)

// ValidateName validates a name string with length and character constraints.
// Returns the trimmed name, or an error if validation fails.
func ValidateName(name string, maxLen int) (string, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return "", fmt.Errorf("name cannot be empty")
	}
	if len(name) < MinNameLength {
		return "", fmt.Errorf("name too short (min %d characters)", MinNameLength)
	}
	if len(name) > maxLen {
		return "", fmt.Errorf("name too long (max %d characters)", maxLen)
	}

	if !nameRegex.MatchString(name) {
		return "", fmt.Errorf("name contains invalid characters (allowed: letters, numbers, spaces, apostrophes, hyphens, underscores, dots)")
	}
	if dangerousCharsRegex.MatchString(name) {
		return "", fmt.Errorf("name contains potentially dangerous characters")
	}

	for _, r := range name {
		if r < 32 || r == 127 {
			return "", fmt.Errorf("name contains control characters")
		}
	}

	return name, nil
}

// ValidateSessionName validates a session name.
func ValidateSessionName(name string) (string, error) {
	return ValidateName(name, MaxSessionNameLength)
}

// ValidateParticipantName validates a participant display name.
func ValidateParticipantName(name string) (string, error) {
	return ValidateName(name, MaxParticipantNameLength)
}

// ValidateWorkItemTitle validates a work item title.
func ValidateWorkItemTitle(title string) (string, error) {
	return ValidateName(title, MaxWorkItemTitleLength)
}

// NormalizeJobRole maps a raw job-role string from the handshake to a
// known JobRole. Unknown or empty values fall back to Developer; a bad
// role string never rejects a connection.
func NormalizeJobRole(raw string) models.JobRole {
	switch models.JobRole(raw) {
	case models.JobRoleAdmin, models.JobRoleProduct, models.JobRoleDeveloper, models.JobRoleQA:
		return models.JobRole(raw)
	default:
		return models.JobRoleDeveloper
	}
}
