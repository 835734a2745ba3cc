package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateTarget validates a requested clique size. Zero means "find the
// maximum clique" and is allowed; negative values are not.
func ValidateTarget(target int) error {
	if target < 0 {
		return New(ErrCodeInvalidTarget, "target clique size cannot be negative, got %d", target)
	}
	return nil
}

// ValidateDatasetName validates a dataset name for safety and correctness.
// Dataset names are used as cache key scopes and as file basenames, so the
// validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
func ValidateDatasetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "dataset name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "dataset name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "dataset name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "dataset name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidatePath validates a file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}

// algorithmNameRegex matches solver identifiers: lowercase words joined by
// single hyphens, e.g. "exact" or "tabu-search".
var algorithmNameRegex = regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`)

// ValidateAlgorithmName checks that a solver identifier is well formed.
// Whether a solver with that name actually exists is decided by the solver
// registry; this only rejects obvious garbage early.
func ValidateAlgorithmName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidAlgorithm, "algorithm name cannot be empty")
	}

	if !algorithmNameRegex.MatchString(name) {
		return New(ErrCodeInvalidAlgorithm, "invalid algorithm name: %q", name)
	}

	return nil
}

// renderFormats are the image formats the render command can produce.
var renderFormats = map[string]bool{
	"dot": true,
	"svg": true,
	"png": true,
}

// ValidateRenderFormat validates an output image format.
func ValidateRenderFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "render format cannot be empty")
	}

	if !renderFormats[strings.ToLower(format)] {
		return New(ErrCodeInvalidFormat, "unsupported render format: %q (want dot, svg, or png)", format)
	}

	return nil
}
