// Package resume holds the stored resume aggregate and its validation rules.
package resume

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kailas-cloud/jobmatch/internal/domain"
	"github.com/kailas-cloud/jobmatch/internal/domain/text"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,128}$`)

// Limits bounds accepted resume files and extracted text.
type Limits struct {
	MinTextChars int
	MaxFileBytes int64
}

// DefaultLimits returns the standard resume bounds: 100 characters of text,
// 10 MiB per file.
func DefaultLimits() Limits {
	return Limits{MinTextChars: 100, MaxFileBytes: 10 << 20}
}

// Resume is a stored resume (immutable value object).
type Resume struct {
	id         string
	fileName   string
	text       string
	uploadedAt time.Time
}

// New validates and creates a Resume. text is cleaned before validation.
func New(id, fileName, rawText string, uploadedAt time.Time, limits Limits) (Resume, error) {
	if !idRegex.MatchString(id) {
		return Resume{}, fmt.Errorf("%w: id must be 1-128 alphanumeric, underscore or hyphen characters",
			domain.ErrInvalidResume)
	}
	if err := ValidateFileName(fileName); err != nil {
		return Resume{}, err
	}

	cleaned := text.Clean(rawText)
	if n := utf8.RuneCountInString(cleaned); n < limits.MinTextChars {
		return Resume{}, fmt.Errorf("%w: %w: %d characters, minimum %d",
			domain.ErrInvalidResume, domain.ErrResumeTooShort, n, limits.MinTextChars)
	}

	return Resume{
		id:         id,
		fileName:   fileName,
		text:       cleaned,
		uploadedAt: uploadedAt.UTC(),
	}, nil
}

// Reconstruct creates a Resume without validation (storage hydration).
func Reconstruct(id, fileName, text string, uploadedAt time.Time) Resume {
	return Resume{id: id, fileName: fileName, text: text, uploadedAt: uploadedAt}
}

// ID returns the resume identifier.
func (r *Resume) ID() string { return r.id }

// FileName returns the original upload name.
func (r *Resume) FileName() string { return r.fileName }

// Text returns the cleaned resume text.
func (r *Resume) Text() string { return r.text }

// UploadedAt returns the upload time in UTC.
func (r *Resume) UploadedAt() time.Time { return r.uploadedAt }

// ValidateFileName accepts plain *.pdf names without path separators.
func ValidateFileName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: %w: name is required", domain.ErrInvalidResume, domain.ErrInvalidFileName)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %w: name must not contain path separators",
			domain.ErrInvalidResume, domain.ErrInvalidFileName)
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		return fmt.Errorf("%w: %w: only PDF files are supported", domain.ErrInvalidResume, domain.ErrInvalidFileName)
	}
	return nil
}

// ValidateFile checks upload metadata before any text is extracted.
func ValidateFile(name string, size int64, limits Limits) error {
	if err := ValidateFileName(name); err != nil {
		return err
	}
	if size <= 0 {
		return fmt.Errorf("%w: %w: file is empty", domain.ErrInvalidResume, domain.ErrInvalidFileSize)
	}
	if limits.MaxFileBytes > 0 && size > limits.MaxFileBytes {
		return fmt.Errorf("%w: %w: %d bytes, maximum %d",
			domain.ErrInvalidResume, domain.ErrInvalidFileSize, size, limits.MaxFileBytes)
	}
	return nil
}
