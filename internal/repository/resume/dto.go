package resume

import (
	"fmt"
	"time"

	domresume "github.com/kailas-cloud/jobmatch/internal/domain/resume"
)

const (
	fieldFileName   = "file_name"
	fieldText       = "text"
	fieldUploadedAt = "uploaded_at"
)

// buildHashFields converts a Resume into a flat map for HSET.
func buildHashFields(r *domresume.Resume) map[string]string {
	return map[string]string{
		fieldFileName:   r.FileName(),
		fieldText:       r.Text(),
		fieldUploadedAt: r.UploadedAt().UTC().Format(time.RFC3339Nano),
	}
}

// parseHashFields converts a stored hash back into a Resume.
func parseHashFields(id string, m map[string]string) (domresume.Resume, error) {
	var uploadedAt time.Time
	if v := m[fieldUploadedAt]; v != "" {
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return domresume.Resume{}, fmt.Errorf("parse %s: %w", fieldUploadedAt, err)
		}
		uploadedAt = t
	}
	return domresume.Reconstruct(id, m[fieldFileName], m[fieldText], uploadedAt), nil
}
