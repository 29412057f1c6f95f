package resume

import (
	"context"

	domresume "github.com/kailas-cloud/jobmatch/internal/domain/resume"
)

// Repository defines the storage contract for resumes.
type Repository interface {
	Save(ctx context.Context, res *domresume.Resume) (bool, error)
	Get(ctx context.Context, id string) (domresume.Resume, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domresume.Resume, error)
}
