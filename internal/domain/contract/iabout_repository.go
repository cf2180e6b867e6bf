package contract

import (
	"context"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/entity"
)

// IAboutRepository persists the About page document and its staff list.
type IAboutRepository interface {
	// GetAboutUs returns ErrNotFound style errors from the implementation when nothing was saved yet.
	GetAboutUs(ctx context.Context) (*entity.AboutUs, error)
	// UpsertAboutUs applies updates to the single document, creating it if needed.
	UpsertAboutUs(ctx context.Context, updates map[string]interface{}) (*entity.AboutUs, error)

	ListStaff(ctx context.Context, aboutUsID string) ([]entity.StaffMember, error)
	AddStaff(ctx context.Context, member *entity.StaffMember) error
	DeleteStaff(ctx context.Context, staffID string) error
	UpdateStaffOrder(ctx context.Context, orderedIDs []string) error
}
