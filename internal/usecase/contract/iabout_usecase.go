package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/contract"
	"github.com/mikiasgoitom/Studiofolio/internal/domain/entity"
)

// IAboutUseCase manages the About page sections and the staff list.
type IAboutUseCase interface {
	GetAboutPage(ctx context.Context) (*contract.AboutPage, error)
	UpdateMainDetails(ctx context.Context, mainImageURL, description *string) (*entity.AboutUs, error)
	UpdateMeetTeam(ctx context.Context, title, subtitle *string) (*entity.AboutUs, error)
	UpdateWhatWeDo(ctx context.Context, title, description *string) (*entity.AboutUs, error)

	ListStaff(ctx context.Context) ([]entity.StaffMember, error)
	AddStaff(ctx context.Context, name string) (*entity.StaffMember, error)
	DeleteStaff(ctx context.Context, staffID string) error
	ReorderStaff(ctx context.Context, orderedIDs []string) error
}
