package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/contract"
	"github.com/mikiasgoitom/Studiofolio/internal/domain/entity"
	"github.com/mikiasgoitom/Studiofolio/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Studiofolio/internal/usecase/contract"
)

type AboutUseCaseImpl struct {
	repo      contract.IAboutRepository
	uuidgen   contract.IUUIDGenerator
	validator usecasecontract.IValidator
	logger    usecasecontract.IAppLogger
	cache     contract.IContentCache
	flight    singleflight.Group
}

var _ usecasecontract.IAboutUseCase = (*AboutUseCaseImpl)(nil)

func NewAboutUseCase(repo contract.IAboutRepository, uuidgen contract.IUUIDGenerator, validator usecasecontract.IValidator, logger usecasecontract.IAppLogger) *AboutUseCaseImpl {
	return &AboutUseCaseImpl{
		repo:      repo,
		uuidgen:   uuidgen,
		validator: validator,
		logger:    logger,
	}
}

// SetContentCache enables caching of the public About page.
func (uc *AboutUseCaseImpl) SetContentCache(cache contract.IContentCache) {
	uc.cache = cache
}

// GetAboutPage returns the About document with its staff. A page that was never edited
// comes back empty rather than as an error.
func (uc *AboutUseCaseImpl) GetAboutPage(ctx context.Context) (*contract.AboutPage, error) {
	if uc.cache != nil {
		t0 := time.Now()
		cached, found, err := uc.cache.GetAboutPage(ctx)
		metrics.ObserveCacheLookup("about", time.Since(t0).Seconds())
		switch {
		case err != nil:
			metrics.IncCacheError("about")
			uc.logger.Warningf("cache error: about page err=%v", err)
		case found && cached != nil:
			metrics.IncCacheHit("about")
			return cached, nil
		default:
			metrics.IncCacheMiss("about")
		}
	}

	v, err, _ := uc.flight.Do("about", func() (interface{}, error) {
		page := &contract.AboutPage{Staff: []entity.StaffMember{}}
		about, err := uc.repo.GetAboutUs(ctx)
		if err != nil && !errors.Is(err, contract.ErrNotFound) {
			return nil, fmt.Errorf("failed to get about page: %w", err)
		}
		if about != nil {
			page.About = about
			staff, err := uc.repo.ListStaff(ctx, about.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to list staff: %w", err)
			}
			page.Staff = staff
		}
		if uc.cache != nil {
			if err := uc.cache.SetAboutPage(ctx, page); err != nil {
				uc.logger.Warningf("cache set failed: about page err=%v", err)
			}
		}
		return page, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*contract.AboutPage), nil
}

func (uc *AboutUseCaseImpl) UpdateMainDetails(ctx context.Context, mainImageURL, description *string) (*entity.AboutUs, error) {
	updates := make(map[string]interface{})
	if mainImageURL != nil {
		url := strings.TrimSpace(*mainImageURL)
		if url != "" {
			if err := uc.validator.ValidateImageURL(url); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
		}
		updates["main_image_url"] = url
	}
	if description != nil {
		updates["description"] = strings.TrimSpace(*description)
	}
	return uc.update(ctx, "main details", updates)
}

func (uc *AboutUseCaseImpl) UpdateMeetTeam(ctx context.Context, title, subtitle *string) (*entity.AboutUs, error) {
	updates := make(map[string]interface{})
	if title != nil {
		updates["meet_team_title"] = strings.TrimSpace(*title)
	}
	if subtitle != nil {
		updates["meet_team_subtitle"] = strings.TrimSpace(*subtitle)
	}
	return uc.update(ctx, "meet the team", updates)
}

func (uc *AboutUseCaseImpl) UpdateWhatWeDo(ctx context.Context, title, description *string) (*entity.AboutUs, error) {
	updates := make(map[string]interface{})
	if title != nil {
		updates["what_we_do_title"] = strings.TrimSpace(*title)
	}
	if description != nil {
		updates["what_we_do_description"] = strings.TrimSpace(*description)
	}
	return uc.update(ctx, "what we do", updates)
}

func (uc *AboutUseCaseImpl) update(ctx context.Context, section string, updates map[string]interface{}) (*entity.AboutUs, error) {
	if len(updates) == 0 {
		return nil, ErrNothingToUpdate
	}
	updates["updated_at"] = time.Now()
	about, err := uc.repo.UpsertAboutUs(ctx, updates)
	if err != nil {
		uc.logger.Errorf("failed to update about %s: %v", section, err)
		return nil, fmt.Errorf("failed to update about %s: %w", section, err)
	}
	uc.invalidate(ctx)
	return about, nil
}

func (uc *AboutUseCaseImpl) ListStaff(ctx context.Context) ([]entity.StaffMember, error) {
	page, err := uc.GetAboutPage(ctx)
	if err != nil {
		return nil, err
	}
	return page.Staff, nil
}

// AddStaff appends a member at the end of the list, creating the About document first
// when the page has never been saved.
func (uc *AboutUseCaseImpl) AddStaff(ctx context.Context, name string) (*entity.StaffMember, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrStaffNameRequired
	}
	about, err := uc.ensureAbout(ctx)
	if err != nil {
		return nil, err
	}
	staff, err := uc.repo.ListStaff(ctx, about.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	member := &entity.StaffMember{
		ID:           uc.uuidgen.NewUUID(),
		AboutUsID:    about.ID,
		Name:         name,
		DisplayOrder: len(staff),
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.AddStaff(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to add staff member: %w", err)
	}
	uc.invalidate(ctx)
	return member, nil
}

func (uc *AboutUseCaseImpl) DeleteStaff(ctx context.Context, staffID string) error {
	if err := uc.repo.DeleteStaff(ctx, staffID); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return ErrStaffNotFound
		}
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	uc.invalidate(ctx)
	return nil
}

// ReorderStaff stores a new staff order using the same completion rules as gallery media.
func (uc *AboutUseCaseImpl) ReorderStaff(ctx context.Context, orderedIDs []string) error {
	about, err := uc.repo.GetAboutUs(ctx)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return ErrStaffNotFound
		}
		return fmt.Errorf("failed to get about page: %w", err)
	}
	staff, err := uc.repo.ListStaff(ctx, about.ID)
	if err != nil {
		return fmt.Errorf("failed to list staff: %w", err)
	}
	current := make([]string, len(staff))
	for i, m := range staff {
		current[i] = m.ID
	}
	order, err := completeOrder(current, orderedIDs)
	if err != nil {
		return err
	}
	if err := uc.repo.UpdateStaffOrder(ctx, order); err != nil {
		return fmt.Errorf("failed to save staff order: %w", err)
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *AboutUseCaseImpl) ensureAbout(ctx context.Context) (*entity.AboutUs, error) {
	about, err := uc.repo.GetAboutUs(ctx)
	if err == nil {
		return about, nil
	}
	if !errors.Is(err, contract.ErrNotFound) {
		return nil, fmt.Errorf("failed to get about page: %w", err)
	}
	about, err = uc.repo.UpsertAboutUs(ctx, map[string]interface{}{"updated_at": time.Now()})
	if err != nil {
		return nil, fmt.Errorf("failed to create about page: %w", err)
	}
	return about, nil
}

func (uc *AboutUseCaseImpl) invalidate(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateAboutPage(ctx); err != nil {
		uc.logger.Warningf("cache invalidation failed: about page err=%v", err)
	}
}
