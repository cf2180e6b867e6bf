package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/contract"
	"github.com/mikiasgoitom/Studiofolio/internal/domain/entity"
	"github.com/mikiasgoitom/Studiofolio/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Studiofolio/internal/usecase/contract"
)

// MockAboutUsecase is a mock implementation of the IAboutUseCase interface
type MockAboutUsecase struct {
	ShouldFailGet    bool
	ShouldFailUpdate bool
	ShouldFailDelete bool

	MockAbout entity.AboutUs
	MockStaff []entity.StaffMember
}

var _ usecasecontract.IAboutUseCase = (*MockAboutUsecase)(nil)

func NewMockAboutUsecase() *MockAboutUsecase {
	return &MockAboutUsecase{
		MockAbout: entity.AboutUs{ID: "about", Description: "We photograph weddings.", MeetTeamTitle: "Meet the team"},
		MockStaff: []entity.StaffMember{
			{ID: "s1", AboutUsID: "about", Name: "Ana", DisplayOrder: 0},
			{ID: "s2", AboutUsID: "about", Name: "Luis", DisplayOrder: 1},
		},
	}
}

func (m *MockAboutUsecase) GetAboutPage(ctx context.Context) (*contract.AboutPage, error) {
	if m.ShouldFailGet {
		return nil, errors.New("database unavailable")
	}
	about := m.MockAbout
	return &contract.AboutPage{About: &about, Staff: m.MockStaff}, nil
}

func (m *MockAboutUsecase) UpdateMainDetails(ctx context.Context, mainImageURL, description *string) (*entity.AboutUs, error) {
	if m.ShouldFailUpdate {
		return nil, usecase.ErrInvalidInput
	}
	if mainImageURL == nil && description == nil {
		return nil, usecase.ErrNothingToUpdate
	}
	about := m.MockAbout
	if mainImageURL != nil {
		about.MainImageURL = *mainImageURL
	}
	if description != nil {
		about.Description = *description
	}
	return &about, nil
}

func (m *MockAboutUsecase) UpdateMeetTeam(ctx context.Context, title, subtitle *string) (*entity.AboutUs, error) {
	if m.ShouldFailUpdate {
		return nil, usecase.ErrInvalidInput
	}
	if title == nil && subtitle == nil {
		return nil, usecase.ErrNothingToUpdate
	}
	about := m.MockAbout
	if title != nil {
		about.MeetTeamTitle = *title
	}
	if subtitle != nil {
		about.MeetTeamSubtitle = *subtitle
	}
	return &about, nil
}

func (m *MockAboutUsecase) UpdateWhatWeDo(ctx context.Context, title, description *string) (*entity.AboutUs, error) {
	if m.ShouldFailUpdate {
		return nil, usecase.ErrInvalidInput
	}
	if title == nil && description == nil {
		return nil, usecase.ErrNothingToUpdate
	}
	about := m.MockAbout
	if title != nil {
		about.WhatWeDoTitle = *title
	}
	if description != nil {
		about.WhatWeDoDescription = *description
	}
	return &about, nil
}

func (m *MockAboutUsecase) ListStaff(ctx context.Context) ([]entity.StaffMember, error) {
	if m.ShouldFailGet {
		return nil, errors.New("database unavailable")
	}
	return m.MockStaff, nil
}

func (m *MockAboutUsecase) AddStaff(ctx context.Context, name string) (*entity.StaffMember, error) {
	return &entity.StaffMember{ID: "s-new", AboutUsID: "about", Name: name, DisplayOrder: len(m.MockStaff)}, nil
}

func (m *MockAboutUsecase) DeleteStaff(ctx context.Context, staffID string) error {
	if m.ShouldFailDelete {
		return usecase.ErrStaffNotFound
	}
	return nil
}

func (m *MockAboutUsecase) ReorderStaff(ctx context.Context, orderedIDs []string) error {
	for _, id := range orderedIDs {
		found := false
		for _, s := range m.MockStaff {
			if s.ID == id {
				found = true
				break
			}
		}
		if !found {
			return usecase.ErrUnknownID
		}
	}
	return nil
}
