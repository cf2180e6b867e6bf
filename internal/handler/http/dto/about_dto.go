package dto

import "github.com/mikiasgoitom/Studiofolio/internal/domain/entity"

// UpdateMainDetailsRequest is a partial update; omitted fields are left as they are.
type UpdateMainDetailsRequest struct {
	MainImageURL *string `json:"main_image_url" binding:"omitempty,max=2048"`
	Description  *string `json:"description" binding:"omitempty,max=5000"`
}

type UpdateMeetTeamRequest struct {
	Title    *string `json:"title" binding:"omitempty,max=200"`
	Subtitle *string `json:"subtitle" binding:"omitempty,max=500"`
}

type UpdateWhatWeDoRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
}

type AddStaffRequest struct {
	Name string `json:"name" binding:"required,notblank,max=100"`
}

type AboutPageResponse struct {
	About *entity.AboutUs      `json:"about"`
	Staff []entity.StaffMember `json:"staff"`
}
