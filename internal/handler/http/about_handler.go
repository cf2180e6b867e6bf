package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Studiofolio/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Studiofolio/internal/usecase/contract"
)

type AboutHandler struct {
	aboutUsecase usecasecontract.IAboutUseCase
}

func NewAboutHandler(aboutUsecase usecasecontract.IAboutUseCase) *AboutHandler {
	return &AboutHandler{aboutUsecase: aboutUsecase}
}

func (h *AboutHandler) GetAboutPage(c *gin.Context) {
	page, err := h.aboutUsecase.GetAboutPage(c.Request.Context())
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.AboutPageResponse{About: page.About, Staff: page.Staff})
}

func (h *AboutHandler) UpdateMainDetails(c *gin.Context) {
	var req dto.UpdateMainDetailsRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	about, err := h.aboutUsecase.UpdateMainDetails(c.Request.Context(), req.MainImageURL, req.Description)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, about)
}

func (h *AboutHandler) UpdateMeetTeam(c *gin.Context) {
	var req dto.UpdateMeetTeamRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	about, err := h.aboutUsecase.UpdateMeetTeam(c.Request.Context(), req.Title, req.Subtitle)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, about)
}

func (h *AboutHandler) UpdateWhatWeDo(c *gin.Context) {
	var req dto.UpdateWhatWeDoRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	about, err := h.aboutUsecase.UpdateWhatWeDo(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, about)
}

func (h *AboutHandler) ListStaff(c *gin.Context) {
	staff, err := h.aboutUsecase.ListStaff(c.Request.Context())
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.NewListResponse(staff))
}

func (h *AboutHandler) AddStaff(c *gin.Context) {
	var req dto.AddStaffRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	member, err := h.aboutUsecase.AddStaff(c.Request.Context(), req.Name)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, member)
}

func (h *AboutHandler) DeleteStaff(c *gin.Context) {
	if err := h.aboutUsecase.DeleteStaff(c.Request.Context(), c.Param("staffID")); err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Staff member removed")
}

func (h *AboutHandler) ReorderStaff(c *gin.Context) {
	var req dto.ReorderRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if err := h.aboutUsecase.ReorderStaff(c.Request.Context(), req.OrderedIDs); err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Staff order saved")
}
