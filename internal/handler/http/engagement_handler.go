package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Studiofolio/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Studiofolio/internal/usecase/contract"
)

type EngagementHandler struct {
	engagementUsecase usecasecontract.IEngagementUseCase
}

func NewEngagementHandler(engagementUsecase usecasecontract.IEngagementUseCase) *EngagementHandler {
	return &EngagementHandler{engagementUsecase: engagementUsecase}
}

func (h *EngagementHandler) ListForStory(c *gin.Context) {
	items, err := h.engagementUsecase.ListForStory(c.Request.Context(), c.Param("storyID"))
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.NewListResponse(items))
}

func (h *EngagementHandler) Summary(c *gin.Context) {
	summary, err := h.engagementUsecase.Summary(c.Request.Context(), c.Param("storyID"))
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, summary)
}

func (h *EngagementHandler) Create(c *gin.Context) {
	var req dto.CreateEngagementRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	engagement, err := h.engagementUsecase.Create(c.Request.Context(), c.Param("storyID"), req.ReactionType, req.Content)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, engagement)
}

func (h *EngagementHandler) Update(c *gin.Context) {
	var req dto.UpdateEngagementRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	engagement, err := h.engagementUsecase.Update(c.Request.Context(), c.Param("engagementID"), req.ReactionType, req.Content)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, engagement)
}

func (h *EngagementHandler) Delete(c *gin.Context) {
	if err := h.engagementUsecase.Delete(c.Request.Context(), c.Param("engagementID")); err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Engagement deleted")
}
