package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Studiofolio/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Studiofolio/internal/usecase/contract"
)

// GalleryHandlerInterface defines the methods for gallery handler to allow interface-based dependency injection (for testing/mocking)
type GalleryHandlerInterface interface {
	CreateGallery(*gin.Context)
	ListGalleries(*gin.Context)
	GetGallery(*gin.Context)
	AddMedia(*gin.Context)
	ListMedia(*gin.Context)
	ReorderMedia(*gin.Context)
	DeleteMedia(*gin.Context)
	PublicMedia(*gin.Context)
}

var _ GalleryHandlerInterface = (*GalleryHandler)(nil)

type GalleryHandler struct {
	galleryUsecase usecasecontract.IGalleryUseCase
}

func NewGalleryHandler(galleryUsecase usecasecontract.IGalleryUseCase) *GalleryHandler {
	return &GalleryHandler{
		galleryUsecase: galleryUsecase,
	}
}

func (h *GalleryHandler) CreateGallery(c *gin.Context) {
	var req dto.CreateGalleryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	gallery, err := h.galleryUsecase.CreateGallery(c.Request.Context(), req.Slug, req.Title)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToGalleryResponse(*gallery))
}

func (h *GalleryHandler) ListGalleries(c *gin.Context) {
	galleries, err := h.galleryUsecase.ListGalleries(c.Request.Context())
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	out := make([]dto.GalleryResponse, 0, len(galleries))
	for _, g := range galleries {
		out = append(out, dto.ToGalleryResponse(*g))
	}
	SuccessHandler(c, http.StatusOK, dto.NewListResponse(out))
}

func (h *GalleryHandler) GetGallery(c *gin.Context) {
	gallery, err := h.galleryUsecase.GetGallery(c.Request.Context(), c.Param("galleryID"))
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToGalleryResponse(*gallery))
}

// AddMedia registers an image that was already uploaded to object storage.
func (h *GalleryHandler) AddMedia(c *gin.Context) {
	var req dto.AddMediaRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	item, err := h.galleryUsecase.AddMedia(c.Request.Context(), c.Param("galleryID"), req.ImageURL, req.StorageKey)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToMediaResponse(*item))
}

func (h *GalleryHandler) ListMedia(c *gin.Context) {
	items, err := h.galleryUsecase.ListMedia(c.Request.Context(), c.Param("galleryID"))
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.NewListResponse(dto.ToMediaResponses(items)))
}

func (h *GalleryHandler) ReorderMedia(c *gin.Context) {
	var req dto.ReorderRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if err := h.galleryUsecase.ReorderMedia(c.Request.Context(), c.Param("galleryID"), req.OrderedIDs); err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Media order saved")
}

func (h *GalleryHandler) DeleteMedia(c *gin.Context) {
	if err := h.galleryUsecase.DeleteMedia(c.Request.Context(), c.Param("galleryID"), c.Param("mediaID")); err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Media deleted")
}

// PublicMedia serves the public site's gallery by slug.
func (h *GalleryHandler) PublicMedia(c *gin.Context) {
	items, err := h.galleryUsecase.PublicMedia(c.Request.Context(), c.Param("slug"))
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.NewListResponse(dto.ToMediaResponses(items)))
}
