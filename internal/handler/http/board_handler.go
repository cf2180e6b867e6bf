package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Studiofolio/internal/handler/http/dto"
	"github.com/mikiasgoitom/Studiofolio/internal/usecase/arrangement"
	usecasecontract "github.com/mikiasgoitom/Studiofolio/internal/usecase/contract"
)

// BoardHandlerInterface lists the arrangement board actions the admin grid sends.
type BoardHandlerInterface interface {
	GetBoard(*gin.Context)
	PressStart(*gin.Context)
	PressEnd(*gin.Context)
	SetEditMode(*gin.Context)
	Done(*gin.Context)
	BeginDrag(*gin.Context)
	DragOver(*gin.Context)
	EndDrag(*gin.Context)
	RequestDelete(*gin.Context)
	ConfirmDelete(*gin.Context)
	CancelDelete(*gin.Context)
}

var _ BoardHandlerInterface = (*BoardHandler)(nil)

type BoardHandler struct {
	galleryUsecase usecasecontract.IGalleryUseCase
}

func NewBoardHandler(galleryUsecase usecasecontract.IGalleryUseCase) *BoardHandler {
	return &BoardHandler{galleryUsecase: galleryUsecase}
}

// withBoard resolves the gallery's board, runs action and answers with the resulting view.
func (h *BoardHandler) withBoard(c *gin.Context, action func(b *arrangement.Board) error) {
	galleryID := c.Param("galleryID")
	board, err := h.galleryUsecase.Board(c.Request.Context(), galleryID)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	if action != nil {
		if err := action(board); err != nil {
			UsecaseErrorHandler(c, err)
			return
		}
	}
	SuccessHandler(c, http.StatusOK, dto.ToBoardResponse(galleryID, board.Controlled(), board.View()))
}

func (h *BoardHandler) GetBoard(c *gin.Context) {
	h.withBoard(c, nil)
}

func (h *BoardHandler) PressStart(c *gin.Context) {
	var req dto.MediaTargetRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	h.withBoard(c, func(b *arrangement.Board) error {
		return b.PressStart(req.MediaID)
	})
}

func (h *BoardHandler) PressEnd(c *gin.Context) {
	h.withBoard(c, func(b *arrangement.Board) error {
		b.PressEnd()
		return nil
	})
}

func (h *BoardHandler) SetEditMode(c *gin.Context) {
	var req dto.EditModeRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	h.withBoard(c, func(b *arrangement.Board) error {
		b.SetEditMode(req.EditMode)
		return nil
	})
}

func (h *BoardHandler) Done(c *gin.Context) {
	h.withBoard(c, func(b *arrangement.Board) error {
		b.Done()
		return nil
	})
}

func (h *BoardHandler) BeginDrag(c *gin.Context) {
	var req dto.MediaTargetRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	h.withBoard(c, func(b *arrangement.Board) error {
		return b.BeginDrag(req.MediaID)
	})
}

// DragOver moves the dragged item onto target_id. A media_id that differs from the
// current drag starts a new one first.
func (h *BoardHandler) DragOver(c *gin.Context) {
	var req dto.DragOverRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	h.withBoard(c, func(b *arrangement.Board) error {
		if req.MediaID != "" && b.Dragging() != req.MediaID {
			if err := b.BeginDrag(req.MediaID); err != nil {
				return err
			}
		}
		b.DragOver(req.TargetID)
		return nil
	})
}

func (h *BoardHandler) EndDrag(c *gin.Context) {
	h.withBoard(c, func(b *arrangement.Board) error {
		b.EndDrag()
		return nil
	})
}

func (h *BoardHandler) RequestDelete(c *gin.Context) {
	var req dto.MediaTargetRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	h.withBoard(c, func(b *arrangement.Board) error {
		return b.RequestDelete(req.MediaID)
	})
}

func (h *BoardHandler) ConfirmDelete(c *gin.Context) {
	h.withBoard(c, func(b *arrangement.Board) error {
		return b.ConfirmDelete(c.Request.Context())
	})
}

func (h *BoardHandler) CancelDelete(c *gin.Context) {
	h.withBoard(c, func(b *arrangement.Board) error {
		b.CancelDelete()
		return nil
	})
}
