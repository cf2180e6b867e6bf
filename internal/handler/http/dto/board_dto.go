package dto

import (
	"github.com/mikiasgoitom/Studiofolio/internal/usecase/arrangement"
)

// MediaTargetRequest names the media item an action applies to.
type MediaTargetRequest struct {
	MediaID string `json:"media_id" binding:"required"`
}

// DragOverRequest reports the dragged item passing over TargetID.
type DragOverRequest struct {
	MediaID  string `json:"media_id"`
	TargetID string `json:"target_id" binding:"required"`
}

// EditModeRequest sets or releases host control of edit mode. A null value hands
// control back to press-and-hold.
type EditModeRequest struct {
	EditMode *bool `json:"edit_mode"`
}

// BoardResponse is what the admin grid renders.
type BoardResponse struct {
	GalleryID     string          `json:"gallery_id"`
	Items         []MediaResponse `json:"items"`
	Order         []string        `json:"order"`
	Editing       bool            `json:"editing"`
	Controlled    bool            `json:"controlled"`
	Saving        bool            `json:"saving"`
	Uploading     bool            `json:"uploading"`
	Dragging      string          `json:"dragging,omitempty"`
	PendingDelete string          `json:"pending_delete,omitempty"`
	Empty         bool            `json:"empty"`
	EmptyMessage  string          `json:"empty_message,omitempty"`
	Columns       int             `json:"columns"`
	CanReorder    bool            `json:"can_reorder"`
	CanDelete     bool            `json:"can_delete"`
}

func ToBoardResponse(galleryID string, controlled bool, v arrangement.View) BoardResponse {
	resp := BoardResponse{
		GalleryID:     galleryID,
		Items:         ToMediaResponses(v.Items),
		Order:         v.Order,
		Editing:       v.Editing,
		Controlled:    controlled,
		Saving:        v.Saving,
		Uploading:     v.Uploading,
		Dragging:      v.Dragging,
		PendingDelete: v.PendingDelete,
		Empty:         v.Empty,
		Columns:       v.Columns,
		CanReorder:    v.CanReorder,
		CanDelete:     v.CanDelete,
	}
	if v.Empty {
		resp.EmptyMessage = v.EmptyMessage
	}
	if resp.Order == nil {
		resp.Order = []string{}
	}
	return resp
}
