package mapper

import (
	"time"

	"github.com/agenciathoth/checklist/internal/adapter/http/dto"
	"github.com/agenciathoth/checklist/internal/core/domain"
)

func ToMediaItems(media []domain.Media) []dto.MediaItem {
	items := make([]dto.MediaItem, 0, len(media))
	for _, m := range media {
		items = append(items, ToMediaItem(m))
	}
	return items
}

func ToMediaItem(media domain.Media) dto.MediaItem {
	return dto.MediaItem{
		ID:        media.ID,
		TaskID:    media.TaskID,
		Path:      media.Path,
		URL:       media.URL,
		Type:      media.Type,
		Order:     media.Order,
		CreatedAt: media.CreatedAt.Format(time.RFC3339),
	}
}

func ToUploadTicket(ticket domain.UploadTicket) dto.UploadTicket {
	return dto.UploadTicket{
		URL:  ticket.URL,
		Path: ticket.Path,
		Type: ticket.Type,
	}
}
