package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agenciathoth/checklist/internal/core/domain"
	"github.com/agenciathoth/checklist/internal/core/ports"
)

const presignExpiry = 15 * time.Minute

type MediaService struct {
	media     ports.MediaRepository
	tasks     ports.TaskRepository
	customers ports.CustomerRepository
	storage   ports.ObjectStorage
}

func NewMediaService(media ports.MediaRepository, tasks ports.TaskRepository, customers ports.CustomerRepository, storage ports.ObjectStorage) *MediaService {
	return &MediaService{media: media, tasks: tasks, customers: customers, storage: storage}
}

var _ ports.MediaService = (*MediaService)(nil)

// PresignUpload issues a time-limited PUT URL so the browser can push the
// file straight to the bucket without routing bytes through this server.
func (s *MediaService) PresignUpload(ctx context.Context, input ports.PresignUploadInput) (domain.UploadTicket, error) {
	if _, err := s.customers.FindByID(ctx, input.CustomerID); err != nil {
		return domain.UploadTicket{}, err
	}

	key := objectKey(input.CustomerID, input.FileName)
	url, err := s.storage.PresignPut(ctx, key, presignExpiry)
	if err != nil {
		return domain.UploadTicket{}, err
	}

	return domain.UploadTicket{
		URL:  url,
		Path: key,
		Type: mediaType(input.FileType),
	}, nil
}

// Upload is the server-side path for clients that cannot use presigned URLs.
func (s *MediaService) Upload(ctx context.Context, customerID uint64, fileName, contentType string, r io.Reader, size int64) (domain.UploadTicket, error) {
	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return domain.UploadTicket{}, err
	}

	key := objectKey(customerID, fileName)
	if err := s.storage.Put(ctx, key, contentType, r, size); err != nil {
		return domain.UploadTicket{}, err
	}

	return domain.UploadTicket{
		Path: key,
		Type: mediaType(contentType),
	}, nil
}

func (s *MediaService) RegisterMedia(ctx context.Context, session *domain.Session, input domain.CreateMediaInput) (domain.Media, error) {
	if _, err := s.tasks.FindByID(ctx, input.TaskID); err != nil {
		return domain.Media{}, err
	}

	existing, err := s.media.ListByTask(ctx, input.TaskID)
	if err != nil {
		return domain.Media{}, err
	}

	media, err := s.media.Create(ctx, input, len(existing)+1, session.UserID)
	if err != nil {
		return domain.Media{}, err
	}
	media.URL = s.storage.PublicURL(media.Path)
	return media, nil
}

// SetOrder writes the dragged item's raw position. The follow-up reorder
// call renumbers the whole list densely.
func (s *MediaService) SetOrder(ctx context.Context, id uint64, order int) error {
	if _, err := s.media.FindByID(ctx, id); err != nil {
		return err
	}
	return s.media.UpdateOrder(ctx, id, order)
}

// ReorderTaskMedia renumbers a task's media to a dense 1..N. Each row is an
// independent UPDATE; a partial failure leaves a subset renumbered and the
// next pass self-heals.
func (s *MediaService) ReorderTaskMedia(ctx context.Context, taskID uint64) error {
	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		return err
	}
	return s.normalize(ctx, taskID)
}

func (s *MediaService) DeleteMedia(ctx context.Context, id uint64) error {
	media, err := s.media.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.media.Delete(ctx, id); err != nil {
		return err
	}

	// Best effort: an orphaned object costs storage, not correctness.
	if err := s.storage.Remove(ctx, media.Path); err != nil {
		zap.L().Warn("failed to remove media object", zap.String("path", media.Path), zap.Error(err))
	}

	return s.normalize(ctx, media.TaskID)
}

func (s *MediaService) normalize(ctx context.Context, taskID uint64) error {
	media, err := s.media.ListByTask(ctx, taskID)
	if err != nil {
		return err
	}
	for _, update := range domain.NormalizeMediaOrder(media) {
		if err := s.media.UpdateOrder(ctx, update.MediaID, update.Order); err != nil {
			return err
		}
	}
	return nil
}

func objectKey(customerID uint64, fileName string) string {
	hash := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d/%s_%s", customerID, hash, fileName)
}

func mediaType(contentType string) string {
	if t, _, ok := strings.Cut(contentType, "/"); ok {
		return t
	}
	return contentType
}
