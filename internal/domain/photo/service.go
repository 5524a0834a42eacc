package photo

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// UploadInput is one uploaded file as received from the client.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Service runs the upload workflow: store bytes, then record metadata.
type Service struct {
	repo    Repository
	storage Storage
	maxSize int64 // 0 disables the limit
	log     logrus.FieldLogger
	now     func() time.Time
}

func NewService(repo Repository, storage Storage, maxSize int64, log logrus.FieldLogger) *Service {
	return &Service{
		repo:    repo,
		storage: storage,
		maxSize: maxSize,
		log:     log,
		now:     time.Now,
	}
}

// Upload stores the file and its metadata and returns the saved record.
// A metadata failure leaves the already written file on disk.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*Photo, error) {
	if in.Content == nil || in.Size <= 0 {
		return nil, ErrEmptyFile
	}
	if s.maxSize > 0 && in.Size > s.maxSize {
		return nil, ErrFileTooLarge
	}

	if err := s.storage.EnsureDir(); err != nil {
		return nil, err
	}

	storedName := uuid.NewString() + Extension(in.Filename)
	path, err := s.storage.Write(storedName, in.Content)
	if err != nil {
		return nil, err
	}

	p := &Photo{
		OriginalFileName: optional(in.Filename),
		StoredFileName:   storedName,
		FilePath:         path,
		FileSize:         in.Size,
		MimeType:         optional(in.ContentType),
		UploadDate:       LocalTime(s.now()),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("save photo metadata: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"original_name": in.Filename,
		"stored_name":   storedName,
		"photo_id":      p.ID,
		"size":          in.Size,
	}).Info("Uploaded and saved to DB")

	return p, nil
}

// List returns all photos in insertion order.
func (s *Service) List(ctx context.Context) ([]Photo, error) {
	return s.repo.List(ctx)
}
