package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"
	"car-rental/pkg/metrics"
	"car-rental/pkg/storage"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

const (
	UploadSuccessMessage = "Car uploaded successfully"

	// imageFieldName is recorded as object metadata, naming the form part the bytes came from
	imageFieldName = "carImage"
)

// UploadFile is the image part of an upload form
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ObjectStorage stores image bytes and returns their public URL
type ObjectStorage interface {
	Put(ctx context.Context, obj storage.Object) (string, error)
	Delete(ctx context.Context, key string) error
}

type UploadService interface {
	UploadCar(ctx context.Context, req *request.UploadCarRequest, file *UploadFile) (*response.UploadCarResponse, error)
}

type uploadService struct {
	store   ObjectStorage
	docs    repository.CarDocumentRepository
	metrics *metrics.Metrics
	now     func() time.Time
	log     *zap.Logger
}

// NewUploadService wires the upload flow. A nil store or docs leaves the
// service answering ErrUploadDisabled.
func NewUploadService(store ObjectStorage, docs repository.CarDocumentRepository, m *metrics.Metrics, log *zap.Logger) UploadService {
	return &uploadService{
		store:   store,
		docs:    docs,
		metrics: m,
		now:     time.Now,
		log:     log.With(zap.String("service", "upload")),
	}
}

// UploadCar stores the image, then records the car document pointing at it.
// When the record cannot be written the stored image is deleted again.
func (s *uploadService) UploadCar(ctx context.Context, req *request.UploadCarRequest, file *UploadFile) (*response.UploadCarResponse, error) {
	if file == nil || file.Body == nil {
		s.metrics.ObserveUpload(metrics.UploadRejected)
		return nil, ErrImageRequired
	}

	price, err := utils.ParsePrice(req.Price)
	if err != nil {
		s.metrics.ObserveUpload(metrics.UploadRejected)
		return nil, fmt.Errorf("%w: %q", ErrInvalidPrice, req.Price)
	}

	if s.store == nil || s.docs == nil {
		s.metrics.ObserveUpload(metrics.UploadDisabled)
		return nil, ErrUploadDisabled
	}

	now := s.now().UTC()
	key := utils.GenerateObjectKey(now, file.Filename)

	url, err := s.store.Put(ctx, storage.Object{
		Key:         key,
		Body:        file.Body,
		Size:        file.Size,
		ContentType: file.ContentType,
		Metadata:    map[string]string{"fieldName": imageFieldName},
	})
	if err != nil {
		s.metrics.ObserveUpload(metrics.UploadStorageFailed)
		return nil, fmt.Errorf("%w: %w", ErrStoreImage, err)
	}

	doc := &entity.CarDocument{
		Name:      req.Name,
		Type:      req.Type,
		Image:     url,
		Price:     price,
		Location:  req.Location,
		Features:  utils.SplitFeatures(req.Features...),
		Status:    req.Status,
		CreatedAt: now,
	}

	id, err := s.docs.Insert(ctx, doc)
	if err != nil {
		s.metrics.ObserveUpload(metrics.UploadRecordFailed)
		s.discard(ctx, key)
		return nil, fmt.Errorf("%w: %w", ErrRecordCar, err)
	}

	s.metrics.ObserveUpload(metrics.UploadSuccess)
	s.log.Info("Car uploaded",
		zap.String("inserted_id", id),
		zap.String("key", key),
		zap.String("name", doc.Name),
	)

	return &response.UploadCarResponse{
		Message: UploadSuccessMessage,
		Data: response.UploadResult{
			Acknowledged: true,
			InsertedID:   id,
		},
	}, nil
}

// discard removes an image whose record failed. It runs even if the request
// was cancelled.
func (s *uploadService) discard(ctx context.Context, key string) {
	if err := s.store.Delete(context.WithoutCancel(ctx), key); err != nil {
		s.metrics.ObserveOrphan()
		s.log.Error("Failed to delete orphaned image",
			zap.Error(err),
			zap.String("orphan_key", key),
		)
		return
	}
	s.log.Warn("Deleted image after failed insert", zap.String("key", key))
}
