package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shareit-app/backend/internal/domain"
	requestDomain "github.com/shareit-app/backend/internal/domain/request"
)

// ItemRequestModel is the GORM model for the item_requests table.
type ItemRequestModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Description string    `gorm:"size:2000;not null"`
	RequestorID int64     `gorm:"not null;index"`
	Created     time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (ItemRequestModel) TableName() string {
	return "item_requests"
}

// GormRequestRepository is the GORM-based implementation of
// request.Repository.
type GormRequestRepository struct {
	db *gorm.DB
}

// NewGormRequestRepository creates a new GormRequestRepository.
func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

// Save persists a new item request.
func (r *GormRequestRepository) Save(ctx context.Context, req *requestDomain.ItemRequest) (*requestDomain.ItemRequest, error) {
	model := &ItemRequestModel{
		Description: req.Description(),
		RequestorID: req.RequestorID(),
		Created:     req.Created(),
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save item request: %w", err)
	}
	return toDomainRequest(model), nil
}

// FindByID retrieves a request by ID.
func (r *GormRequestRepository) FindByID(ctx context.Context, id int64) (*requestDomain.ItemRequest, error) {
	var model ItemRequestModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("ItemRequest", id)
		}
		return nil, fmt.Errorf("failed to find item request by ID: %w", err)
	}
	return toDomainRequest(&model), nil
}

// FindByRequestorID retrieves a user's own requests, newest first.
func (r *GormRequestRepository) FindByRequestorID(ctx context.Context, requestorID int64) ([]*requestDomain.ItemRequest, error) {
	var models []ItemRequestModel
	if err := r.db.WithContext(ctx).
		Where("requestor_id = ?", requestorID).
		Order("created DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find item requests by requestor: %w", err)
	}
	return toDomainRequests(models), nil
}

// FindOthers retrieves requests created by other users, newest first.
func (r *GormRequestRepository) FindOthers(ctx context.Context, requestorID int64, page *domain.Page) ([]*requestDomain.ItemRequest, error) {
	query := r.db.WithContext(ctx).
		Where("requestor_id <> ?", requestorID).
		Order("created DESC")
	if page != nil {
		query = query.Offset(page.Offset).Limit(page.Limit)
	}
	var models []ItemRequestModel
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find other users' item requests: %w", err)
	}
	return toDomainRequests(models), nil
}

// --- Conversion helpers ---

func toDomainRequest(m *ItemRequestModel) *requestDomain.ItemRequest {
	return requestDomain.Reconstruct(m.ID, m.Description, m.RequestorID, m.Created)
}

func toDomainRequests(models []ItemRequestModel) []*requestDomain.ItemRequest {
	requests := make([]*requestDomain.ItemRequest, len(models))
	for i := range models {
		requests[i] = toDomainRequest(&models[i])
	}
	return requests
}
