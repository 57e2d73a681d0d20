package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	itemDomain "github.com/shareit-app/backend/internal/domain/item"
)

// CommentModel is the GORM model for the comments table.
type CommentModel struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	Text     string    `gorm:"size:2000;not null"`
	ItemID   int64     `gorm:"not null;index"`
	AuthorID int64     `gorm:"not null;index"`
	Created  time.Time `gorm:"not null"`

	Author UserModel `gorm:"foreignKey:AuthorID"`
}

// TableName returns the table name for the GORM model.
func (CommentModel) TableName() string {
	return "comments"
}

// GormCommentRepository is the GORM-based implementation of
// item.CommentRepository.
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository.
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// Save persists a new comment.
func (r *GormCommentRepository) Save(ctx context.Context, c *itemDomain.Comment) (*itemDomain.Comment, error) {
	model := &CommentModel{
		Text:     c.Text(),
		ItemID:   c.ItemID(),
		AuthorID: c.AuthorID(),
		Created:  c.Created(),
	}
	if err := r.db.WithContext(ctx).Omit("Author").Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}
	return itemDomain.ReconstructComment(model.ID, model.Text, model.ItemID, model.AuthorID, c.AuthorName(), model.Created), nil
}

// FindByItemID retrieves comments on an item, oldest first.
func (r *GormCommentRepository) FindByItemID(ctx context.Context, itemID int64) ([]*itemDomain.Comment, error) {
	var models []CommentModel
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("item_id = ?", itemID).
		Order("created ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find comments by item: %w", err)
	}
	return toDomainComments(models), nil
}

func toDomainComments(models []CommentModel) []*itemDomain.Comment {
	comments := make([]*itemDomain.Comment, len(models))
	for i, m := range models {
		comments[i] = itemDomain.ReconstructComment(m.ID, m.Text, m.ItemID, m.AuthorID, m.Author.Name, m.Created)
	}
	return comments
}
