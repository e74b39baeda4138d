package outboxrepo

import (
	"context"
	"time"

	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements ports.OutboxRepository and appends order events
// on behalf of the unit of work.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// AppendOrderEvents inserts events in the given order. Called inside the transaction
// that saved the order.
func (r *GormOutboxRepository) AppendOrderEvents(ctx context.Context, events []order.Event) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]MessageDTO, 0, len(events))
	for _, e := range events {
		dto, err := fromOrderEvent(e)
		if err != nil {
			return err
		}
		dtos = append(dtos, dto)
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetUnpublished returns up to limit pending messages, oldest first. On PostgreSQL the
// rows stay locked until the surrounding transaction ends, and rows locked by another
// relay are skipped.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	query := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("id").
		Limit(limit)
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"})
	}

	var dtos []MessageDTO
	err := query.Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, toPort(dto))
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&MessageDTO{}).
		Where("id IN ?", ids).
		Update("published_at", at).Error
}
