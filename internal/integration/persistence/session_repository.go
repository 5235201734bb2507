package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/school-office/backend/internal/application/adapter"
	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
	"github.com/school-office/backend/internal/integration/persistence/model"
)

// sessionRepository implements the adapter.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository instance.
func NewSessionRepository(db *gorm.DB) adapter.SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// Create creates a new session in the database. The unique slot index rejects
// a concurrent insert of the same (group, date, start, end).
func (r *sessionRepository) Create(ctx context.Context, session *entity.GroupSession) error {
	sessionModel := model.SessionFromEntity(session)
	result := r.db.WithContext(ctx).Create(sessionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrSessionExists
		}
		return result.Error
	}
	return nil
}

// FindByID retrieves a session by its ID.
func (r *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GroupSession, error) {
	var sessionModel model.GroupSessionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&sessionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSessionNotFound
		}
		return nil, result.Error
	}
	return sessionModel.ToEntity(), nil
}

// ExistsBySlot checks whether a session already exists for the exact
// (group, date, start, end) tuple.
func (r *sessionRepository) ExistsBySlot(ctx context.Context, groupID uuid.UUID, date time.Time, startTime, endTime string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.GroupSessionModel{}).
		Where("group_id = ? AND date = ? AND start_time = ? AND end_time = ?",
			groupID, date, startTime, endTime).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// ListByGroupAndRange retrieves sessions for a group within [from, to].
func (r *sessionRepository) ListByGroupAndRange(ctx context.Context, groupID uuid.UUID, from, to time.Time) ([]*entity.GroupSession, error) {
	var sessionModels []model.GroupSessionModel
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND date >= ? AND date <= ?", groupID, from, to).
		Order("date ASC, start_time ASC").
		Find(&sessionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sessions := make([]*entity.GroupSession, len(sessionModels))
	for i, sm := range sessionModels {
		sessions[i] = sm.ToEntity()
	}
	return sessions, nil
}

// ListByDate retrieves all sessions on a given date across all groups.
func (r *sessionRepository) ListByDate(ctx context.Context, date time.Time) ([]*entity.GroupSession, error) {
	var sessionModels []model.GroupSessionModel
	result := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("start_time ASC").
		Find(&sessionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sessions := make([]*entity.GroupSession, len(sessionModels))
	for i, sm := range sessionModels {
		sessions[i] = sm.ToEntity()
	}
	return sessions, nil
}

// Update updates an existing session in the database.
func (r *sessionRepository) Update(ctx context.Context, session *entity.GroupSession) error {
	sessionModel := model.SessionFromEntity(session)
	result := r.db.WithContext(ctx).Save(sessionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a session from the database. The delete is hard: a
// soft-deleted row would keep holding the unique slot index and the slot
// could never be reused.
func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Unscoped().Delete(&model.GroupSessionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
