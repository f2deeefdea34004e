// Package store persists pending reminders. The contract is minimal on
// purpose: insert, delete by id, and an exact-minute due-time lookup —
// the only query the delivery scheduler needs.
package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"remindbot/internal/model"
)

// Store wraps the reminder table. GORM serializes access at the
// connection level, so the message handler and the scheduler may call
// into it concurrently.
type Store struct {
	db *gorm.DB
}

// New creates a Store backed by the given database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a reminder and fills in its generated ID. DueAt is
// truncated to the minute so that the scheduler's equality lookup can
// ever match it.
func (s *Store) Create(r *model.Reminder) error {
	r.DueAt = r.DueAt.Truncate(time.Minute)
	if err := s.db.Create(r).Error; err != nil {
		return fmt.Errorf("create reminder: %w", err)
	}
	return nil
}

// DeleteByID removes a reminder. The second delete of the same id is a
// no-op: it reports found=false and no error.
func (s *Store) DeleteByID(id uint) (bool, error) {
	res := s.db.Delete(&model.Reminder{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete reminder %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// FindDueAt returns every reminder whose due time equals the given
// instant truncated to the minute. Strictly equality, not a range: a
// minute the scheduler never observes is never delivered.
func (s *Store) FindDueAt(at time.Time) ([]model.Reminder, error) {
	var reminders []model.Reminder
	if err := s.db.Where("due_at = ?", at.Truncate(time.Minute)).Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("find due reminders: %w", err)
	}
	return reminders, nil
}
