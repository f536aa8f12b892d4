package entity

import "bodhira/internal/domain/constant"

// Reminder represents a daily recurring reminder owned by a user.
// Hour is stored in 24-hour form; conversion to the 12-hour display
// form happens at the API boundary.
type Reminder struct {
	ID      uint                  `gorm:"primaryKey;autoIncrement"`
	UserID  string                `gorm:"column:user_id;index"`
	Type    constant.ReminderType `gorm:"column:type"`
	Hour    int                   `gorm:"column:hour"`
	Minute  int                   `gorm:"column:minute"`
	Message string                `gorm:"column:message;type:text"`
}

// TableName specifies the table name for the Reminder entity.
func (Reminder) TableName() string {
	return "user_reminders"
}

// HasValidTime reports whether the stored hour and minute form a valid
// wall-clock time. Records failing this check are skipped when the
// scheduler rebuilds its triggers.
func (r *Reminder) HasValidTime() bool {
	return r.Hour >= 0 && r.Hour <= 23 && r.Minute >= 0 && r.Minute <= 59
}
