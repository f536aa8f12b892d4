package constant

// ReminderType identifies the kind of wellness reminder.
type ReminderType string

const (
	TypeMeditation ReminderType = "meditation"
	TypeJournaling ReminderType = "journaling"
	TypeHydration  ReminderType = "hydration"
	TypeActivity   ReminderType = "activity"
)

// DefaultReminderTitle is used for any type not present in the title table.
const DefaultReminderTitle = "⏰ Reminder"

// reminderTitles maps each reminder type to its notification title.
var reminderTitles = map[ReminderType]string{
	TypeMeditation: "🧘 Meditation Time",
	TypeJournaling: "📝 Journaling Reminder",
	TypeHydration:  "💧 Stay Hydrated",
	TypeActivity:   "🏃 Activity Reminder",
}

func (t ReminderType) String() string {
	return string(t)
}

// IsValid reports whether t is one of the known reminder types.
func (t ReminderType) IsValid() bool {
	switch t {
	case TypeMeditation, TypeJournaling, TypeHydration, TypeActivity:
		return true
	}
	return false
}

// Title returns the notification title for the reminder type, falling
// back to DefaultReminderTitle for unrecognized types.
func (t ReminderType) Title() string {
	if title, ok := reminderTitles[t]; ok {
		return title
	}
	return DefaultReminderTitle
}
