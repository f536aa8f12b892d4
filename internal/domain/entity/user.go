package entity

// User represents an account together with its push delivery settings.
type User struct {
	ID                   uint    `gorm:"primaryKey;autoIncrement"`
	Username             string  `gorm:"column:username;uniqueIndex"`
	Name                 *string `gorm:"column:name"`
	PasswordHash         string  `gorm:"column:password_hash"`
	DeviceToken          *string `gorm:"column:device_token"`           // FCM registration token, nil until a device registers
	DevicePlatform       *string `gorm:"column:device_platform"`        // "ios", "android" or "web"
	NotificationsEnabled bool    `gorm:"column:notifications_enabled;default:true"`
}

// TableName specifies the table name for the User entity.
func (User) TableName() string {
	return "users"
}

// CanReceivePush reports whether the user has a registered device and
// has not disabled notifications.
func (u *User) CanReceivePush() bool {
	return u.NotificationsEnabled && u.DeviceToken != nil && *u.DeviceToken != ""
}
