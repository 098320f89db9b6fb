package models

// UserRole represents the role of an account
type UserRole string

const (
	UserRoleCoach UserRole = "coach"
	UserRoleAdmin UserRole = "admin"
)

// User represents a registered coach account. Accounts are created through
// registration and are never deleted by any exposed operation. Duplicate
// detection on Email is an exact, case-sensitive match.
type User struct {
	BaseModel
	Email        string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string   `json:"-" gorm:"not null;size:100"`
	Role         UserRole `json:"role" gorm:"type:varchar(20);not null;default:'coach'"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
