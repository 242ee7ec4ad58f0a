package model

import "time"

// Log records a single user-initiated action (copy-link, view, login).
// Entries are immutable once created except for deletion by an admin.
// UserID is verified at creation time but deliberately carries no FK
// constraint, so rows may outlive their user.
type Log struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"userId" gorm:"not null;index"`
	ActionType    string    `json:"actionType" gorm:"size:100;not null;index"`
	ActionDetails string    `json:"actionDetails,omitempty" gorm:"type:text"`
	IsSuccess     bool      `json:"isSuccess" gorm:"not null;default:true"`
	Device        string    `json:"device" gorm:"size:100;not null;default:'Unknown'"`
	Timestamp     time.Time `json:"timestamp" gorm:"not null;index"`
}

const (
	// UnknownUserName is reported for log rows whose user row is gone.
	UnknownUserName = "Unknown User"
	// UnknownUserRole is reported for log rows whose user row is gone.
	UnknownUserRole = "Unknown Role"
)

// LogView is a Log denormalized with the acting user's display name and role.
type LogView struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"userId"`
	ActionType    string    `json:"actionType"`
	ActionDetails string    `json:"actionDetails,omitempty"`
	IsSuccess     bool      `json:"isSuccess"`
	Timestamp     time.Time `json:"timestamp"`
	Device        string    `json:"device"`
	UserName      string    `json:"userName"`
	Role          string    `json:"role"`
}
