package models

import "time"

const (
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// User is a provisioned account. ManagerID is only set for employees and must
// reference a user whose Role is RoleManager.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Name         string    `json:"name" gorm:"not null"`
	Role         string    `json:"role" gorm:"type:varchar(20);not null;index"` // manager, employee
	ManagerID    *uint     `json:"manager_id"`
	CreatedAt    time.Time `json:"created_at"`
}
