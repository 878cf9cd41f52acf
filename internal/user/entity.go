package user

import (
	"time"

	"github.com/saulo-duarte/appraisal-api/internal/store"
)

const EntityName = "User"

const (
	RoleEmployee = "Employee"
	RoleAdmin    = "Admin"
)

type User struct {
	ID          int64     `gorm:"primaryKey" json:"userId"`
	Email       string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	FullName    string    `gorm:"type:text;not null" json:"fullName"`
	FirstName   string    `gorm:"type:text" json:"firstName,omitempty"`
	LastName    string    `gorm:"type:text" json:"lastName,omitempty"`
	PhoneNumber string    `gorm:"type:text;not null;uniqueIndex" json:"phoneNumber"`
	Password    string    `gorm:"type:text;not null" json:"-"`
	Role        string    `gorm:"type:text;not null" json:"role"`
	Username    *string   `gorm:"type:text;uniqueIndex" json:"username,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (User) TableName() string {
	return store.TableUsers
}
