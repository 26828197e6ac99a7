package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the account record that recipes, follows, favorites and
// shopping lists point at. Only the fields the schema relies on are kept here.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"size:254;not null;uniqueIndex" json:"email" validate:"required,email,max=254"`
	Username  string    `gorm:"size:150;not null;uniqueIndex" json:"username" validate:"required,max=150"`
	FirstName string    `gorm:"size:150;not null;default:''" json:"first_name" validate:"max=150"`
	LastName  string    `gorm:"size:150;not null;default:''" json:"last_name" validate:"max=150"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

func (u User) String() string {
	return u.Username
}

// Validate checks field constraints without touching the database
func (u *User) Validate() error {
	return validateStruct("user", u)
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	assignID(&u.ID)
	return nil
}

func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
