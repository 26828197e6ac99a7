package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Follow records that UserID subscribes to AuthorID. A pair is stored at most once.
type Follow struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:unique_follow" json:"user_id" validate:"required"`
	User     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:unique_follow;index" json:"author_id" validate:"required"`
	Author   *User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty" validate:"-"`
}

func (Follow) TableName() string {
	return "follows"
}

func (f *Follow) Validate() error {
	return validateStruct("follow", f)
}

func (f Follow) String() string {
	return fmt.Sprintf("%s follows %s", f.UserID, f.AuthorID)
}

func (f *Follow) BeforeCreate(tx *gorm.DB) error {
	assignID(&f.ID)
	return nil
}
