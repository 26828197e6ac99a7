package models

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/pkg/slug"
	"gorm.io/gorm"
)

// DefaultTagColor is stored when a tag is created without a color
const DefaultTagColor = "#ffffff"

const tagSlugMaxLen = 10

// Tag labels recipes ("breakfast", "dinner"). Neither name nor slug is unique.
type Tag struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"size:20;not null" json:"name" validate:"required,max=20"`
	HexColor string    `gorm:"size:7;not null;default:'#ffffff'" json:"color" validate:"required,max=7,hexcolor"`
	Slug     string    `gorm:"size:10;not null;index" json:"slug" validate:"required,max=10,slug"`
}

func (Tag) TableName() string {
	return "tags"
}

// NewTag builds a validated tag. An empty color falls back to DefaultTagColor
// and an empty slug is derived from the name.
func NewTag(name, hexColor, tagSlug string) (*Tag, error) {
	t := &Tag{Name: name, HexColor: hexColor, Slug: tagSlug}
	t.applyDefaults()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tag) applyDefaults() {
	if t.HexColor == "" {
		t.HexColor = DefaultTagColor
	}
	if t.Slug == "" {
		s := slug.From(t.Name)
		if len(s) > tagSlugMaxLen {
			s = strings.TrimRight(s[:tagSlugMaxLen], "-")
		}
		t.Slug = s
	}
}

func (t *Tag) Validate() error {
	return validateStruct("tag", t)
}

func (t Tag) String() string {
	return t.Name
}

// ColoredName renders the tag name as an HTML span colored with HexColor.
// Both values are escaped.
func (t Tag) ColoredName() template.HTML {
	return template.HTML(fmt.Sprintf(
		`<span style="color: %s;">%s</span>`,
		template.HTMLEscapeString(t.HexColor),
		template.HTMLEscapeString(t.Name),
	))
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	assignID(&t.ID)
	t.applyDefaults()
	return nil
}
