package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Group is an organizational bucket an image or palette may belong to.
// Every row is owned by a single user.
type Group struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"not null"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *Group) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// Tag is a many-to-many label for images and palettes.
type Tag struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"not null"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

type Image struct {
	ID        string         `json:"id" gorm:"primaryKey;size:36"`
	Name      string         `json:"name" gorm:"not null"`
	Src       string         `json:"src" gorm:"not null"`
	Comments  string         `json:"comments"`
	GroupID   *string        `json:"group_id" gorm:"size:36;index"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Group     *Group         `json:"group,omitempty" gorm:"foreignKey:GroupID"`
	Tags      []TagsOnImages `json:"tags,omitempty" gorm:"foreignKey:ImageID"`
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// ColorList is an ordered set of color-code strings stored as a JSON
// text column, so the same schema works on postgres and sqlite.
type ColorList []string

func (c ColorList) Value() (driver.Value, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *ColorList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	case nil:
		*c = nil
		return nil
	default:
		return fmt.Errorf("unsupported type for ColorList: %T", value)
	}
}

type Palette struct {
	ID        string           `json:"id" gorm:"primaryKey;size:36"`
	Name      string           `json:"name" gorm:"not null"`
	Colors    ColorList        `json:"colors" gorm:"type:text;not null"`
	Comments  string           `json:"comments"`
	GroupID   *string          `json:"group_id" gorm:"size:36;index"`
	UserID    uint             `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Group     *Group           `json:"group,omitempty" gorm:"foreignKey:GroupID"`
	Tags      []TagsOnPalettes `json:"tags,omitempty" gorm:"foreignKey:PaletteID"`
}

func (Palette) TableName() string {
	return "color_palettes"
}

func (p *Palette) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// TagsOnImages links an image to a tag. The composite primary key keeps
// duplicate (image, tag) pairs out of the table.
type TagsOnImages struct {
	ImageID string `json:"image_id" gorm:"primaryKey;size:36"`
	TagID   string `json:"tag_id" gorm:"primaryKey;size:36"`
	Tag     Tag    `json:"tag" gorm:"foreignKey:TagID"`
}

func (TagsOnImages) TableName() string {
	return "tags_on_images"
}

type TagsOnPalettes struct {
	PaletteID string `json:"palette_id" gorm:"primaryKey;size:36"`
	TagID     string `json:"tag_id" gorm:"primaryKey;size:36"`
	Tag       Tag    `json:"tag" gorm:"foreignKey:TagID"`
}

func (TagsOnPalettes) TableName() string {
	return "tags_on_palettes"
}
