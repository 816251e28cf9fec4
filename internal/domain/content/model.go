package content

import (
	"encoding/json"
	"time"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Page is an authority-owned guideline/info page built from ordered blocks.
type Page struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Slug     string `gorm:"not null;uniqueIndex" json:"slug"`
	Title    string `gorm:"not null" json:"title"`
	Category string `gorm:"index" json:"category"` // "guideline" | "preparedness" | "announcement"
	Lang     string `gorm:"not null;default:'en';index" json:"lang"`
	Status   string `gorm:"not null;default:'draft';index" json:"status"`

	AuthorID uint `gorm:"index" json:"-"`

	Blocks []PageBlock `gorm:"foreignKey:PageID;references:ID;constraint:OnDelete:CASCADE;" json:"blocks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PageBlock struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	PageID    string `gorm:"type:uuid;not null;index" json:"page_id"`
	SortIndex int    `gorm:"not null;default:0;index" json:"sort_index"`

	Type  string          `gorm:"not null;index" json:"type"` // "text" | "checklist" | "image" | "contact"
	Props json.RawMessage `gorm:"type:jsonb;not null;default:'{}'" json:"props"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
