package alerts

import "time"

// Severity levels, mildest first
const (
	SeverityAdvisory  = "advisory"
	SeverityWatch     = "watch"
	SeverityWarning   = "warning"
	SeverityEmergency = "emergency"
)

type Alert struct {
	ID       string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Body     string `gorm:"type:text;not null" json:"body"`
	Severity string `gorm:"not null;index;default:'advisory'" json:"severity"`
	District string `gorm:"index" json:"district"` // empty = region-wide
	Active   bool   `gorm:"not null;default:true;index" json:"active"`

	IssuedByID uint `gorm:"index" json:"-"`

	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func ValidSeverity(s string) bool {
	switch s {
	case SeverityAdvisory, SeverityWatch, SeverityWarning, SeverityEmergency:
		return true
	}
	return false
}
