package reports

import (
	"time"

	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/users"
)

// Report lifecycle
const (
	StatusPending   = "pending"
	StatusVerified  = "verified"
	StatusResolved  = "resolved"
	StatusDismissed = "dismissed"
)

// Incident types accepted from the report form
const (
	TypeFlood      = "flood"
	TypeEarthquake = "earthquake"
	TypeFire       = "fire"
	TypeLandslide  = "landslide"
	TypeStorm      = "storm"
	TypeOther      = "other"
)

type IncidentReport struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	// Citizens quote this code to follow up without signing in
	TrackingCode string `gorm:"not null;uniqueIndex" json:"tracking_code"`

	ReporterID uint       `gorm:"index" json:"-"`
	Reporter   users.User `json:"-"`

	Type        string `gorm:"not null;index" json:"type"`
	Description string `gorm:"type:text;not null" json:"description"`

	District     string   `gorm:"index" json:"district"`
	LocationText string   `json:"location_text"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`

	Status string `gorm:"not null;default:'pending';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DamageAssessment struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	ReporterID uint       `gorm:"index" json:"-"`
	Reporter   users.User `json:"-"`

	// Optional link back to the incident that caused the damage
	ReportID *string `gorm:"type:uuid;index" json:"report_id,omitempty"`

	StructureType string  `gorm:"not null" json:"structure_type"` // house | shop | school | road | other
	DamageLevel   string  `gorm:"not null" json:"damage_level"`   // minor | partial | severe | destroyed
	EstimatedLoss float64 `json:"estimated_loss"`
	Description   string  `gorm:"type:text" json:"description"`
	District      string  `gorm:"index" json:"district"`

	// Object-store keys of uploaded photos; storage itself is external
	PhotoKeys []PhotoKey `gorm:"foreignKey:AssessmentID;references:ID;constraint:OnDelete:CASCADE;" json:"photos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PhotoKey struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	AssessmentID string `gorm:"type:uuid;not null;index" json:"-"`
	Key          string `gorm:"not null" json:"key"`
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusVerified, StatusResolved, StatusDismissed:
		return true
	}
	return false
}

func ValidType(s string) bool {
	switch s {
	case TypeFlood, TypeEarthquake, TypeFire, TypeLandslide, TypeStorm, TypeOther:
		return true
	}
	return false
}
