package facilities

import "time"

// Facility kinds shown in the public directory
const (
	KindShelter     = "shelter"
	KindHospital    = "hospital"
	KindFireStation = "fire_station"
	KindWarehouse   = "warehouse"
)

type Facility struct {
	ID       string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Kind     string `gorm:"not null;index" json:"kind"`
	District string `gorm:"index" json:"district"`
	Address  string `json:"address"`
	Contact  string `json:"contact"`

	Capacity    *int     `json:"capacity,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	Operational bool     `gorm:"not null;default:true" json:"operational"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NGO struct {
	ID       string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string `gorm:"not null;uniqueIndex" json:"name"`
	Focus    string `json:"focus"` // e.g. "medical relief", "food distribution"
	District string `gorm:"index" json:"district"`
	Contact  string `json:"contact"`
	Website  string `json:"website"`
	Active   bool   `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ValidKind(k string) bool {
	switch k {
	case KindShelter, KindHospital, KindFireStation, KindWarehouse:
		return true
	}
	return false
}
