package inventory

import "time"

type Item struct {
	ID       string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string `gorm:"not null;index" json:"name"`
	Category string `gorm:"not null;index" json:"category"` // "food" | "medical" | "shelter" | "equipment"
	Unit     string `gorm:"not null" json:"unit"`           // "kg", "boxes", "tents", ...

	Quantity          int    `gorm:"not null;default:0" json:"quantity"`
	LowStockThreshold int    `gorm:"not null;default:0" json:"low_stock_threshold"`
	Warehouse         string `gorm:"index" json:"warehouse"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LowStock reports whether the item has fallen to or below its threshold.
func (i Item) LowStock() bool {
	return i.LowStockThreshold > 0 && i.Quantity <= i.LowStockThreshold
}
