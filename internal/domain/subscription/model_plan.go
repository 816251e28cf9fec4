package subscription

type Plan struct {
	ID            uint `gorm:"primaryKey"`
	Name          string
	PricePKR      float64
	StripePriceID string `gorm:"column:stripe_price_id;uniqueIndex:idx_plans_stripe_price_id"`
	Interval      string // "month" | "year"
	DurationDays  int    `gorm:"column:duration_days"` // subscription length granted per payment
	StatusLabel   string `gorm:"column:status_label"`  // status written on activation: "active" | "organization"
}
