package users

import (
	"time"

	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/subscription"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/users"
)

func BuildPlanDTO(p *subscription.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:       p.ID,
		Key:      p.Name,
		Interval: p.Interval,
		PricePKR: p.PricePKR,
	}
}

func BuildSubscriptionDTO(u users.User) *SubscriptionDTO {
	if u.SubscriptionStatus == nil && u.SubscriptionEnd == nil {
		return nil
	}
	return &SubscriptionDTO{
		Status:   subscription.NormalizeStatus(u.SubscriptionStatus),
		StartsAt: u.SubscriptionStart,
		EndsAt:   u.SubscriptionEnd,
	}
}

func BuildTrialDTO(now time.Time, start, end *time.Time) *TrialDTO {
	if start == nil || end == nil {
		return nil
	}

	var daysLeft *int
	if now.Before(*end) {
		d := int(end.Sub(now).Hours() / 24)
		if d < 0 {
			d = 0
		}
		daysLeft = &d
	} else {
		d := 0
		daysLeft = &d
	}

	return &TrialDTO{
		StartsAt: start,
		EndsAt:   end,
		DaysLeft: daysLeft,
	}
}
