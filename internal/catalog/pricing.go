package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sweetdelights/cakekart-backend/pkg/db/models"
)

// EffectivePrice returns the price to charge right now, applying the cake's
// discount when its window is open. Fractions round half up to the nearest
// rupee. A nil window bound leaves that side open.
func EffectivePrice(cake *models.Cake, now time.Time) int {
	if cake.DiscountPercentage == nil || *cake.DiscountPercentage <= 0 {
		return cake.Price
	}
	pct := *cake.DiscountPercentage
	if pct >= 100 {
		return 0
	}
	if cake.DiscountStartDate != nil && now.Before(*cake.DiscountStartDate) {
		return cake.Price
	}
	if cake.DiscountEndDate != nil && now.After(*cake.DiscountEndDate) {
		return cake.Price
	}

	price := decimal.NewFromInt(int64(cake.Price))
	factor := decimal.NewFromInt(100).Sub(decimal.NewFromFloat(pct)).Div(decimal.NewFromInt(100))
	return int(price.Mul(factor).Round(0).IntPart())
}

// DiscountActive reports whether the cake's discount window is open now.
func DiscountActive(cake *models.Cake, now time.Time) bool {
	return EffectivePrice(cake, now) != cake.Price
}
