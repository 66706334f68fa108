package catalog

import (
	"testing"
	"time"

	"github.com/sweetdelights/cakekart-backend/pkg/db/models"
)

func floatPtr(v float64) *float64   { return &v }
func timePtr(t time.Time) *time.Time { return &t }

func TestEffectivePrice(t *testing.T) {
	now := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	cases := []struct {
		name string
		cake models.Cake
		want int
	}{
		{
			name: "no discount",
			cake: models.Cake{Price: 599},
			want: 599,
		},
		{
			name: "open window applies",
			cake: models.Cake{Price: 1000, DiscountPercentage: floatPtr(25)},
			want: 750,
		},
		{
			name: "inside window",
			cake: models.Cake{Price: 800, DiscountPercentage: floatPtr(10), DiscountStartDate: timePtr(past), DiscountEndDate: timePtr(future)},
			want: 720,
		},
		{
			name: "before window",
			cake: models.Cake{Price: 800, DiscountPercentage: floatPtr(10), DiscountStartDate: timePtr(future)},
			want: 800,
		},
		{
			name: "after window",
			cake: models.Cake{Price: 800, DiscountPercentage: floatPtr(10), DiscountEndDate: timePtr(past)},
			want: 800,
		},
		{
			name: "rounds to nearest rupee",
			cake: models.Cake{Price: 599, DiscountPercentage: floatPtr(15)},
			want: 509, // 509.15
		},
		{
			name: "full discount floors at zero",
			cake: models.Cake{Price: 599, DiscountPercentage: floatPtr(100)},
			want: 0,
		},
		{
			name: "zero percent is a no-op",
			cake: models.Cake{Price: 599, DiscountPercentage: floatPtr(0)},
			want: 599,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EffectivePrice(&tc.cake, now); got != tc.want {
				t.Errorf("EffectivePrice = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDiscountActive(t *testing.T) {
	now := time.Now()
	discounted := models.Cake{Price: 1000, DiscountPercentage: floatPtr(20)}
	if !DiscountActive(&discounted, now) {
		t.Error("expected active discount")
	}
	plain := models.Cake{Price: 1000}
	if DiscountActive(&plain, now) {
		t.Error("expected inactive discount")
	}
}
