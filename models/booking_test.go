package models

import (
	"math"
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCalculateNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"một đêm", date(2026, 3, 10), date(2026, 3, 11), 1},
		{"ba đêm", date(2026, 3, 10), date(2026, 3, 13), 3},
		{"cùng ngày tính một đêm", date(2026, 3, 10), date(2026, 3, 10), 1},
		{"qua tháng", date(2026, 3, 30), date(2026, 4, 2), 3},
		{"qua năm", date(2026, 12, 30), date(2027, 1, 2), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateNights(tt.checkIn, tt.checkOut); got != tt.want {
				t.Errorf("CalculateNights() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateBookingCost(t *testing.T) {
	tests := []struct {
		name          string
		roomPrice     float64
		nights        int
		discount      float64
		taxPercentage float64
		wantTotal     float64
		wantTax       float64
		wantFinal     float64
	}{
		{"không giảm giá không thuế", 1000, 3, 0, 0, 3000, 0, 3000},
		{"có giảm giá", 1000, 3, 500, 0, 3000, 0, 2500},
		{"có thuế", 1000, 2, 0, 10, 2000, 200, 2200},
		{"giảm giá rồi mới tính thuế", 1000, 3, 500, 10, 3000, 250, 2750},
		{"làm tròn hai chữ số", 999.99, 3, 0, 18, 2999.97, 539.9946, 3539.96},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, tax, final := CalculateBookingCost(tt.roomPrice, tt.nights, tt.discount, tt.taxPercentage)
			if math.Abs(total-tt.wantTotal) > 1e-6 {
				t.Errorf("totalAmount = %v, want %v", total, tt.wantTotal)
			}
			if math.Abs(tax-tt.wantTax) > 1e-6 {
				t.Errorf("tax = %v, want %v", tax, tt.wantTax)
			}
			if math.Abs(final-tt.wantFinal) > 1e-6 {
				t.Errorf("finalAmount = %v, want %v", final, tt.wantFinal)
			}
		})
	}
}
