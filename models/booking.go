package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking status
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusCheckedIn  = "checked_in"
	BookingStatusCheckedOut = "checked_out"
	BookingStatusCancelled  = "cancelled"
)

type Booking struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	BookingReference string     `json:"bookingReference" gorm:"unique;size:20"`
	CustomerID       uint       `json:"customerId" gorm:"not null;index"`
	Customer         Customer   `json:"customer" gorm:"foreignKey:CustomerID"`
	RoomID           uint       `json:"roomId" gorm:"not null;index"`
	Room             Room       `json:"room" gorm:"foreignKey:RoomID"`
	CheckInDate      time.Time  `json:"checkInDate" gorm:"index"`
	CheckOutDate     time.Time  `json:"checkOutDate" gorm:"index"`
	NumberOfGuests   int        `json:"numberOfGuests"`
	NumberOfNights   int        `json:"numberOfNights"`
	RoomPrice        float64    `json:"roomPrice"`     // Giá phòng mỗi đêm tại thời điểm đặt
	TotalAmount      float64    `json:"totalAmount"`   // Số đêm x giá phòng
	Discount         float64    `json:"discount"`      // Giảm giá
	TaxPercentage    float64    `json:"taxPercentage"` // % thuế chốt lúc đặt, dùng khi tính lại tiền
	Tax              float64    `json:"tax"`           // Thuế
	FinalAmount      float64    `json:"finalAmount"`   // Số tiền chốt, đối chiếu với sổ thanh toán
	Status           string     `json:"status" gorm:"default:pending;index"`
	SpecialRequests  string     `json:"specialRequests"`
	CheckedInAt      *time.Time `json:"checkedInAt,omitempty"`
	CheckedOutAt     *time.Time `json:"checkedOutAt,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Payments         []Payment  `json:"-" gorm:"foreignKey:BookingID"`
}

// BeforeCreate sinh mã đặt phòng duy nhất dạng BK<yyyymmdd><6 hex>
func (booking *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if booking.BookingReference != "" {
		return nil
	}

	booking.BookingReference = fmt.Sprintf("BK%s%s",
		time.Now().Format("20060102"),
		strings.ToUpper(uuid.NewString()[:6]))

	var count int64
	if err := tx.Model(&Booking{}).Where("booking_reference = ?", booking.BookingReference).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("mã đặt phòng đã tồn tại, hãy thử lại")
	}
	return nil
}

// CalculateNights tính số đêm giữa hai ngày, đặt trong ngày tính tối thiểu 1 đêm
func CalculateNights(checkIn, checkOut time.Time) int {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return nights
}

// CalculateBookingCost tính tiền đặt phòng: tổng = đêm x giá, trừ giảm giá rồi cộng thuế theo %
func CalculateBookingCost(roomPrice float64, nights int, discount, taxPercentage float64) (totalAmount, tax, finalAmount float64) {
	totalAmount = roomPrice * float64(nights)
	subtotal := totalAmount - discount
	tax = subtotal * taxPercentage / 100
	finalAmount = math.Round((subtotal+tax)*100) / 100
	return totalAmount, tax, finalAmount
}
