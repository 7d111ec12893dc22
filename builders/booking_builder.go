package builders

import (
	"time"

	"frontdesk/models"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithCustomer thêm thông tin khách hàng
func (b *BookingBuilder) WithCustomer(customerID uint) *BookingBuilder {
	b.booking.CustomerID = customerID
	return b
}

// WithRoom thêm thông tin phòng
func (b *BookingBuilder) WithRoom(roomID uint) *BookingBuilder {
	b.booking.RoomID = roomID
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithStay thêm thời gian lưu trú, tự tính số đêm
func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	b.booking.CheckOutDate = checkOut
	b.booking.NumberOfNights = models.CalculateNights(checkIn, checkOut)
	return b
}

// WithGuests thêm số lượng khách
func (b *BookingBuilder) WithGuests(numberOfGuests int) *BookingBuilder {
	b.booking.NumberOfGuests = numberOfGuests
	return b
}

// WithPricing tính và gắn toàn bộ số tiền cho booking
func (b *BookingBuilder) WithPricing(roomPrice, discount, taxPercentage float64) *BookingBuilder {
	totalAmount, tax, finalAmount := models.CalculateBookingCost(roomPrice, b.booking.NumberOfNights, discount, taxPercentage)
	b.booking.RoomPrice = roomPrice
	b.booking.TotalAmount = totalAmount
	b.booking.Discount = discount
	b.booking.TaxPercentage = taxPercentage
	b.booking.Tax = tax
	b.booking.FinalAmount = finalAmount
	return b
}

// WithSpecialRequests thêm yêu cầu đặc biệt
func (b *BookingBuilder) WithSpecialRequests(specialRequests string) *BookingBuilder {
	b.booking.SpecialRequests = specialRequests
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
