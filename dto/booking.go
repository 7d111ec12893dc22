package dto

import "time"

// CreateBookingRequest là DTO cho request tạo đặt phòng
type CreateBookingRequest struct {
	CustomerID      uint    `json:"customerId" binding:"required"`
	RoomID          uint    `json:"roomId" binding:"required"`
	CheckInDate     string  `json:"checkInDate" binding:"required"`  // dd/MM/yyyy
	CheckOutDate    string  `json:"checkOutDate" binding:"required"` // dd/MM/yyyy
	NumberOfGuests  int     `json:"numberOfGuests" binding:"required"`
	Discount        float64 `json:"discount"`
	TaxPercentage   float64 `json:"taxPercentage"`
	SpecialRequests string  `json:"specialRequests"`
}

// UpdateBookingRequest là DTO cho request sửa đặt phòng, đổi ngày sẽ kiểm tra lại lịch phòng
type UpdateBookingRequest struct {
	ID              uint     `json:"id" binding:"required"`
	CheckInDate     string   `json:"checkInDate"`
	CheckOutDate    string   `json:"checkOutDate"`
	NumberOfGuests  *int     `json:"numberOfGuests"`
	Discount        *float64 `json:"discount"`
	SpecialRequests *string  `json:"specialRequests"`
}

// BookingStatusRequest là DTO cho request cập nhật trạng thái đặt phòng
type BookingStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// CancelBookingRequest là DTO cho request hủy đặt phòng
type CancelBookingRequest struct {
	ID uint `json:"id" binding:"required"`
}

// AvailabilityRequest là DTO cho request kiểm tra lịch phòng
type AvailabilityRequest struct {
	RoomID       uint   `json:"roomId" form:"roomId" binding:"required"`
	CheckInDate  string `json:"checkInDate" form:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" form:"checkOutDate" binding:"required"`
}

// AvailabilityResponse là DTO cho response kiểm tra lịch phòng
type AvailabilityResponse struct {
	Available           bool     `json:"available"`
	Message             string   `json:"message"`
	ConflictingBookings []string `json:"conflictingBookings,omitempty"`
}

// BookingCustomerResponse là DTO cho thông tin khách trong đặt phòng
type BookingCustomerResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingRoomResponse là DTO cho thông tin phòng trong đặt phòng
type BookingRoomResponse struct {
	ID            uint    `json:"id"`
	RoomNumber    string  `json:"roomNumber"`
	RoomType      string  `json:"roomType"`
	PricePerNight float64 `json:"pricePerNight"`
}

type BookingResponse struct {
	ID               uint                    `json:"id"`
	BookingReference string                  `json:"bookingReference"`
	Customer         BookingCustomerResponse `json:"customer"`
	Room             BookingRoomResponse     `json:"room"`
	CheckInDate      string                  `json:"checkInDate"`
	CheckOutDate     string                  `json:"checkOutDate"`
	NumberOfGuests   int                     `json:"numberOfGuests"`
	NumberOfNights   int                     `json:"numberOfNights"`
	RoomPrice        float64                 `json:"roomPrice"`
	TotalAmount      float64                 `json:"totalAmount"`
	Discount         float64                 `json:"discount"`
	Tax              float64                 `json:"tax"`
	FinalAmount      float64                 `json:"finalAmount"`
	Status           string                  `json:"status"`
	SpecialRequests  string                  `json:"specialRequests,omitempty"`
	CheckedInAt      *time.Time              `json:"checkedInAt,omitempty"`
	CheckedOutAt     *time.Time              `json:"checkedOutAt,omitempty"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
}
