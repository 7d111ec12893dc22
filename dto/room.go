package dto

import "time"

// RoomRequest là DTO cho request tạo/sửa phòng
type RoomRequest struct {
	ID            uint    `json:"id"`
	RoomNumber    string  `json:"roomNumber"`
	RoomType      string  `json:"roomType"`
	PricePerNight float64 `json:"pricePerNight"`
	Floor         int     `json:"floor"`
	Capacity      int     `json:"capacity"`
	Description   string  `json:"description"`
}

// RoomStatusRequest là DTO cho request đổi cờ trạng thái phòng
type RoomStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type RoomResponse struct {
	ID            uint      `json:"id"`
	RoomNumber    string    `json:"roomNumber"`
	RoomType      string    `json:"roomType"`
	PricePerNight float64   `json:"pricePerNight"`
	Status        string    `json:"status"`
	Floor         int       `json:"floor"`
	Capacity      int       `json:"capacity"`
	Description   string    `json:"description,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
