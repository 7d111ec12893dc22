package models

import (
	"fmt"
	"time"
)

// Room status (cờ vận hành do lễ tân đặt tay, không dùng để xét trùng lịch)
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
	RoomStatusReserved    = "reserved"
)

type Room struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	RoomNumber    string    `json:"roomNumber" gorm:"unique;not null"`
	RoomType      string    `json:"roomType" gorm:"not null"`
	PricePerNight float64   `json:"pricePerNight" gorm:"not null"`
	Status        string    `json:"status" gorm:"default:available"`
	Floor         int       `json:"floor"`
	Capacity      int       `json:"capacity"`
	Description   string    `json:"description"`
	IsActive      bool      `json:"isActive" gorm:"default:true"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Bookings      []Booking `json:"-" gorm:"foreignKey:RoomID"`
}

func (r *Room) ValidateStatus() error {
	switch r.Status {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance, RoomStatusReserved:
		return nil
	}
	return fmt.Errorf("invalid status: %s", r.Status)
}

// RoomTypeConfig loại phòng cấu hình động, chỉ giữ tên/nhãn
type RoomTypeConfig struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"unique;not null"`
	DisplayName string    `json:"displayName"`
	IsActive    bool      `json:"isActive" gorm:"default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
