package services

import (
	"fmt"
	"time"

	"frontdesk/errors"
	"frontdesk/models"

	"gorm.io/gorm"
)

// AvailabilityService kiểm tra lịch trống của phòng dựa trên bản ghi đặt phòng.
// Cờ Room.Status chỉ mang tính vận hành, không dùng để xét trùng lịch.
type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// blockingStatuses là các trạng thái giữ phòng: pending chưa xác nhận nên không giữ,
// cancelled và checked_out đã nhả phòng
var blockingStatuses = []string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn}

// RoomAvailable kiểm tra phòng trống trong khoảng [checkIn, checkOut) theo nửa khoảng:
// hai khoảng trùng nhau khi existing.check_in < checkOut và existing.check_out > checkIn,
// chạm biên không tính là trùng. excludeBookingID bỏ qua chính đơn đang sửa.
func (s *AvailabilityService) RoomAvailable(roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, []models.Booking, error) {
	var room models.Room
	if err := s.db.First(&room, roomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil, errors.NewAppError(errors.ErrCodeDBNotFound, fmt.Sprintf("Không tìm thấy phòng %d", roomID), err)
		}
		return false, nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn phòng", err)
	}

	tx := s.db.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", blockingStatuses).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)

	if excludeBookingID != 0 {
		tx = tx.Where("id <> ?", excludeBookingID)
	}

	var conflicting []models.Booking
	if err := tx.Find(&conflicting).Error; err != nil {
		return false, nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn lịch phòng", err)
	}

	return len(conflicting) == 0, conflicting, nil
}

// ConflictMessages tạo danh sách mô tả các đơn bị trùng lịch cho response
func ConflictMessages(conflicting []models.Booking) []string {
	messages := make([]string, 0, len(conflicting))
	for _, b := range conflicting {
		messages = append(messages, fmt.Sprintf("Đơn %s (%s - %s)",
			b.BookingReference,
			b.CheckInDate.Format("02/01/2006"),
			b.CheckOutDate.Format("02/01/2006")))
	}
	return messages
}
