package services

import (
	"time"

	"frontdesk/errors"
	"frontdesk/models"
	"frontdesk/services/logger"

	"gorm.io/gorm"
)

// ScheduleService xử lý các việc chạy nền đầu ngày của lễ tân
type ScheduleService struct {
	db  *gorm.DB
	log logger.Logger
}

func NewScheduleService(db *gorm.DB, log logger.Logger) *ScheduleService {
	return &ScheduleService{db: db, log: log}
}

// SweepRoomSchedules chạy đầu mỗi ngày: giữ phòng cho các đơn nhận phòng hôm nay
// và ghi nhận các đơn quá hạn trả phòng để lễ tân xử lý
func (s *ScheduleService) SweepRoomSchedules() error {
	today := time.Now().Truncate(24 * time.Hour)
	tomorrow := today.Add(24 * time.Hour)

	// Phòng có đơn confirmed nhận hôm nay chuyển sang reserved, trừ phòng đang có khách
	var arrivals []models.Booking
	err := s.db.Where("check_in_date >= ? AND check_in_date < ?", today, tomorrow).
		Where("status = ?", models.BookingStatusConfirmed).
		Find(&arrivals).Error
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đơn nhận phòng hôm nay", err)
	}

	reserved := 0
	for _, booking := range arrivals {
		result := s.db.Model(&models.Room{}).
			Where("id = ? AND status = ?", booking.RoomID, models.RoomStatusAvailable).
			Update("status", models.RoomStatusReserved)
		if result.Error != nil {
			s.log.Error("Không giữ được phòng %d cho đơn %s: %v", booking.RoomID, booking.BookingReference, result.Error)
			continue
		}
		reserved += int(result.RowsAffected)
	}

	// Đơn đã quá ngày trả phòng mà khách chưa trả thì chỉ ghi log, không tự trả phòng
	var overdue []models.Booking
	err = s.db.Preload("Room").
		Where("check_out_date < ?", today).
		Where("status = ?", models.BookingStatusCheckedIn).
		Find(&overdue).Error
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đơn quá hạn trả phòng", err)
	}

	for _, booking := range overdue {
		s.log.Info("Đơn %s quá hạn trả phòng %s từ %s", booking.BookingReference,
			booking.Room.RoomNumber, booking.CheckOutDate.Format("02/01/2006"))
	}

	s.log.Info("Quét lịch phòng xong: giữ %d phòng, %d đơn quá hạn", reserved, len(overdue))
	return nil
}
