package services

import (
	"fmt"
	"strings"
	"testing"

	"frontdesk/models"
)

// memoryLogger gom log lại để kiểm tra
type memoryLogger struct {
	entries []string
}

func (l *memoryLogger) Info(format string, v ...interface{}) {
	l.entries = append(l.entries, fmt.Sprintf(format, v...))
}

func (l *memoryLogger) Error(format string, v ...interface{}) {
	l.entries = append(l.entries, fmt.Sprintf(format, v...))
}

func (l *memoryLogger) Debug(format string, v ...interface{}) {
	l.entries = append(l.entries, fmt.Sprintf(format, v...))
}

func (l *memoryLogger) contains(substr string) bool {
	for _, entry := range l.entries {
		if strings.Contains(entry, substr) {
			return true
		}
	}
	return false
}

func TestSweepRoomSchedules(t *testing.T) {
	db := setupTestDB(t)
	arrivalRoom := seedRoom(t, db, "501", 1000, 2)
	occupiedRoom := seedRoom(t, db, "502", 1000, 2)
	overdueRoom := seedRoom(t, db, "503", 1000, 2)
	customer := seedCustomer(t, db, "lan.tran@example.com")

	today := todayStart()

	// Đơn nhận hôm nay trên phòng trống
	seedBooking(t, db, arrivalRoom.ID, customer.ID, today, today.AddDate(0, 0, 2), models.BookingStatusConfirmed)

	// Đơn nhận hôm nay nhưng phòng đang có khách, không được ghi đè cờ
	if err := db.Model(occupiedRoom).Update("status", models.RoomStatusOccupied).Error; err != nil {
		t.Fatal(err)
	}
	seedBooking(t, db, occupiedRoom.ID, customer.ID, today, today.AddDate(0, 0, 2), models.BookingStatusConfirmed)

	// Đơn quá hạn trả phòng
	overdue := seedBooking(t, db, overdueRoom.ID, customer.ID, today.AddDate(0, 0, -5), today.AddDate(0, 0, -2), models.BookingStatusCheckedIn)

	log := &memoryLogger{}
	if err := NewScheduleService(db, log).SweepRoomSchedules(); err != nil {
		t.Fatalf("SweepRoomSchedules() lỗi: %v", err)
	}

	var gotArrival models.Room
	if err := db.First(&gotArrival, arrivalRoom.ID).Error; err != nil {
		t.Fatal(err)
	}
	if gotArrival.Status != models.RoomStatusReserved {
		t.Errorf("cờ phòng nhận hôm nay = %s, want %s", gotArrival.Status, models.RoomStatusReserved)
	}

	var gotOccupied models.Room
	if err := db.First(&gotOccupied, occupiedRoom.ID).Error; err != nil {
		t.Fatal(err)
	}
	if gotOccupied.Status != models.RoomStatusOccupied {
		t.Errorf("cờ phòng đang có khách = %s, không được ghi đè", gotOccupied.Status)
	}

	if !log.contains(overdue.BookingReference) {
		t.Errorf("đơn quá hạn %s phải được ghi log", overdue.BookingReference)
	}
}
