package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"frontdesk/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB mở một DB sqlite in-memory riêng cho từng test
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("mở DB test lỗi: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Room{},
		&models.RoomTypeConfig{},
		&models.Customer{},
		&models.Booking{},
		&models.Payment{},
	); err != nil {
		t.Fatalf("migrate DB test lỗi: %v", err)
	}

	return db
}

func seedRoom(t *testing.T, db *gorm.DB, roomNumber string, pricePerNight float64, capacity int) *models.Room {
	t.Helper()

	room := &models.Room{
		RoomNumber:    roomNumber,
		RoomType:      "standard",
		PricePerNight: pricePerNight,
		Status:        models.RoomStatusAvailable,
		Floor:         1,
		Capacity:      capacity,
		IsActive:      true,
	}
	if err := db.Create(room).Error; err != nil {
		t.Fatalf("seed phòng lỗi: %v", err)
	}
	return room
}

func seedCustomer(t *testing.T, db *gorm.DB, email string) *models.Customer {
	t.Helper()

	customer := &models.Customer{
		FirstName: "Lan",
		LastName:  "Tran",
		Email:     email,
		Phone:     "0909123456",
	}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("seed khách hàng lỗi: %v", err)
	}
	return customer
}

// seedBooking chèn thẳng một đơn với trạng thái cho trước, bỏ qua service
func seedBooking(t *testing.T, db *gorm.DB, roomID, customerID uint, checkIn, checkOut time.Time, status string) *models.Booking {
	t.Helper()

	nights := models.CalculateNights(checkIn, checkOut)
	booking := &models.Booking{
		CustomerID:     customerID,
		RoomID:         roomID,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumberOfGuests: 1,
		NumberOfNights: nights,
		RoomPrice:      1000,
		TotalAmount:    1000 * float64(nights),
		FinalAmount:    1000 * float64(nights),
		Status:         status,
	}
	if err := db.Create(booking).Error; err != nil {
		t.Fatalf("seed đặt phòng lỗi: %v", err)
	}
	return booking
}

// futureDate trả về ngày cách hôm nay days ngày, định dạng wire dd/MM/yyyy
func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("02/01/2006")
}

// todayStart trả về đầu ngày hôm nay theo cùng cách cắt ngày của service
func todayStart() time.Time {
	return time.Now().Truncate(24 * time.Hour)
}
