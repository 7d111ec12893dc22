package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// RoomScheduleSweeper định nghĩa interface cho việc quét lịch phòng đầu ngày
type RoomScheduleSweeper interface {
	SweepRoomSchedules() error
}

var roomScheduleSweeper RoomScheduleSweeper

// SetRoomScheduleSweeper thiết lập implementation cho RoomScheduleSweeper
func SetRoomScheduleSweeper(sweeper RoomScheduleSweeper) {
	roomScheduleSweeper = sweeper
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang quét lịch phòng lúc: %v", now)
		if roomScheduleSweeper == nil {
			log.Printf("Lỗi: RoomScheduleSweeper chưa được thiết lập")
			return
		}
		if err := roomScheduleSweeper.SweepRoomSchedules(); err != nil {
			log.Printf("Lỗi khi quét lịch phòng: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
