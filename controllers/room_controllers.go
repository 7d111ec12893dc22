package controllers

import (
	"log"
	"strconv"
	"time"

	"frontdesk/config"
	"frontdesk/dto"
	"frontdesk/models"
	"frontdesk/response"
	"frontdesk/services"
	"frontdesk/validator"

	"github.com/gin-gonic/gin"
)

func toRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:            room.ID,
		RoomNumber:    room.RoomNumber,
		RoomType:      room.RoomType,
		PricePerNight: room.PricePerNight,
		Status:        room.Status,
		Floor:         room.Floor,
		Capacity:      room.Capacity,
		Description:   room.Description,
		IsActive:      room.IsActive,
		CreatedAt:     room.CreatedAt,
		UpdatedAt:     room.UpdatedAt,
	}
}

// GetAllRooms lấy danh sách phòng, có phân trang và lọc theo loại/tầng/giá/trạng thái
func GetAllRooms(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	typeFilter := c.Query("type")
	statusFilter := c.Query("status")
	floorStr := c.Query("floor")
	maxPriceStr := c.Query("maxPrice")
	page := 0
	limit := 10

	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}

	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	// Danh sách không lọc trang đầu ưu tiên lấy từ cache
	unfiltered := typeFilter == "" && statusFilter == "" && floorStr == "" && maxPriceStr == "" && page == 0
	if unfiltered && config.RedisClient != nil {
		var cached []dto.RoomResponse
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, services.CacheKeyRooms, &cached); err == nil && len(cached) > 0 {
			total := len(cached)
			if limit < total {
				cached = cached[:limit]
			}
			response.SuccessWithPagination(c, cached, page, limit, total)
			return
		}
	}

	tx := config.DB.Model(&models.Room{})
	if typeFilter != "" {
		tx = tx.Where("room_type = ?", typeFilter)
	}
	if statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}
	if floorStr != "" {
		if floor, err := strconv.Atoi(floorStr); err == nil {
			tx = tx.Where("floor = ?", floor)
		}
	}
	if maxPriceStr != "" {
		if maxPrice, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
			tx = tx.Where("price_per_night <= ?", maxPrice)
		}
	}

	var totalRooms int64
	if err := tx.Count(&totalRooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	var rooms []models.Room
	if err := tx.Order("room_number asc").Offset(page * limit).Limit(limit).Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roomResponses = append(roomResponses, toRoomResponse(room))
	}

	if unfiltered && config.RedisClient != nil {
		if err := services.SetToRedis(config.Ctx, config.RedisClient, services.CacheKeyRooms, roomResponses, 60*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu dữ liệu vào Redis: %v", err)
		}
	}

	response.SuccessWithPagination(c, roomResponses, page, limit, int(totalRooms))
}

// CreateRoom tạo phòng mới
func CreateRoom(c *gin.Context) {
	var request dto.RoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Lỗi khi ràng buộc dữ liệu")
		return
	}

	if err := validator.ValidateRoom(&request); err != nil {
		handleServiceError(c, err)
		return
	}

	var existingRoom models.Room
	if err := config.DB.Where("room_number = ?", request.RoomNumber).First(&existingRoom).Error; err == nil {
		response.Conflict(c, "Số phòng đã tồn tại")
		return
	}

	room := models.Room{
		RoomNumber:    request.RoomNumber,
		RoomType:      request.RoomType,
		PricePerNight: request.PricePerNight,
		Status:        models.RoomStatusAvailable,
		Floor:         request.Floor,
		Capacity:      request.Capacity,
		Description:   request.Description,
		IsActive:      true,
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	response.Created(c, toRoomResponse(room))
}

// GetRoomDetail lấy chi tiết phòng theo ID
func GetRoomDetail(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, roomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toRoomResponse(room))
}

// UpdateRoom cập nhật thông tin phòng
func UpdateRoom(c *gin.Context) {
	var request dto.RoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Lỗi khi ràng buộc dữ liệu")
		return
	}
	if request.ID == 0 {
		response.BadRequest(c, "ID phòng không được để trống")
		return
	}

	if err := validator.ValidateRoom(&request); err != nil {
		handleServiceError(c, err)
		return
	}

	var room models.Room
	if err := config.DB.First(&room, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.RoomNumber != room.RoomNumber {
		var existingRoom models.Room
		if err := config.DB.Where("room_number = ? AND id <> ?", request.RoomNumber, room.ID).First(&existingRoom).Error; err == nil {
			response.Conflict(c, "Số phòng đã tồn tại")
			return
		}
	}

	room.RoomNumber = request.RoomNumber
	room.RoomType = request.RoomType
	room.PricePerNight = request.PricePerNight
	room.Floor = request.Floor
	room.Capacity = request.Capacity
	room.Description = request.Description

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	response.Success(c, toRoomResponse(room))
}

// ChangeRoomStatus đổi cờ trạng thái vận hành của phòng.
// Cờ này không ảnh hưởng việc xét trùng lịch, lịch xét theo đơn đặt phòng.
func ChangeRoomStatus(c *gin.Context) {
	var request dto.RoomStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Lỗi khi ràng buộc dữ liệu")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.Status = request.Status
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, "Trạng thái phòng không hợp lệ: "+request.Status)
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	response.Success(c, toRoomResponse(room))
}

// DeactivateRoom ngừng khai thác phòng, chặn khi còn đơn chưa kết thúc
func DeactivateRoom(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, roomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var activeBookings int64
	err = config.DB.Model(&models.Booking{}).
		Where("room_id = ?", room.ID).
		Where("status IN ?", []string{models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusCheckedIn}).
		Count(&activeBookings).Error
	if err != nil {
		response.ServerError(c)
		return
	}
	if activeBookings > 0 {
		response.Conflict(c, "Phòng còn đơn đặt chưa kết thúc, không thể ngừng khai thác")
		return
	}

	room.IsActive = false
	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	response.Success(c, toRoomResponse(room))
}

// GetRoomTypes lấy danh sách loại phòng đang khai thác
func GetRoomTypes(c *gin.Context) {
	var roomTypes []models.RoomTypeConfig
	if err := config.DB.Where("is_active = ?", true).Order("name asc").Find(&roomTypes).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithTotal(c, roomTypes, len(roomTypes))
}

// CreateRoomType thêm loại phòng mới
func CreateRoomType(c *gin.Context) {
	var roomType models.RoomTypeConfig
	if err := c.ShouldBindJSON(&roomType); err != nil {
		response.BadRequest(c, "Lỗi khi ràng buộc dữ liệu")
		return
	}
	if roomType.Name == "" {
		response.BadRequest(c, "Tên loại phòng không được để trống")
		return
	}

	var existing models.RoomTypeConfig
	if err := config.DB.Where("name = ?", roomType.Name).First(&existing).Error; err == nil {
		response.Conflict(c, "Loại phòng đã tồn tại")
		return
	}

	roomType.IsActive = true
	if err := config.DB.Create(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, roomType)
}

func invalidateRoomCache() {
	if config.RedisClient == nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, services.CacheKeyRooms)
}
