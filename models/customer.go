package models

import "time"

type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"firstName" gorm:"not null"`
	LastName  string    `json:"lastName" gorm:"not null"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Phone     string    `json:"phone" gorm:"not null"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Country   string    `json:"country"`
	ZipCode   string    `json:"zipCode"`
	IDType    string    `json:"idType"`   // passport, driver_license, national_id
	IDNumber  string    `json:"idNumber"` // số giấy tờ, file đính kèm do hệ thống khác quản lý
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Bookings  []Booking `json:"-" gorm:"foreignKey:CustomerID"`
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
