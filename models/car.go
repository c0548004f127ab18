package models

type Car struct {
	PlateNumber string `gorm:"primaryKey;size:20" json:"PlateNumber"`
	CarType     string `gorm:"not null" json:"CarType"`
	CarSize     string `gorm:"type:varchar(10);not null" json:"CarSize"` // Small, Medium or Large
	DriverName  string `gorm:"not null" json:"DriverName"`
	PhoneNumber string `gorm:"not null" json:"PhoneNumber"`

	ServiceRecords []ServiceRecord `gorm:"foreignKey:PlateNumber" json:"-"`
}
