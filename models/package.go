package models

type Package struct {
	PackageNumber      uint    `gorm:"primaryKey;autoIncrement" json:"PackageNumber"`
	PackageName        string  `gorm:"not null" json:"PackageName"`
	PackageDescription string  `gorm:"not null" json:"PackageDescription"`
	PackagePrice       float64 `gorm:"type:decimal(10,2);not null" json:"PackagePrice"`

	ServiceRecords []ServiceRecord `gorm:"foreignKey:PackageNumber" json:"-"`
}
