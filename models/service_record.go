package models

import "time"

// ServiceRecord links a car to the package it was washed under on a given date.
// Payments attach to the record, not to the car directly.
type ServiceRecord struct {
	RecordNumber  uint      `gorm:"primaryKey;autoIncrement" json:"RecordNumber"`
	ServiceDate   time.Time `gorm:"type:date;not null" json:"ServiceDate"`
	PlateNumber   string    `gorm:"size:20;index;not null" json:"PlateNumber"`
	PackageNumber uint      `gorm:"index;not null" json:"PackageNumber"`

	Payments []Payment `gorm:"foreignKey:RecordNumber" json:"-"`
}

// ServiceRecordRow is the denormalized read shape: the record joined with its
// car and package, as rendered by the service-record tables on the client.
type ServiceRecordRow struct {
	RecordNumber       uint      `json:"RecordNumber"`
	ServiceDate        time.Time `json:"ServiceDate"`
	PlateNumber        string    `json:"PlateNumber"`
	DriverName         string    `json:"DriverName"`
	CarType            string    `json:"CarType"`
	CarSize            string    `json:"CarSize"`
	PackageNumber      uint      `json:"PackageNumber"`
	PackageName        string    `json:"PackageName"`
	PackageDescription string    `json:"PackageDescription"`
	PackagePrice       float64   `json:"PackagePrice"`
}
