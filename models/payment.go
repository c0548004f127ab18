package models

import "time"

type Payment struct {
	PaymentNumber uint      `gorm:"primaryKey;autoIncrement" json:"PaymentNumber"`
	AmountPaid    float64   `gorm:"type:decimal(10,2);not null" json:"AmountPaid"`
	PaymentDate   time.Time `gorm:"type:date;not null" json:"PaymentDate"`
	RecordNumber  uint      `gorm:"index;not null" json:"RecordNumber"`
}

// PaymentRow is a payment joined with its service record, car and package.
type PaymentRow struct {
	PaymentNumber uint      `json:"PaymentNumber"`
	AmountPaid    float64   `json:"AmountPaid"`
	PaymentDate   time.Time `json:"PaymentDate"`
	RecordNumber  uint      `json:"RecordNumber"`
	ServiceDate   time.Time `json:"ServiceDate"`
	PlateNumber   string    `json:"PlateNumber"`
	DriverName    string    `json:"DriverName"`
	PackageName   string    `json:"PackageName"`
	PackagePrice  float64   `json:"PackagePrice"`
}

// Bill is the composite receipt view for one service record. Payment columns
// are pointers: a record that has not been paid yet still has a bill.
type Bill struct {
	PlateNumber        string     `json:"PlateNumber"`
	DriverName         string     `json:"DriverName"`
	PhoneNumber        string     `json:"PhoneNumber"`
	CarType            string     `json:"CarType"`
	CarSize            string     `json:"CarSize"`
	PackageName        string     `json:"PackageName"`
	PackageDescription string     `json:"PackageDescription"`
	PackagePrice       float64    `json:"PackagePrice"`
	ServiceDate        time.Time  `json:"ServiceDate"`
	RecordNumber       uint       `json:"RecordNumber"`
	PaymentNumber      *uint      `json:"PaymentNumber"`
	AmountPaid         *float64   `json:"AmountPaid"`
	PaymentDate        *time.Time `json:"PaymentDate"`
}
