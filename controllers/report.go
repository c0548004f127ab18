// controllers/report.go
package controllers

import (
	"log"
	"net/http"
	"time"

	"smartpark-backend/config"
	"smartpark-backend/models"
	"smartpark-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReportController handles all reporting functions
type ReportController struct{}

// ReportRow is one payment line as it appears in the daily and all-payments
// reports.
type ReportRow struct {
	PlateNumber        string    `json:"PlateNumber"`
	PackageName        string    `json:"PackageName"`
	PackageDescription string    `json:"PackageDescription"`
	AmountPaid         float64   `json:"AmountPaid"`
	PaymentDate        time.Time `json:"PaymentDate"`
}

// SummaryReport holds the four headline counters of the dashboard.
type SummaryReport struct {
	CarCount     int64   `json:"carCount"`
	ServiceCount int64   `json:"serviceCount"`
	TotalRevenue float64 `json:"totalRevenue"`
	PackageCount int64   `json:"packageCount"`
}

const reportColumns = `c.plate_number, pkg.package_name, pkg.package_description,
	p.amount_paid, p.payment_date`

func (rc *ReportController) paymentRows() *gorm.DB {
	return config.DB.Table("payments p").
		Select(reportColumns).
		Joins("JOIN service_records sr ON p.record_number = sr.record_number").
		Joins("JOIN cars c ON sr.plate_number = c.plate_number").
		Joins("JOIN packages pkg ON sr.package_number = pkg.package_number")
}

// GetDailyReport returns the payments of one calendar date with their sum.
// The time of day is ignored: a payment counts for the date it fell on.
func (rc *ReportController) GetDailyReport(c *gin.Context) {
	date := c.Param("date")

	day, err := utils.ParseDate(date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	start := utils.BeginningOfDay(day)
	end := start.AddDate(0, 0, 1)

	var records []ReportRow
	if err := rc.paymentRows().
		Where("p.payment_date >= ? AND p.payment_date < ?", start, end).
		Order("p.payment_date DESC").
		Scan(&records).Error; err != nil {
		log.Printf("Error generating daily report: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	var totalAmount float64
	for _, record := range records {
		totalAmount += record.AmountPaid
	}

	c.JSON(http.StatusOK, gin.H{
		"date":        date,
		"totalAmount": totalAmount,
		"records":     records,
		"count":       len(records),
	})
}

// GetPaymentsReport returns every payment line, newest first
func (rc *ReportController) GetPaymentsReport(c *gin.Context) {
	var records []ReportRow
	if err := rc.paymentRows().
		Order("p.payment_date DESC").
		Scan(&records).Error; err != nil {
		log.Printf("Error generating payments report: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetSummary returns the four headline aggregates. The reads are
// independent statements, not a snapshot; at this scale the skew between
// them is not worth a transaction.
func (rc *ReportController) GetSummary(c *gin.Context) {
	var summary SummaryReport

	if err := config.DB.Model(&models.Car{}).Count(&summary.CarCount).Error; err != nil {
		log.Printf("Error getting car count: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	if err := config.DB.Model(&models.ServiceRecord{}).Count(&summary.ServiceCount).Error; err != nil {
		log.Printf("Error getting service count: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	if err := config.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount_paid), 0)").
		Scan(&summary.TotalRevenue).Error; err != nil {
		log.Printf("Error getting payment sum: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	if err := config.DB.Model(&models.Package{}).Count(&summary.PackageCount).Error; err != nil {
		log.Printf("Error getting package count: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, summary)
}
