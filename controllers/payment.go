package controllers

import (
	"log"
	"net/http"

	"smartpark-backend/config"
	"smartpark-backend/models"
	"smartpark-backend/services"
	"smartpark-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Notifier, when set, gets told about every captured payment so it can text
// the driver a receipt. Left nil when Twilio is not configured.
var Notifier *services.ReceiptNotifier

// PaymentInput requires all three fields. The amount is not checked against
// the package price: partial and adjusted payments are allowed.
type PaymentInput struct {
	AmountPaid   float64 `json:"amountPaid" binding:"required,gt=0"`
	PaymentDate  string  `json:"paymentDate" binding:"required"`
	RecordNumber uint    `json:"recordNumber" binding:"required"`
}

const paymentColumns = `p.payment_number, p.amount_paid, p.payment_date, p.record_number,
	sr.service_date, c.plate_number, c.driver_name, pkg.package_name, pkg.package_price`

func paymentQuery() *gorm.DB {
	return config.DB.Table("payments p").
		Select(paymentColumns).
		Joins("JOIN service_records sr ON p.record_number = sr.record_number").
		Joins("JOIN cars c ON sr.plate_number = c.plate_number").
		Joins("JOIN packages pkg ON sr.package_number = pkg.package_number")
}

// GetPayments retrieves all payments joined with their record, car and
// package
func GetPayments(c *gin.Context) {
	var rows []models.PaymentRow
	if err := paymentQuery().Scan(&rows).Error; err != nil {
		log.Printf("Error fetching payments: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetPayment retrieves one denormalized payment by its number
func GetPayment(c *gin.Context) {
	id := c.Param("id")

	var rows []models.PaymentRow
	if err := paymentQuery().
		Where("p.payment_number = ?", id).
		Scan(&rows).Error; err != nil {
		log.Printf("Error fetching payment: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}
	if len(rows) == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Payment not found")
		return
	}

	c.JSON(http.StatusOK, rows[0])
}

// CreatePayment records a payment against a service record
func CreatePayment(c *gin.Context) {
	var input PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "All fields are required and the amount must be positive")
		return
	}

	paymentDate, err := utils.ParseDate(input.PaymentDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment date")
		return
	}

	payment := models.Payment{
		AmountPaid:   input.AmountPaid,
		PaymentDate:  paymentDate,
		RecordNumber: input.RecordNumber,
	}

	if err := config.DB.Create(&payment).Error; err != nil {
		log.Printf("Error adding payment: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	if Notifier != nil {
		go Notifier.PaymentRecorded(payment)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment added successfully",
		"payment": payment,
	})
}

// GetBill composes the receipt view for one service record. The payment
// side of the join is optional: an unpaid record still has a bill, with the
// payment fields null.
func GetBill(c *gin.Context) {
	recordNumber := c.Param("recordNumber")

	var bills []models.Bill
	err := config.DB.Table("service_records sr").
		Select(`c.plate_number, c.driver_name, c.phone_number, c.car_type, c.car_size,
			pkg.package_name, pkg.package_description, pkg.package_price,
			sr.service_date, sr.record_number,
			p.payment_number, p.amount_paid, p.payment_date`).
		Joins("JOIN cars c ON sr.plate_number = c.plate_number").
		Joins("JOIN packages pkg ON sr.package_number = pkg.package_number").
		Joins("LEFT JOIN payments p ON sr.record_number = p.record_number").
		Where("sr.record_number = ?", recordNumber).
		Scan(&bills).Error
	if err != nil {
		log.Printf("Error generating bill: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}
	if len(bills) == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service record not found")
		return
	}

	c.JSON(http.StatusOK, bills[0])
}
