// services/notifier.go
package services

import (
	"fmt"
	"log"
	"os"

	"smartpark-backend/models"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReceiptNotifier texts the driver a short receipt when a payment is
// captured. Sending is fire-and-forget; a failed SMS never fails the
// payment.
type ReceiptNotifier struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

// NewReceiptNotifier returns nil when Twilio is not configured, which
// disables receipt texting without any other change.
func NewReceiptNotifier(db *gorm.DB) *ReceiptNotifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_FROM_NUMBER")

	if accountSid == "" || authToken == "" || from == "" {
		return nil
	}

	return &ReceiptNotifier{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: from,
	}
}

type receiptInfo struct {
	DriverName  string
	PhoneNumber string
	PlateNumber string
	PackageName string
}

func (n *ReceiptNotifier) PaymentRecorded(payment models.Payment) {
	var info receiptInfo
	err := n.db.Table("service_records sr").
		Select("c.driver_name, c.phone_number, c.plate_number, pkg.package_name").
		Joins("JOIN cars c ON sr.plate_number = c.plate_number").
		Joins("JOIN packages pkg ON sr.package_number = pkg.package_number").
		Where("sr.record_number = ?", payment.RecordNumber).
		Scan(&info).Error
	if err != nil || info.PhoneNumber == "" {
		log.Printf("Receipt notifier: no recipient for record %d: %v", payment.RecordNumber, err)
		return
	}

	body := fmt.Sprintf(
		"Hi %s, SmartPark received your payment of %.2f for %s (plate %s) on %s. Thank you!",
		info.DriverName, payment.AmountPaid, info.PackageName,
		info.PlateNumber, payment.PaymentDate.Format("2006-01-02"))

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(info.PhoneNumber)
	params.SetFrom(n.from)
	params.SetBody(body)

	if _, err := n.client.Api.CreateMessage(params); err != nil {
		log.Printf("Receipt notifier: send to %s failed: %v", info.PhoneNumber, err)
		return
	}
	log.Printf("Receipt notifier: sent receipt for payment %d to %s", payment.PaymentNumber, info.PhoneNumber)
}
