package controllers

import (
	"log"
	"net/http"

	"smartpark-backend/config"
	"smartpark-backend/models"
	"smartpark-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ServiceRecordInput is shared by create and update. Foreign-key existence
// is not re-checked here; the store's constraints have the final word.
type ServiceRecordInput struct {
	ServiceDate   string `json:"serviceDate" binding:"required"`
	PlateNumber   string `json:"plateNumber" binding:"required"`
	PackageNumber uint   `json:"packageNumber" binding:"required"`
}

const serviceRecordColumns = `sr.record_number, sr.service_date,
	c.plate_number, c.driver_name, c.car_type, c.car_size,
	p.package_number, p.package_name, p.package_description, p.package_price`

func serviceRecordQuery() *gorm.DB {
	return config.DB.Table("service_records sr").
		Select(serviceRecordColumns).
		Joins("JOIN cars c ON sr.plate_number = c.plate_number").
		Joins("JOIN packages p ON sr.package_number = p.package_number")
}

// GetServiceRecords retrieves all service records joined with their car and
// package for display
func GetServiceRecords(c *gin.Context) {
	var rows []models.ServiceRecordRow
	if err := serviceRecordQuery().Scan(&rows).Error; err != nil {
		log.Printf("Error fetching service records: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetServiceRecord retrieves one denormalized record by its number
func GetServiceRecord(c *gin.Context) {
	id := c.Param("id")

	var rows []models.ServiceRecordRow
	if err := serviceRecordQuery().
		Where("sr.record_number = ?", id).
		Scan(&rows).Error; err != nil {
		log.Printf("Error fetching service record: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}
	if len(rows) == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service record not found")
		return
	}

	c.JSON(http.StatusOK, rows[0])
}

// CreateServiceRecord links a car to a package on a date
func CreateServiceRecord(c *gin.Context) {
	var input ServiceRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	serviceDate, err := utils.ParseDate(input.ServiceDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service date")
		return
	}

	record := models.ServiceRecord{
		ServiceDate:   serviceDate,
		PlateNumber:   input.PlateNumber,
		PackageNumber: input.PackageNumber,
	}

	if err := config.DB.Create(&record).Error; err != nil {
		log.Printf("Error adding service record: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Service record added successfully",
		"serviceRecord": record,
	})
}

// UpdateServiceRecord replaces the date, car and package of a record
func UpdateServiceRecord(c *gin.Context) {
	id := c.Param("id")

	var input ServiceRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	serviceDate, err := utils.ParseDate(input.ServiceDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service date")
		return
	}

	result := config.DB.Model(&models.ServiceRecord{}).
		Where("record_number = ?", id).
		Updates(map[string]interface{}{
			"service_date":   serviceDate,
			"plate_number":   input.PlateNumber,
			"package_number": input.PackageNumber,
		})

	if result.Error != nil {
		log.Printf("Error updating service record: %v", result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service record not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service record updated successfully"})
}

// DeleteServiceRecord removes a record by its number
func DeleteServiceRecord(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Where("record_number = ?", id).Delete(&models.ServiceRecord{})
	if result.Error != nil {
		if utils.IsForeignKeyViolation(result.Error) {
			utils.RespondWithError(c, http.StatusConflict, "Service record has payments and cannot be deleted")
			return
		}
		log.Printf("Error deleting service record: %v", result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service record not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service record deleted successfully"})
}
