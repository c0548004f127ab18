package controllers

import (
	"errors"
	"log"
	"net/http"

	"smartpark-backend/config"
	"smartpark-backend/models"
	"smartpark-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateCarInput defines the expected JSON structure for registering a car
type CreateCarInput struct {
	PlateNumber string `json:"plateNumber" binding:"required"`
	CarType     string `json:"carType" binding:"required"`
	CarSize     string `json:"carSize" binding:"required"`
	DriverName  string `json:"driverName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// UpdateCarInput covers the mutable fields; the plate number is the key and
// never changes.
type UpdateCarInput struct {
	CarType     string `json:"carType" binding:"required"`
	CarSize     string `json:"carSize" binding:"required"`
	DriverName  string `json:"driverName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// GetCars retrieves all registered cars
func GetCars(c *gin.Context) {
	var cars []models.Car
	if err := config.DB.Find(&cars).Error; err != nil {
		log.Printf("Error fetching cars: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, cars)
}

// GetCar retrieves a car by plate number
func GetCar(c *gin.Context) {
	plateNumber := c.Param("plateNumber")

	var car models.Car
	if err := config.DB.Where("plate_number = ?", plateNumber).First(&car).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Car not found")
		} else {
			log.Printf("Error fetching car: %v", err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	c.JSON(http.StatusOK, car)
}

// CreateCar registers a new car
func CreateCar(c *gin.Context) {
	var input CreateCarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	if !utils.ValidCarSize(input.CarSize) {
		utils.RespondWithError(c, http.StatusBadRequest, "Car size must be Small, Medium or Large")
		return
	}
	if !utils.ValidatePhone(input.PhoneNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Check if the plate number is already registered
	var existing models.Car
	if err := config.DB.Where("plate_number = ?", input.PlateNumber).
		First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Car with this plate number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Error checking for duplicate plate number: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	car := models.Car{
		PlateNumber: input.PlateNumber,
		CarType:     input.CarType,
		CarSize:     input.CarSize,
		DriverName:  input.DriverName,
		PhoneNumber: input.PhoneNumber,
	}

	if err := config.DB.Create(&car).Error; err != nil {
		// Two simultaneous registrations can pass the check above; the
		// primary key on plate_number settles it.
		if utils.IsDuplicateKey(err) {
			utils.RespondWithError(c, http.StatusConflict, "Car with this plate number already exists")
			return
		}
		log.Printf("Error adding car: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Car added successfully",
		"car":     car,
	})
}

// UpdateCar updates the mutable fields of a car
func UpdateCar(c *gin.Context) {
	plateNumber := c.Param("plateNumber")

	var input UpdateCarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	if !utils.ValidCarSize(input.CarSize) {
		utils.RespondWithError(c, http.StatusBadRequest, "Car size must be Small, Medium or Large")
		return
	}
	if !utils.ValidatePhone(input.PhoneNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	result := config.DB.Model(&models.Car{}).
		Where("plate_number = ?", plateNumber).
		Updates(map[string]interface{}{
			"car_type":     input.CarType,
			"car_size":     input.CarSize,
			"driver_name":  input.DriverName,
			"phone_number": input.PhoneNumber,
		})

	if result.Error != nil {
		log.Printf("Error updating car: %v", result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Car not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Car updated successfully",
		"car": models.Car{
			PlateNumber: plateNumber,
			CarType:     input.CarType,
			CarSize:     input.CarSize,
			DriverName:  input.DriverName,
			PhoneNumber: input.PhoneNumber,
		},
	})
}

// DeleteCar removes a car by plate number
func DeleteCar(c *gin.Context) {
	plateNumber := c.Param("plateNumber")

	result := config.DB.Where("plate_number = ?", plateNumber).Delete(&models.Car{})
	if result.Error != nil {
		if utils.IsForeignKeyViolation(result.Error) {
			utils.RespondWithError(c, http.StatusConflict, "Car has service records and cannot be deleted")
			return
		}
		log.Printf("Error deleting car: %v", result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Car not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car deleted successfully"})
}
