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

// PackageInput is shared by create and update; all three fields are
// required and the price has to be positive. The old client also capped the
// price at one million, but that stays a client nicety.
type PackageInput struct {
	PackageName        string  `json:"packageName" binding:"required"`
	PackageDescription string  `json:"packageDescription" binding:"required"`
	PackagePrice       float64 `json:"packagePrice" binding:"required,gt=0"`
}

// GetPackages retrieves the whole catalog
func GetPackages(c *gin.Context) {
	var packages []models.Package
	if err := config.DB.Find(&packages).Error; err != nil {
		log.Printf("Error fetching packages: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, packages)
}

// GetPackage retrieves a package by its generated number
func GetPackage(c *gin.Context) {
	id := c.Param("id")

	var pkg models.Package
	if err := config.DB.Where("package_number = ?", id).First(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Package not found")
		} else {
			log.Printf("Error fetching package: %v", err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// CreatePackage adds a package to the catalog
func CreatePackage(c *gin.Context) {
	var input PackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "All fields are required and the price must be positive")
		return
	}

	pkg := models.Package{
		PackageName:        input.PackageName,
		PackageDescription: input.PackageDescription,
		PackagePrice:       input.PackagePrice,
	}

	if err := config.DB.Create(&pkg).Error; err != nil {
		log.Printf("Error adding package: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Package added successfully",
		"package": pkg,
	})
}

// UpdatePackage replaces the three mutable fields
func UpdatePackage(c *gin.Context) {
	id := c.Param("id")

	var input PackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "All fields are required and the price must be positive")
		return
	}

	result := config.DB.Model(&models.Package{}).
		Where("package_number = ?", id).
		Updates(map[string]interface{}{
			"package_name":        input.PackageName,
			"package_description": input.PackageDescription,
			"package_price":       input.PackagePrice,
		})

	if result.Error != nil {
		log.Printf("Error updating package: %v", result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Package not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Package updated successfully"})
}

// DeletePackage removes a package from the catalog
func DeletePackage(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Where("package_number = ?", id).Delete(&models.Package{})
	if result.Error != nil {
		if utils.IsForeignKeyViolation(result.Error) {
			utils.RespondWithError(c, http.StatusConflict, "Package has service records and cannot be deleted")
			return
		}
		log.Printf("Error deleting package: %v", result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Package not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Package deleted successfully"})
}
