package routes

import (
	"net/http"
	"os"

	"smartpark-backend/config"
	"smartpark-backend/controllers"
	"smartpark-backend/sessions"
	"smartpark-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(store sessions.Store) *gin.Engine {
	r := gin.Default()

	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(store)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/check", authController.Check)
		auth.POST("/logout", authController.Logout)
	}

	requireSession := utils.AuthMiddleware(store)

	cars := r.Group("/cars", requireSession)
	{
		cars.GET("", controllers.GetCars)
		cars.POST("", controllers.CreateCar)
		cars.GET("/:plateNumber", controllers.GetCar)
		cars.PUT("/:plateNumber", controllers.UpdateCar)
		cars.DELETE("/:plateNumber", controllers.DeleteCar)
	}

	packages := r.Group("/packages", requireSession)
	{
		packages.GET("", controllers.GetPackages)
		packages.POST("", controllers.CreatePackage)
		packages.GET("/:id", controllers.GetPackage)
		packages.PUT("/:id", controllers.UpdatePackage)
		packages.DELETE("/:id", controllers.DeletePackage)
	}

	services := r.Group("/services", requireSession)
	{
		services.GET("", controllers.GetServiceRecords)
		services.POST("", controllers.CreateServiceRecord)
		services.GET("/:id", controllers.GetServiceRecord)
		services.PUT("/:id", controllers.UpdateServiceRecord)
		services.DELETE("/:id", controllers.DeleteServiceRecord)
	}

	payments := r.Group("/payments", requireSession)
	{
		payments.GET("", controllers.GetPayments)
		payments.POST("", controllers.CreatePayment)
		payments.GET("/bill/:recordNumber", controllers.GetBill)
		payments.GET("/:id", controllers.GetPayment)
	}

	reportController := controllers.ReportController{}
	reports := r.Group("/reports", requireSession)
	{
		reports.GET("/daily/:date", reportController.GetDailyReport)
		reports.GET("/payments", reportController.GetPaymentsReport)
		reports.GET("/summary", reportController.GetSummary)
	}

	return r
}
