package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"smartpark-backend/config"
	"smartpark-backend/models"
	"smartpark-backend/sessions"
	"smartpark-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthController owns the login lifecycle. The session store is injected so
// the cookie-to-user mapping never lives in package state.
type AuthController struct {
	Store sessions.Store
}

func NewAuthController(store sessions.Store) *AuthController {
	return &AuthController{Store: store}
}

func (a *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Username, password and full name are required")
		return
	}

	if len(input.Password) < 6 {
		utils.RespondWithError(c, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	username := strings.TrimSpace(input.Username)

	// Check if username already exists
	var existing models.User
	result := config.DB.Where("username = ?", username).First(&existing)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Username already exists")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		log.Printf("Register: lookup failed: %v", result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	user := models.User{
		Username: username,
		Password: input.Password, // hashed in BeforeCreate hook
		FullName: strings.TrimSpace(input.FullName),
	}

	if err := config.DB.Create(&user).Error; err != nil {
		// The pre-check above can lose a race; the unique index is the
		// real guard.
		if utils.IsDuplicateKey(err) {
			utils.RespondWithError(c, http.StatusConflict, "Username already exists")
			return
		}
		log.Printf("Register: insert failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user": gin.H{
			"id":       user.UserID,
			"username": user.Username,
			"fullName": user.FullName,
		},
	})
}

func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	var user models.User
	result := config.DB.Where("username = ?", strings.TrimSpace(input.Username)).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			log.Printf("Login: lookup failed: %v", result.Error)
			utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	sess := sessions.Session{
		Token:     utils.NewSessionToken(),
		UserID:    user.UserID,
		Username:  user.Username,
		FullName:  user.FullName,
		ExpiresAt: time.Now().Add(sessions.TTL),
	}
	if err := a.Store.Create(c.Request.Context(), sess); err != nil {
		log.Printf("Login: session create failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	// Not Secure: deployment is same-origin HTTP behind the office network.
	c.SetCookie(sessions.CookieName, sess.Token, int(sessions.TTL.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user": gin.H{
			"id":       user.UserID,
			"username": user.Username,
			"fullName": user.FullName,
		},
	})
}

// Check reports session state without ever failing the request; the client
// calls it on every page load.
func (a *AuthController) Check(c *gin.Context) {
	token, err := c.Cookie(sessions.CookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusOK, gin.H{"isLoggedIn": false})
		return
	}

	sess, err := a.Store.Get(c.Request.Context(), token)
	if err != nil {
		log.Printf("Check: session lookup failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}
	if sess == nil {
		c.JSON(http.StatusOK, gin.H{"isLoggedIn": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isLoggedIn": true,
		"user": gin.H{
			"id":       sess.UserID,
			"username": sess.Username,
			"fullName": sess.FullName,
		},
	})
}

// Logout is idempotent: deleting an unknown or missing token still succeeds.
func (a *AuthController) Logout(c *gin.Context) {
	if token, err := c.Cookie(sessions.CookieName); err == nil && token != "" {
		if err := a.Store.Delete(c.Request.Context(), token); err != nil {
			log.Printf("Logout: session delete failed: %v", err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Logout failed")
			return
		}
	}

	c.SetCookie(sessions.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}
