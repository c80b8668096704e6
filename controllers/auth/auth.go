package authController

import (
	"encoding/json"
	"log"
	"time"

	"github.com/RyanYahya/NarraPrep/config"
	"github.com/RyanYahya/NarraPrep/database"
	"github.com/RyanYahya/NarraPrep/middleware"
	"github.com/RyanYahya/NarraPrep/models"
	"github.com/RyanYahya/NarraPrep/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Signup registers a new student account
func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*models.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Register at the external identity provider first. Failure is surfaced
	// as an upstream error, nothing is persisted locally.
	authSubject := ""
	if config.AppConfig.AuthProviderURL != "" {
		subject, err := utils.RegisterIdentity(reqData.Email, reqData.Name, reqData.Password)
		if err != nil {
			log.Printf("Identity provider registration failed: %v", err)
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Identity provider is unavailable!", nil)
		}
		authSubject = subject
	} else {
		// Local mode, no provider configured
		authSubject = uuid.NewString()
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	settingsJSON, _ := json.Marshal(models.DefaultUserSettings())
	categoryStatsJSON, _ := json.Marshal(map[string]models.CategoryStat{})

	newUser := models.User{
		Name:          reqData.Name,
		Email:         reqData.Email,
		Password:      string(hashedPassword),
		Role:          models.RoleStudent,
		AuthSubject:   authSubject,
		Settings:      settingsJSON,
		CategoryStats: categoryStatsJSON,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to signup user!", nil)
	}

	// Clean Response
	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

// Login authenticates a user and issues a JWT
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*models.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Update last login time
	user.LastLogin = time.Now()
	if err := database.Database.Db.Save(&user).Error; err != nil {
		log.Printf("Error saving last login time: %v", err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
		"user":  user,
	})
}
