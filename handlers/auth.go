package handlers

import (
	"errors"
	"time"

	"picpoints/auth"
	"picpoints/config"
	"picpoints/database"
	"picpoints/models"
	"picpoints/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const refreshCookieName = "jwt"

var tokens *auth.TokenService

// InitAuthHandlers initializes auth handlers with the given config.
func InitAuthHandlers(cfg *config.Config) {
	tokens = auth.NewTokenService(cfg)
}

func setRefreshCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		MaxAge:   int((24 * time.Hour).Seconds()),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}

func clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}

// Register creates a new account. Validation failures come back as a list
// of field errors, all of them at once.
func Register(c *fiber.Ctx) error {
	input := new(validation.RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if errs := validation.ValidateRegister(*input); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	var existing models.User
	err := database.DB.Where("username = ?", input.Username).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "User with that username already exists.",
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), 10)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	user := models.User{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Username:       input.Username,
		Email:          input.Email,
		Password:       string(hashed),
		CurrencyPoints: 0,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User " + user.Username + " has been created.",
	})
}

// Login verifies credentials and issues a token pair. Unknown username and
// wrong password produce the same response so neither is leaked.
func Login(c *fiber.Ctx) error {
	input := new(validation.LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if errs := validation.ValidateLogin(*input); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	var user models.User
	if err := database.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Wrong username or password.",
		})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Wrong username or password.",
		})
	}

	pair, err := tokens.IssuePair(user.Username)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	// Single active session: any previously stored refresh token is gone.
	user.RefreshToken = pair.RefreshToken
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "There was an error while updating user.",
		})
	}

	setRefreshCookie(c, pair.RefreshToken)
	return c.JSON(fiber.Map{
		"accessToken": pair.AccessToken,
	})
}

// Logout clears the stored refresh token. Absence of the cookie is not an
// error; logout without a session is a no-op.
func Logout(c *fiber.Ctx) error {
	cookie := c.Cookies(refreshCookieName)
	if cookie == "" {
		return c.SendStatus(fiber.StatusNoContent)
	}

	var user models.User
	if err := database.DB.Where("refresh_token = ?", cookie).First(&user).Error; err != nil {
		clearRefreshCookie(c)
		return c.SendStatus(fiber.StatusForbidden)
	}

	user.RefreshToken = ""
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	clearRefreshCookie(c)
	return c.JSON(fiber.Map{
		"message": "User was successfully logged out",
	})
}

// Refresh exchanges a valid refresh cookie for a new short-lived access
// token. The refresh token itself is not rotated.
func Refresh(c *fiber.Ctx) error {
	cookie := c.Cookies(refreshCookieName)
	if cookie == "" {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var user models.User
	if err := database.DB.Where("refresh_token = ?", cookie).First(&user).Error; err != nil {
		return c.SendStatus(fiber.StatusForbidden)
	}

	username, err := tokens.ParseRefresh(cookie)
	if err != nil || username != user.Username {
		return c.SendStatus(fiber.StatusForbidden)
	}

	accessToken, err := tokens.SignAccess(username, auth.RefreshedAccessTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"accessToken": accessToken,
		"username":    user.Username,
	})
}

// DeleteUser removes the authenticated user's account and session cookie.
func DeleteUser(c *fiber.Ctx) error {
	username := c.Locals("username").(string)

	var user models.User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	clearRefreshCookie(c)
	return c.JSON(user)
}
