package api

import (
	"net/mail"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/furrow/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// SetupStatus tells a fresh install whether the first account still needs to
// be created. Unauthenticated on purpose: the login screen uses it to decide
// which form to show.
func (handler *Handler) SetupStatus(c *fiber.Ctx) error {
	count, err := handler.repos.Users.CountUsers()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to check setup status")
	}
	return c.JSON(fiber.Map{"needs_setup": count == 0})
}

// Register creates an account. The first account becomes the owner; every
// later one is a viewer until the owner promotes it.
func (handler *Handler) Register(c *fiber.Ctx) error {
	var credentials credentialsInput
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	email := normalizeEmail(credentials.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid email")
	}
	if len(credentials.Password) < minPasswordLength {
		return apiError(c, fiber.StatusBadRequest, "password too short")
	}

	if _, exists, err := handler.repos.Users.FindByEmail(email); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	} else if exists {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	count, err := handler.repos.Users.CountUsers()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	role := models.RoleViewer
	if count == 0 {
		role = models.RoleOwner
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		Role:         role,
		CreatedAt:    time.Now().In(handler.location),
	}
	if err := handler.repos.Users.Create(&user); err != nil {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	if err := handler.setAuthCookie(c, &user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var credentials credentialsInput
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	limiterKey := loginLimiterKey(c)
	now := time.Now()
	if !handler.loginLimiter.allow(limiterKey, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	user, found, err := handler.repos.Users.FindByEmail(normalizeEmail(credentials.Email))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to sign in")
	}
	if !found {
		handler.loginLimiter.noteFailure(limiterKey, now)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		handler.loginLimiter.noteFailure(limiterKey, now)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	handler.loginLimiter.clear(limiterKey)
	if err := handler.setAuthCookie(c, &user, credentials.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	})
}
