package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"estatedesk_backend/internal/httperr"
	"estatedesk_backend/internal/model"
	"estatedesk_backend/internal/storage"
	"estatedesk_backend/pkg/utils/jwt"
	"estatedesk_backend/pkg/utils/validation"
)

type AuthController struct {
	store  *storage.Store
	tokens *jwt.Manager
}

func NewAuthController(store *storage.Store, tokens *jwt.Manager) *AuthController {
	return &AuthController{store: store, tokens: tokens}
}

func (ctl *AuthController) Register(c *fiber.Ctx) error {
	input := new(model.InsertUser)
	if err := c.BodyParser(input); err != nil {
		return httperr.BadRequest(c, "Invalid request body")
	}

	if fields := validation.Struct(input); fields != nil {
		return httperr.Validation(c, "Invalid registration data", fields)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return httperr.Internal(c, "Could not hash password")
	}

	user, err := ctl.store.CreateUser(input.Username, string(hashedPassword))
	if err != nil {
		if errors.Is(err, storage.ErrUsernameExists) {
			return httperr.Conflict(c, "Username already exists")
		}
		return httperr.Internal(c, "Could not create user")
	}

	token, err := ctl.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return httperr.Internal(c, "Could not generate token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user.PublicProfile(),
	})
}

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	input := new(model.InsertUser)
	if err := c.BodyParser(input); err != nil {
		return httperr.BadRequest(c, "Invalid request body")
	}

	user, ok := ctl.store.GetUserByUsername(input.Username)
	if !ok {
		return httperr.Unauthorized(c, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return httperr.Unauthorized(c, "Invalid credentials")
	}

	token, err := ctl.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return httperr.Internal(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user.PublicProfile(),
	})
}

func (ctl *AuthController) Me(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	user, ok := ctl.store.GetUser(claims.UserID)
	if !ok {
		return httperr.NotFound(c, "User not found")
	}

	return c.JSON(fiber.Map{"user": user.PublicProfile()})
}
