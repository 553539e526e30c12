package api

import (
	"github.com/fitlog-app/fitlog/internal/tracker"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// UserHandler handles user registration and listing
type UserHandler struct {
	users tracker.UserStore
}

// NewUserHandler creates a new user handler
func NewUserHandler(users tracker.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

type createUserRequest struct {
	Username string `json:"username"`
}

type createUserResponse struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}

type userSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// CreateUser handles user registration
// POST /api/users
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Debug().Err(err).Msg("Failed to parse create user request")
		return SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	username, err := tracker.ValidateUsername(req.Username)
	if err != nil {
		return handleDomainError(c, err, "create user")
	}

	user, err := h.users.Create(c.Context(), username)
	if err != nil {
		return handleDomainError(c, err, "create user")
	}

	return c.JSON(createUserResponse{
		Username: user.Username,
		ID:       user.ID,
	})
}

// ListUsers returns all registered users
// GET /api/users
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return handleDomainError(c, err, "list users")
	}

	summaries := make([]userSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, userSummary{ID: user.ID, Username: user.Username})
	}

	return c.JSON(summaries)
}
