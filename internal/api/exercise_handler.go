package api

import (
	"encoding/json"
	"strings"

	"github.com/fitlog-app/fitlog/internal/tracker"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ExerciseHandler handles exercise creation and log retrieval
type ExerciseHandler struct {
	users     tracker.UserStore
	exercises tracker.ExerciseStore
	clock     tracker.Clock
}

// NewExerciseHandler creates a new exercise handler
func NewExerciseHandler(users tracker.UserStore, exercises tracker.ExerciseStore, clock tracker.Clock) *ExerciseHandler {
	return &ExerciseHandler{
		users:     users,
		exercises: exercises,
		clock:     clock,
	}
}

type addExerciseRequest struct {
	Description string `json:"description"`
	// Duration is kept raw because clients send it as either a JSON number
	// or a numeric string; the validator parses the token.
	Duration json.RawMessage `json:"duration"`
	Date     string          `json:"date"`
}

func (r addExerciseRequest) durationToken() string {
	return strings.Trim(string(r.Duration), `"`)
}

type addExerciseResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type logsResponse struct {
	ID       string             `json:"id"`
	Username string             `json:"username"`
	Count    int                `json:"count"`
	Log      []tracker.LogEntry `json:"log"`
}

// AddExercise logs an exercise against a user
// POST /api/users/:id/exercises
func (h *ExerciseHandler) AddExercise(c *fiber.Ctx) error {
	var req addExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		log.Debug().Err(err).Msg("Failed to parse add exercise request")
		return SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	input, err := tracker.ValidateExerciseInput(req.Description, req.durationToken(), req.Date, h.clock.Now())
	if err != nil {
		return handleDomainError(c, err, "add exercise")
	}

	user, err := h.users.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err, "add exercise")
	}

	exercise, err := h.exercises.Create(c.Context(), user.ID, input)
	if err != nil {
		return handleDomainError(c, err, "add exercise")
	}

	return c.JSON(addExerciseResponse{
		ID:          user.ID,
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
	})
}

// GetLogs returns a user's exercise log, optionally filtered by an
// inclusive date window and truncated to a limit. The count always
// reflects the window alone.
// GET /api/users/:id/logs?from&to&limit
func (h *ExerciseHandler) GetLogs(c *fiber.Ctx) error {
	q, err := tracker.ParseLogQuery(c.Query("from"), c.Query("to"), c.Query("limit"))
	if err != nil {
		return handleDomainError(c, err, "fetch logs")
	}

	user, err := h.users.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err, "fetch logs")
	}

	count, err := h.exercises.CountByUser(c.Context(), user.ID, q)
	if err != nil {
		return handleDomainError(c, err, "fetch logs")
	}

	entries, err := h.exercises.ListByUser(c.Context(), user.ID, q)
	if err != nil {
		return handleDomainError(c, err, "fetch logs")
	}

	return c.JSON(logsResponse{
		ID:       user.ID,
		Username: user.Username,
		Count:    count,
		Log:      entries,
	})
}
