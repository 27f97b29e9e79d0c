package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/pkg/httpserver"
)

const msgInvalidPreferences = "Invalid input for user preferences"

// PreferenceRequest is the body of a preference update. Notifications is a
// pointer so that a missing flag can be told apart from false.
type PreferenceRequest struct {
	UserID        string `json:"userId" validate:"required" example:"userId1"`
	Notifications *bool  `json:"notifications" validate:"required" example:"true"`
	Units         string `json:"units" validate:"required" example:"metric"`
}

// GetUserPreferences godoc
// @Summary Get user preferences
// @Tags Preferences
// @Produce json
// @Param userId query string true "User identifier" example(userId1)
// @Success 200 {object} models.UserPreference
// @Failure 400 {object} httpserver.ErrorResponse "Missing userId"
// @Failure 404 {object} httpserver.ErrorResponse "Unknown user"
// @Router /api/user/preferences [get]
func (r *routes) handleGetPreferences(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(httpserver.ErrorResponse{
			Error: "userId parameter is required",
		})
	}

	pref, err := r.preferences.Get(userID)
	if errors.Is(err, repositories.ErrPreferenceNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(httpserver.ErrorResponse{
			Error: "User preferences not found",
		})
	}
	if err != nil {
		return err
	}

	return c.JSON(pref)
}

// SetUserPreferences godoc
// @Summary Replace user preferences
// @Description Stores the full preference record for a user, replacing any previous one.
// @Tags Preferences
// @Accept json
// @Produce json
// @Param request body PreferenceRequest true "Preference record"
// @Success 200 {object} models.UserPreference
// @Failure 400 {object} httpserver.ErrorResponse "Invalid input"
// @Router /api/user/preferences [post]
func (r *routes) handleSetPreferences(c *fiber.Ctx) error {
	var req PreferenceRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		r.l.Debug("rejected preference update", map[string]any{"reason": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(httpserver.ErrorResponse{Error: msgInvalidPreferences})
	}

	if err := r.validate.Struct(req); err != nil {
		r.l.Debug("rejected preference update", map[string]any{"reason": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(httpserver.ErrorResponse{Error: msgInvalidPreferences})
	}

	if r.strictUnits && !models.Units(req.Units).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(httpserver.ErrorResponse{Error: msgInvalidPreferences})
	}

	stored := r.preferences.Set(req.UserID, models.UserPreference{
		Notifications: *req.Notifications,
		Units:         req.Units,
	})

	r.l.Info("user preferences updated", map[string]any{
		"userId": req.UserID,
		"units":  stored.Units,
	})

	return c.JSON(stored)
}
