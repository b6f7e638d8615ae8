package handler

import (
	"github.com/gofiber/fiber/v2"

	"cjpowerhouse-backend/internal/model"
	"cjpowerhouse-backend/internal/repository"
)

type FeedbackHandler struct {
	repo repository.FeedbackRepository
}

func NewFeedbackHandler(repo repository.FeedbackRepository) *FeedbackHandler {
	return &FeedbackHandler{repo: repo}
}

type ReactionRequest struct {
	FeedbackID uint   `json:"feedback_id"`
	Reaction   string `json:"reaction"`
}

// React toggles a reaction: same type again removes it, a different type
// replaces it, none yet inserts it. Returns the updated counts and the
// user's current reaction.
func (h *FeedbackHandler) React(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	var req ReactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if req.FeedbackID == 0 || req.Reaction == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Feedback ID and reaction are required"})
	}
	if !model.IsValidReaction(req.Reaction) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid reaction type"})
	}

	existing, err := h.repo.GetReaction(req.FeedbackID, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to look up reaction"})
	}

	switch {
	case existing == nil:
		err = h.repo.AddReaction(req.FeedbackID, userID, req.Reaction)
	case existing.ReactionType == req.Reaction:
		err = h.repo.RemoveReaction(req.FeedbackID, userID)
	default:
		err = h.repo.UpdateReaction(req.FeedbackID, userID, req.Reaction)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to save reaction"})
	}

	counts, err := h.repo.ReactionCounts(req.FeedbackID)
	if err != nil {
		counts = map[string]int64{}
	}

	var current interface{}
	if updated, err := h.repo.GetReaction(req.FeedbackID, userID); err == nil && updated != nil {
		current = updated.ReactionType
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"user_reaction": current,
		"counts":        counts,
	})
}
