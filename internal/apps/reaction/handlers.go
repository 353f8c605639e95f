package reaction

import (
	"github.com/chatterhq/chatter-backend/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handler terminates the reaction routes once the validator chain
// passes.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// ListAll handles GET /api/reactions when no postId query parameter is
// present; otherwise it defers to the list-by-post branch.
func (h *Handler) ListAll(c *fiber.Ctx) error {
	if c.Query("postId") != "" {
		return c.Next()
	}

	list, err := h.svc.ListAll()
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(PresentAll(list))
}

// ListByPost handles GET /api/reactions?postId=<id>. The post's
// existence is guaranteed by the preceding validator.
func (h *Handler) ListByPost(c *fiber.Ctx) error {
	postID, _ := uuid.Parse(c.Query("postId"))
	list, err := h.svc.ListByPost(postID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(PresentAll(list))
}

// Create handles POST /api/reactions/:postId.
func (h *Handler) Create(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You must be logged in to complete this action.",
		})
	}

	var body struct {
		Symbol string `json:"symbol"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body.",
		})
	}

	postID, _ := uuid.Parse(c.Params("postId"))
	r, err := h.svc.Create(userID, postID, body.Symbol)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Your reaction was created successfully.",
		"reaction": Present(r),
	})
}

// Update handles PUT /api/reactions/:postId, replacing the symbol on
// the requester's reaction.
func (h *Handler) Update(c *fiber.Ctx) error {
	userID, _ := session.UserID(c)

	var body struct {
		Symbol string `json:"symbol"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body.",
		})
	}

	postID, _ := uuid.Parse(c.Params("postId"))
	r, err := h.svc.UpdateSymbol(userID, postID, body.Symbol)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Your reaction was updated successfully.",
		"reaction": Present(r),
	})
}

// Delete handles DELETE /api/reactions/:postId.
func (h *Handler) Delete(c *fiber.Ctx) error {
	userID, _ := session.UserID(c)
	postID, _ := uuid.Parse(c.Params("postId"))
	if _, err := h.svc.Delete(userID, postID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Your reaction was deleted successfully.",
	})
}
