package posts

import (
	"github.com/chatterhq/chatter-backend/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handler terminates the post routes once the validator chain passes.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// ListAll handles GET /api/posts when no author query parameter is
// present; otherwise it defers to the list-by-author branch.
func (h *Handler) ListAll(c *fiber.Ctx) error {
	if c.Query("author") != "" {
		return c.Next()
	}

	list, err := h.svc.ListAll()
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(PresentAll(list))
}

// ListByAuthor handles GET /api/posts?author=username. The author's
// existence is guaranteed by the preceding validator.
func (h *Handler) ListByAuthor(c *fiber.Ctx) error {
	list, err := h.svc.ListByAuthorUsername(c.Query("author"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(PresentAll(list))
}

// Create handles POST /api/posts.
func (h *Handler) Create(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You must be logged in to complete this action.",
		})
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body.",
		})
	}

	post, err := h.svc.Create(userID, body.Content)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Your post was created successfully.",
		"post":    Present(post),
	})
}

// Update handles PUT /api/posts/:postId.
func (h *Handler) Update(c *fiber.Ctx) error {
	id, _ := uuid.Parse(c.Params("postId"))

	var body struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body.",
		})
	}

	post, err := h.svc.Update(id, body.Content)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Your post was updated successfully.",
		"post":    Present(post),
	})
}

// Delete handles DELETE /api/posts/:postId.
func (h *Handler) Delete(c *fiber.Ctx) error {
	id, _ := uuid.Parse(c.Params("postId"))
	if _, err := h.svc.Delete(id); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Your post was deleted successfully.",
	})
}
