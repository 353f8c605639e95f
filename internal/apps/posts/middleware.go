package posts

import (
	"strings"

	"github.com/chatterhq/chatter-backend/internal/middleware"
	"github.com/chatterhq/chatter-backend/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Middleware holds the validator chain pieces for post routes. Each
// validator either calls c.Next() or writes the terminal error response.
type Middleware struct {
	svc *Service
}

func NewMiddleware(svc *Service) *Middleware {
	return &Middleware{svc: svc}
}

// RequireQueryAuthor checks that the author query parameter names an
// existing account.
func (m *Middleware) RequireQueryAuthor(c *fiber.Ctx) error {
	return middleware.RequireQueryUser(m.svc.users, "author")(c)
}

// RequirePost checks that the postId path parameter is a well-formed ID
// naming an existing post.
func (m *Middleware) RequirePost(c *fiber.Ctx) error {
	return m.requirePostID(c, c.Params("postId"))
}

// RequirePostQuery is RequirePost for the postId query parameter; the
// reaction module chains it in front of its list-by-post branch.
func (m *Middleware) RequirePostQuery(c *fiber.Ctx) error {
	return m.requirePostID(c, c.Query("postId"))
}

func (m *Middleware) requirePostID(c *fiber.Ctx, raw string) error {
	id, err := uuid.Parse(raw)
	if err == nil {
		post, ferr := m.svc.FindByID(id)
		if ferr != nil {
			return ferr
		}
		if post != nil {
			return c.Next()
		}
	}

	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": fiber.Map{
			"postNotFound": "Post with post ID " + raw + " does not exist.",
		},
	})
}

// RequireAuthor checks that the requester owns the post named by the
// postId path parameter.
func (m *Middleware) RequireAuthor(c *fiber.Ctx) error {
	id, _ := uuid.Parse(c.Params("postId"))
	post, err := m.svc.FindByID(id)
	if err != nil {
		return err
	}

	userID, err := session.UserID(c)
	if err != nil || post == nil || post.AuthorID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Cannot modify other users' posts.",
		})
	}

	return c.Next()
}

// RequireValidContent checks the content field: non-blank after
// trimming, at most 140 characters.
func (m *Middleware) RequireValidContent(c *fiber.Ctx) error {
	var body struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body.",
		})
	}

	if strings.TrimSpace(body.Content) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Post content must be at least one character long.",
		})
	}
	if len(body.Content) > 140 {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
			"error": "Post content must be no more than 140 characters.",
		})
	}

	return c.Next()
}
