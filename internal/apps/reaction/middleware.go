package reaction

import (
	"strings"

	"github.com/chatterhq/chatter-backend/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Middleware holds the validator chain pieces for reaction routes.
// Post existence is checked by the posts module's validators, chained
// in front of these.
type Middleware struct {
	svc *Service
}

func NewMiddleware(svc *Service) *Middleware {
	return &Middleware{svc: svc}
}

// RequireValidSymbol checks the symbol body field against the fixed set
// of accepted values, case-insensitively.
func (m *Middleware) RequireValidSymbol(c *fiber.Ctx) error {
	var body struct {
		Symbol string `json:"symbol"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body.",
		})
	}

	if !ValidSymbol(strings.ToLower(body.Symbol)) {
		return c.Status(fiber.StatusNotAcceptable).JSON(fiber.Map{
			"error": "Reaction symbol must be either `heart`, `like`, `dislike`.",
		})
	}

	return c.Next()
}

// RequireNoExisting checks that the requester has no reaction on the
// post yet. This is a pre-check, not an atomic guard; two concurrent
// creates can still both pass it.
func (m *Middleware) RequireNoExisting(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You must be logged in to complete this action.",
		})
	}

	postID, _ := uuid.Parse(c.Params("postId"))
	existing, err := m.svc.FindByOwnerAndPost(userID, postID)
	if err != nil {
		return err
	}
	if existing != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Cannot have more than one reaction per post per user. Please modify your reaction.",
		})
	}

	return c.Next()
}

// RequireOwn checks that the requester already has a reaction on the
// post, for updates and deletes.
func (m *Middleware) RequireOwn(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You must be logged in to complete this action.",
		})
	}

	postID, _ := uuid.Parse(c.Params("postId"))
	existing, err := m.svc.FindByOwnerAndPost(userID, postID)
	if err != nil {
		return err
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fiber.Map{
				"reactionNotFound": "You do not have a reaction on post with post ID " + c.Params("postId") + ".",
			},
		})
	}

	return c.Next()
}
