package middleware

import (
	"strings"

	"github.com/chatterhq/chatter-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// RequireQueryUser checks that the username in the given query parameter
// resolves to an existing account. Resource modules chain it in front of
// their list-by-owner handler branches.
func RequireQueryUser(users *services.UserService, param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := c.Query(param)
		if strings.TrimSpace(username) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Provided author username must be nonempty.",
			})
		}

		user, err := users.FindByUsername(username)
		if err != nil {
			return err
		}
		if user == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fiber.Map{
					"userNotFound": "A user with username " + username + " does not exist.",
				},
			})
		}

		return c.Next()
	}
}
