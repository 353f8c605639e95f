package middleware

import (
	"github.com/chatterhq/chatter-backend/internal/config"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JWTProtected rejects requests without a valid access token. The error
// body matches the validator-chain convention rather than the dto
// envelope so clients see one error shape across the resource routes.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You must be logged in to complete this action.",
			})
		},
	})
}
