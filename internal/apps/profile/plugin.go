package profile

import (
	"github.com/chatterhq/chatter-backend/internal/config"
	"github.com/chatterhq/chatter-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plugin implements the apps.Plugin interface for the profile module.
type Plugin struct {
	svc *Service
}

func New(svc *Service) *Plugin {
	return &Plugin{svc: svc}
}

func (p *Plugin) ID() string { return "profiles" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{&Profile{}}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	mw := NewMiddleware(p.svc)
	handler := NewHandler(p.svc)
	auth := middleware.JWTProtected(cfg)

	router.Get("/profiles", handler.ListAll, mw.RequireQueryUser, handler.ListByUser)
	router.Post("/profiles", auth, mw.RequireValidHandle, mw.RequireValidType, handler.Create)
	router.Put("/profiles/:handle", auth, mw.RequireHandle, mw.RequireOwnerByHandle, mw.RequireValidHandle, handler.Update)
	router.Delete("/profiles/:profileId", auth, mw.RequireProfile, mw.RequireOwner, handler.Delete)
}

// DeleteAllByOwner implements apps.OwnerCleanup.
func (p *Plugin) DeleteAllByOwner(ownerID uuid.UUID) error {
	return p.svc.DeleteAllByOwner(ownerID)
}
