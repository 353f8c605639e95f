package display

import (
	"github.com/chatterhq/chatter-backend/internal/config"
	"github.com/chatterhq/chatter-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plugin implements the apps.Plugin interface for the display module.
type Plugin struct {
	svc *Service
}

func New(svc *Service) *Plugin {
	return &Plugin{svc: svc}
}

func (p *Plugin) ID() string { return "displays" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{&Display{}}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	mw := NewMiddleware(p.svc)
	handler := NewHandler(p.svc)
	auth := middleware.JWTProtected(cfg)

	router.Get("/displays", handler.ListAll, mw.RequireQueryAuthor, handler.GetByAuthor)
	router.Put("/displays/:displayId", auth, mw.RequireDisplay, mw.RequireOwner, mw.RequireValidType, handler.Update)
}

// SetupForOwner implements apps.OwnerSetup: every new account gets a
// default display preference.
func (p *Plugin) SetupForOwner(ownerID uuid.UUID) error {
	_, err := p.svc.Create(ownerID)
	return err
}

// DeleteAllByOwner implements apps.OwnerCleanup.
func (p *Plugin) DeleteAllByOwner(ownerID uuid.UUID) error {
	return p.svc.DeleteAllByOwner(ownerID)
}
