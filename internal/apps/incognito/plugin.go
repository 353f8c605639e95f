package incognito

import (
	"github.com/chatterhq/chatter-backend/internal/config"
	"github.com/chatterhq/chatter-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plugin implements the apps.Plugin interface for the incognito module.
type Plugin struct {
	svc *Service
}

func New(svc *Service) *Plugin {
	return &Plugin{svc: svc}
}

func (p *Plugin) ID() string { return "incognitos" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{&Incognito{}}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	mw := NewMiddleware(p.svc)
	handler := NewHandler(p.svc)
	auth := middleware.JWTProtected(cfg)

	router.Get("/incognitos", auth, handler.ListOwn)
	router.Post("/incognitos", auth, handler.Create)
	router.Delete("/incognitos", auth, mw.RequireAnySessions,
		handler.DeleteAll, mw.RequireQueryIncognito, mw.RequireOwner, handler.DeleteOne)
}

// DeleteAllByOwner implements apps.OwnerCleanup.
func (p *Plugin) DeleteAllByOwner(ownerID uuid.UUID) error {
	return p.svc.DeleteAllByOwner(ownerID)
}
