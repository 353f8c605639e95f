package posts

import (
	"github.com/chatterhq/chatter-backend/internal/config"
	"github.com/chatterhq/chatter-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plugin implements the apps.Plugin interface for the posts module.
type Plugin struct {
	svc *Service
}

func New(svc *Service) *Plugin {
	return &Plugin{svc: svc}
}

func (p *Plugin) ID() string { return "posts" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{&Post{}}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	mw := NewMiddleware(p.svc)
	handler := NewHandler(p.svc)
	auth := middleware.JWTProtected(cfg)

	router.Get("/posts", handler.ListAll, mw.RequireQueryAuthor, handler.ListByAuthor)
	router.Post("/posts", auth, mw.RequireValidContent, handler.Create)
	router.Put("/posts/:postId", auth, mw.RequirePost, mw.RequireAuthor, mw.RequireValidContent, handler.Update)
	router.Delete("/posts/:postId", auth, mw.RequirePost, mw.RequireAuthor, handler.Delete)
}

// DeleteAllByOwner implements apps.OwnerCleanup.
func (p *Plugin) DeleteAllByOwner(ownerID uuid.UUID) error {
	return p.svc.DeleteAllByOwner(ownerID)
}
