package reaction

import (
	"github.com/chatterhq/chatter-backend/internal/apps/posts"
	"github.com/chatterhq/chatter-backend/internal/config"
	"github.com/chatterhq/chatter-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plugin implements the apps.Plugin interface for the reaction module.
// It leans on the posts module for target-existence validation.
type Plugin struct {
	svc   *Service
	posts *posts.Service
}

func New(svc *Service, postSvc *posts.Service) *Plugin {
	return &Plugin{svc: svc, posts: postSvc}
}

func (p *Plugin) ID() string { return "reactions" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{&Reaction{}}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	mw := NewMiddleware(p.svc)
	postMW := posts.NewMiddleware(p.posts)
	handler := NewHandler(p.svc)
	auth := middleware.JWTProtected(cfg)

	router.Get("/reactions", handler.ListAll, postMW.RequirePostQuery, handler.ListByPost)
	router.Post("/reactions/:postId", auth, postMW.RequirePost, mw.RequireValidSymbol, mw.RequireNoExisting, handler.Create)
	router.Put("/reactions/:postId", auth, postMW.RequirePost, mw.RequireOwn, mw.RequireValidSymbol, handler.Update)
	router.Delete("/reactions/:postId", auth, postMW.RequirePost, mw.RequireOwn, handler.Delete)
}

// DeleteAllByOwner implements apps.OwnerCleanup.
func (p *Plugin) DeleteAllByOwner(ownerID uuid.UUID) error {
	return p.svc.DeleteAllByOwner(ownerID)
}
