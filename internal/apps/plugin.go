package apps

import (
	"github.com/chatterhq/chatter-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plugin defines the interface every resource module implements.
type Plugin interface {
	// ID returns the unique module identifier.
	ID() string

	// Models returns the list of GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts module routes on the given Fiber group.
	// The group is already prefixed with /api.
	RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}

// OwnerSetup is implemented by modules that provision a record for every
// new account. The auth service calls it right after registration.
type OwnerSetup interface {
	SetupForOwner(ownerID uuid.UUID) error
}

// OwnerCleanup is implemented by modules whose records must go away with
// their owner. The auth service calls every registered cleanup when an
// account is deleted; no module deletes another module's rows on its own.
type OwnerCleanup interface {
	DeleteAllByOwner(ownerID uuid.UUID) error
}
