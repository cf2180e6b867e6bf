package uuidgen

import (
	"github.com/google/uuid"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/contract"
)

// Generator hands out random (v4) ids for galleries, media, staff and engagements.
type Generator struct{}

// NewGenerator creates a new UUID generator.
func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

// NewUUID generates a new UUID.
func (g *Generator) NewUUID() string {
	return uuid.New().String()
}

var _ contract.IUUIDGenerator = (*Generator)(nil)
