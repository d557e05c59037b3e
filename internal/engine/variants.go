package engine

import (
	"github.com/vovakirdan/gridwalk/internal/core"
	"github.com/vovakirdan/gridwalk/internal/registry"
)

// Variant IDs.
const (
	VariantChase = "chase"
	VariantWalk  = "walk"
)

func init() {
	registry.Register(registry.Variant{
		ID:       VariantChase,
		Title:    "Chase (catch the target, dodge 32 enemies)",
		Features: core.Features{Target: true, Enemies: true},
	})
	registry.Register(registry.Variant{
		ID:    VariantWalk,
		Title: "Walk (player only, never ends)",
	})
}
