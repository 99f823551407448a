package combat

import (
	"time"

	"github.com/bytearena/dogfight/common/utils"
	"github.com/bytearena/ecs"
)

// Sweep removes every projectile whose deadline is reached at now, releases
// its exclusion pair and destroys its physical body. It returns the ids of
// the removed projectiles; sweeping again with the same now removes nothing.
func (game *CombatGame) Sweep(now time.Duration) []ecs.EntityID {
	utils.Assert(now >= game.lastSweep, "Simulation clock went backwards between two sweeps")
	game.lastSweep = now

	entitiesToRemove := make([]*ecs.Entity, 0)
	removed := make([]ecs.EntityID, 0)

	for _, entityresult := range game.expiryView.Get() {
		expiryAspect := game.CastExpiry(entityresult.Components[game.expiryComponent])
		if !expiryAspect.IsExpired(now) {
			continue
		}

		ownedAspect := game.CastOwned(entityresult.Components[game.ownedComponent])
		game.exclusions.Release(ownedAspect.GetOwner(), entityresult.Entity.GetID())

		entitiesToRemove = append(entitiesToRemove, entityresult.Entity)
		removed = append(removed, entityresult.Entity.GetID())
	}

	if len(entitiesToRemove) > 0 {
		// the physical body destructor removes the bodies from the Box2D world
		game.manager.DisposeEntities(entitiesToRemove...)
	}

	game.projectilesExpired.Add(len(removed))

	return removed
}
