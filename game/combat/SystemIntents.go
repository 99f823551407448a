package combat

import (
	"time"

	"github.com/bytearena/dogfight/common/types"
)

// systemIntents applies the trigger states sampled by the input collaborator for this tick.
// Intents for unknown or unarmed actors are ignored.
func systemIntents(game *CombatGame, now time.Duration, intents []types.FiringIntent) {
	for _, intent := range intents {
		weapon := game.GetWeapon(intent.ActorID)
		if weapon == nil {
			continue
		}

		if intent.Firing {
			weapon.StartFiring(now)
		} else {
			weapon.StopFiring()
		}
	}
}
