package combat

import (
	"math"
	"time"

	"github.com/ByteArena/box2d"
)

const (
	velocityIterations = 8 // higher improves stability; default 8 in testbed
	positionIterations = 3 // higher improve overlap resolution; default 3 in testbed

	// fraction of box2d.B2_maxTranslation a body may cover in one sub-step
	subStepTranslation = 0.9 * box2d.B2_maxTranslation
	maxSubSteps        = 4096
)

// systemPhysics integrates every body over dt and resolves contacts.
// Exclusions are enforced by the contact filter during this step.
//
// Box2D clamps the translation of a body to B2_maxTranslation per step and
// writes the clamped velocity back, so dt is split into sub-steps short
// enough for the fastest body to stay under the limit.
func systemPhysics(game *CombatGame, dt time.Duration) {
	subSteps := getSubStepCount(dt.Seconds(), getMaxSpeed(game))
	h := dt.Seconds() / float64(subSteps)

	for i := 0; i < subSteps; i++ {
		game.PhysicalWorld.Step(
			h,
			velocityIterations,
			positionIterations,
		)
	}
}

func getMaxSpeed(game *CombatGame) float64 {
	maxSpeed := 0.0

	for _, entityresult := range game.physicalBodyView.Get() {
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		if speed := physicalAspect.GetVelocity().Mag(); speed > maxSpeed {
			maxSpeed = speed
		}
	}

	return maxSpeed
}

// getSubStepCount is at least 1, so that a null dt still runs the contact detection.
func getSubStepCount(dt float64, maxSpeed float64) int {
	subSteps := int(math.Ceil(dt * maxSpeed / subStepTranslation))

	if subSteps < 1 {
		return 1
	}

	if subSteps > maxSubSteps {
		// beyond this the fastest bodies are slowed down by Box2D
		return maxSubSteps
	}

	return subSteps
}
