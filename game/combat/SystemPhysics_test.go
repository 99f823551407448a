package combat

import (
	"testing"
	"time"

	"github.com/bytearena/dogfight/common/utils/vector"
	"github.com/bytearena/dogfight/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubStepCount(t *testing.T) {
	assert.Equal(t, 1, getSubStepCount(0, 200))
	assert.Equal(t, 1, getSubStepCount(1.0/60, 0))
	assert.Equal(t, 2, getSubStepCount(1.0/60, 200))
	assert.Equal(t, 39, getSubStepCount(0.35, 200))
	assert.Equal(t, maxSubSteps, getSubStepCount(3600, 1e6))
}

func TestProjectileKeepsComposedSpeedInFlight(t *testing.T) {
	for _, dt := range []time.Duration{time.Second / 60, 350 * time.Millisecond} {
		t.Run(dt.String(), func(t *testing.T) {
			game := newTestGame()
			actorid := newArmedActor(game, vector.MakeNullVector3())

			game.Step(turnAt(0), fire(actorid))
			projectiles := game.GetProjectiles()
			require.Len(t, projectiles, 1)
			projectileid := projectiles[0].ID

			expectedSpeed := config.DefaultMuzzleSpeed / config.DefaultProjectileMass

			// stop firing so that no other projectile shares the spawn point
			now := time.Duration(0)
			for i := 0; i < 3; i++ {
				now += dt
				game.Step(turnAt(now), holdFire(actorid))

				projectile, ok := game.GetProjectile(projectileid)
				require.True(t, ok)

				assert.InDelta(t, expectedSpeed, projectile.Velocity.Mag(), 1e-9)
				assertVectorInDelta(t, vector.MakeVector3(0, 0, -expectedSpeed), projectile.Velocity)

				assert.InDelta(t, 0.0, projectile.Position.GetX(), 1e-9)
				assert.InDelta(t, -expectedSpeed*now.Seconds(), projectile.Position.GetZ(), 1e-6)
			}
		})
	}
}

func TestCatchUpProjectilesKeepComposedSpeed(t *testing.T) {
	game := newTestGame()
	actorid := newArmedActor(game, vector.MakeNullVector3())

	game.Step(turnAt(0), fire(actorid))
	game.Step(turnAt(350*time.Millisecond), nil)

	projectiles := game.GetProjectiles()
	require.Len(t, projectiles, 4)

	expectedSpeed := config.DefaultMuzzleSpeed / config.DefaultProjectileMass
	for _, projectile := range projectiles {
		assert.InDelta(t, expectedSpeed, projectile.Velocity.Mag(), 1e-9)
		assert.InDelta(t, -expectedSpeed, projectile.Velocity.GetZ(), 1e-9)
	}
}

func TestProjectileInheritsOwnerMomentumInFlight(t *testing.T) {
	game := newTestGame()
	actorid := newArmedActor(game, vector.MakeNullVector3())
	require.True(t, game.SetActorVelocity(actorid, vector.MakeVector3(5, 0, 0)))

	game.Step(turnAt(0), fire(actorid))
	game.Step(turnAt(time.Second/60), holdFire(actorid))

	projectiles := game.GetProjectiles()
	require.Len(t, projectiles, 1)
	assertVectorInDelta(t, vector.MakeVector3(50, 0, -200), projectiles[0].Velocity)
}
