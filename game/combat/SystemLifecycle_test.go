package combat

import (
	"testing"
	"time"

	"github.com/bytearena/dogfight/common/utils/vector"
	"pgregory.net/rapid"
)

// A projectile spawned at t0 is live for every now < t0+lifetime and gone for every now >= t0+lifetime.
func TestProjectileLifetimeBoundaryProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		spawn := time.Duration(rapid.Int64Range(0, int64(time.Minute)).Draw(t, "spawnNs"))
		offset := time.Duration(rapid.Int64Range(-int64(2*time.Second), int64(2*time.Second)).Draw(t, "offsetNs"))

		game := newTestGame()
		owner := game.NewEntityActor(vector.MakeNullVector3(), 0, 1)
		projectile := game.NewEntityProjectile(owner.GetID(), MakeTransform(vector.MakeNullVector3(), 0), vector.MakeVector3(0, 0, -200), spawn)

		deadline := spawn + game.projectileLifetime
		now := deadline + offset
		if now < 0 {
			now = 0
		}

		game.Sweep(now)
		_, live := game.GetProjectile(projectile.GetID())

		if live != (now < deadline) {
			t.Fatalf("spawned at %s, swept at %s: live=%v", spawn, now, live)
		}

		if live != game.IsExcluded(owner.GetID(), projectile.GetID()) {
			t.Fatalf("exclusion pair out of sync with the projectile (live=%v)", live)
		}
	})
}
