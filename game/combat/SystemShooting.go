package combat

import (
	"time"
)

func systemShooting(game *CombatGame, now time.Duration) int {
	fired := 0

	for _, entityresult := range game.shootingView.Get() {
		weaponAspect := game.CastWeapon(entityresult.Components[game.weaponComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		shots := weaponAspect.Tick(now)
		if shots == 0 {
			continue
		}

		// every projectile of the tick is fired from the same spawn-instant state
		ownerid := entityresult.Entity.GetID()
		transform := physicalAspect.GetTransform()
		velocity := ComposeVelocity(
			transform.Forward(),
			weaponAspect.GetMuzzleSpeed(),
			game.projectileMass,
			physicalAspect.GetVelocity(),
			physicalAspect.GetMass(),
		)

		for i := 0; i < shots; i++ {
			game.NewEntityProjectile(ownerid, transform, velocity, now)
		}

		fired += shots
	}

	game.shotsFired.Add(fired)

	return fired
}
