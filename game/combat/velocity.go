package combat

import (
	"github.com/bytearena/dogfight/common/utils"
	"github.com/bytearena/dogfight/common/utils/vector"
)

// ComposeVelocity returns the initial velocity of a projectile.
//
// Both the muzzle speed and the momentum of the firer are imparted to the
// (much lighter) projectile, hence both terms are scaled by 1/projectileMass:
//
//	fireDirection*(muzzleSpeed/projectileMass) + ownerVelocity*(ownerMass/projectileMass)
func ComposeVelocity(fireDirection vector.Vector3, muzzleSpeed float64, projectileMass float64, ownerVelocity vector.Vector3, ownerMass float64) vector.Vector3 {
	utils.Assert(projectileMass > 0, "Projectile mass must be positive")

	muzzleVelocity := fireDirection.Scale(muzzleSpeed / projectileMass)
	inheritedVelocity := ownerVelocity.Scale(ownerMass / projectileMass)

	velocity := muzzleVelocity.Add(inheritedVelocity)
	utils.Assert(velocity.IsFinite(), "Projectile velocity is not finite; firer state is corrupted")

	return velocity
}
