package combat

import (
	"time"

	"github.com/ByteArena/box2d"
	commontypes "github.com/bytearena/dogfight/common/types"
	"github.com/bytearena/dogfight/common/utils"
	"github.com/bytearena/dogfight/common/utils/vector"
	"github.com/bytearena/ecs"
)

// NewEntityProjectile spawns a projectile at the pose of its owner and, in
// the same operation, excludes the (owner, projectile) pair from contact
// resolution. No physics step can ever see the projectile without its exclusion.
func (game *CombatGame) NewEntityProjectile(ownerid ecs.EntityID, transform Transform, velocity vector.Vector3, now time.Duration) *ecs.Entity {
	utils.Assert(transform.Position.IsFinite(), "Projectile spawn position must be finite")
	utils.Assert(velocity.IsFinite(), "Projectile velocity must be finite")

	projectile := game.manager.NewEntity()

	bodydef := box2d.MakeB2BodyDef()
	bodydef.Type = box2d.B2BodyType.B2_dynamicBody
	bodydef.AllowSleep = true
	bodydef.FixedRotation = true

	bodydef.Position = transform.Position.ToB2Vec2()
	bodydef.Angle = transform.Yaw()
	bodydef.LinearVelocity = velocity.ToB2Vec2()

	body := game.PhysicalWorld.CreateBody(&bodydef)
	body.SetLinearDamping(0.0) // no aerodynamic drag

	shape := box2d.MakeB2CircleShape()
	shape.SetRadius(game.projectileRadius)

	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = &shape
	fixturedef.Density = 1.0
	body.CreateFixtureFromDef(&fixturedef)
	body.SetUserData(commontypes.MakePhysicalBodyDescriptor(
		commontypes.PhysicalBodyDescriptorType.Projectile,
		projectile.GetID(),
	))
	body.SetBullet(true)

	physicalAspect := &PhysicalBody{
		body:   body,
		height: transform.Position.GetY(),
	}
	physicalAspect.setMass(game.projectileMass)

	game.exclusions.Exclude(ownerid, projectile.GetID())

	return projectile.
		AddComponent(game.physicalBodyComponent, physicalAspect).
		AddComponent(game.renderComponent, &Render{
			type_: "projectile",
		}).
		AddComponent(game.ownedComponent, &Owned{owner: ownerid}).
		AddComponent(game.expiryComponent, NewExpiry(now, game.projectileLifetime))
}
