package combat

import (
	"time"

	"github.com/ByteArena/box2d"
	commontypes "github.com/bytearena/dogfight/common/types"
	"github.com/bytearena/dogfight/common/utils"
	"github.com/bytearena/dogfight/common/utils/vector"
	"github.com/bytearena/ecs"
)

const actorRadius = 0.5

// NewEntityActor creates a vehicle; it carries no weapon until AttachWeapon is called.
func (game *CombatGame) NewEntityActor(position vector.Vector3, yaw float64, mass float64) *ecs.Entity {
	utils.Assert(position.IsFinite(), "Actor position must be finite")
	utils.Assert(mass > 0, "Actor mass must be positive")

	actor := game.manager.NewEntity()

	bodydef := box2d.MakeB2BodyDef()
	bodydef.Position = position.ToB2Vec2()
	bodydef.Angle = yaw
	bodydef.Type = box2d.B2BodyType.B2_dynamicBody
	bodydef.AllowSleep = false
	bodydef.FixedRotation = true

	body := game.PhysicalWorld.CreateBody(&bodydef)

	shape := box2d.MakeB2CircleShape()
	shape.SetRadius(actorRadius)

	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = &shape
	fixturedef.Density = 1.0
	body.CreateFixtureFromDef(&fixturedef)
	body.SetUserData(commontypes.MakePhysicalBodyDescriptor(
		commontypes.PhysicalBodyDescriptorType.Actor,
		actor.GetID(),
	))
	body.SetBullet(false)

	physicalAspect := &PhysicalBody{
		body:   body,
		height: position.GetY(),
	}
	physicalAspect.setMass(mass)

	return actor.
		AddComponent(game.physicalBodyComponent, physicalAspect).
		AddComponent(game.renderComponent, &Render{
			type_: "actor",
		})
}

// AttachWeapon installs a weapon firing at the given rate on an existing actor.
// The weapon is a component of the actor entity, and is disposed with it.
func (game *CombatGame) AttachWeapon(actorid ecs.EntityID, rpm float64, muzzleSpeed float64, now time.Duration) *Weapon {
	entityresult := game.getEntity(actorid, game.physicalBodyComponent)
	utils.Assert(entityresult != nil, "Cannot attach a weapon to unknown actor "+actorid.String())

	weapon := NewWeaponWithRoundsPerMinute(rpm, muzzleSpeed, now)
	entityresult.Entity.AddComponent(game.weaponComponent, weapon)

	utils.DebugWithContext("combat", "Weapon attached", utils.Context{
		"actor":    actorid.String(),
		"cooldown": weapon.GetCooldown().String(),
	})

	return weapon
}

// RemoveActor disposes an actor and its weapon.
// Projectiles it fired stay in flight, still excluded against its id, until they expire.
func (game *CombatGame) RemoveActor(actorid ecs.EntityID) bool {
	entityresult := game.getEntity(actorid, game.physicalBodyComponent)
	if entityresult == nil {
		return false
	}

	game.manager.DisposeEntities(entityresult.Entity)
	return true
}

// SetActorVelocity is the entry point of the movement collaborator.
func (game *CombatGame) SetActorVelocity(actorid ecs.EntityID, velocity vector.Vector3) bool {
	entityresult := game.getEntity(actorid, game.physicalBodyComponent)
	if entityresult == nil {
		return false
	}

	game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent]).SetVelocity(velocity)
	return true
}

// SetActorYaw is the entry point of the steering collaborator.
func (game *CombatGame) SetActorYaw(actorid ecs.EntityID, yaw float64) bool {
	entityresult := game.getEntity(actorid, game.physicalBodyComponent)
	if entityresult == nil {
		return false
	}

	game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent]).SetYaw(yaw)
	return true
}

func (game *CombatGame) GetWeapon(actorid ecs.EntityID) *Weapon {
	entityresult := game.getEntity(actorid, game.weaponComponent)
	if entityresult == nil {
		return nil
	}

	return game.CastWeapon(entityresult.Components[game.weaponComponent])
}
