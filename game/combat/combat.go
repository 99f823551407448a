package combat

import (
	json "encoding/json"
	"time"

	"github.com/ByteArena/box2d"
	"github.com/bytearena/dogfight/common/influxdb"
	commontypes "github.com/bytearena/dogfight/common/types"
	"github.com/bytearena/dogfight/common/utils"
	"github.com/bytearena/dogfight/common/utils/vector"
	"github.com/bytearena/dogfight/config"
	dogfightutils "github.com/bytearena/dogfight/utils"
	"github.com/bytearena/ecs"
	uuid "github.com/satori/go.uuid"
)

// CombatGame drives the combat core of one simulation, one tick at a time.
// It is not safe for concurrent use; only the counters may be read from another goroutine.
type CombatGame struct {
	id string

	lastStep  time.Duration
	lastSweep time.Duration
	tick      uint32

	projectileMass     float64
	projectileLifetime time.Duration
	projectileRadius   float64

	manager *ecs.Manager

	physicalBodyComponent *ecs.Component
	renderComponent       *ecs.Component
	weaponComponent       *ecs.Component
	ownedComponent        *ecs.Component
	expiryComponent       *ecs.Component

	physicalBodyView *ecs.View
	renderableView   *ecs.View
	shootingView     *ecs.View
	expiryView       *ecs.View

	PhysicalWorld     *box2d.B2World
	exclusions        *exclusionRegistry
	collisionListener *collisionListener
	lastCollisions    []Collision

	shotsFired         *influxdb.Counter
	projectilesExpired *influxdb.Counter
}

func NewCombatGame(conf config.CombatConfig) *CombatGame {
	utils.Assert(conf.Validate() == nil, "Invalid combat configuration")

	manager := ecs.NewManager()

	game := &CombatGame{
		id: uuid.NewV4().String(),

		projectileMass:     conf.Projectile.Mass,
		projectileLifetime: conf.GetProjectileLifetime(),
		projectileRadius:   conf.Projectile.Radius,

		manager: manager,

		physicalBodyComponent: manager.NewComponent(),
		renderComponent:       manager.NewComponent(),
		weaponComponent:       manager.NewComponent(),
		ownedComponent:        manager.NewComponent(),
		expiryComponent:       manager.NewComponent(),

		exclusions:        newExclusionRegistry(),
		collisionListener: newCollisionListener(),
		lastCollisions:    make([]Collision, 0),

		shotsFired:         influxdb.NewCounter(),
		projectilesExpired: influxdb.NewCounter(),
	}

	gravity := box2d.MakeB2Vec2(0.0, 0.0) // gravity 0: the simulation is seen from the top
	world := box2d.MakeB2World(gravity)
	game.PhysicalWorld = &world

	game.physicalBodyView = manager.CreateView(
		game.physicalBodyComponent,
	)

	game.renderableView = manager.CreateView(
		game.renderComponent,
		game.physicalBodyComponent,
	)

	game.shootingView = manager.CreateView(
		game.weaponComponent,
		game.physicalBodyComponent,
	)

	game.expiryView = manager.CreateView(
		game.expiryComponent,
		game.ownedComponent,
		game.physicalBodyComponent,
	)

	game.physicalBodyComponent.SetDestructor(func(entity *ecs.Entity, data interface{}) {
		physicalAspect := data.(*PhysicalBody)
		game.PhysicalWorld.DestroyBody(physicalAspect.GetBody())
	})

	game.PhysicalWorld.SetContactListener(game.collisionListener)
	game.PhysicalWorld.SetContactFilter(newCollisionFilter(game.exclusions))

	return game
}

func (game CombatGame) getEntity(id ecs.EntityID, tagelements ...interface{}) *ecs.QueryResult {
	return game.manager.GetEntityByID(id, tagelements...)
}

// <GameInterface>

func (game *CombatGame) ImplementsGameInterface() {}

func (game *CombatGame) GetID() string {
	return game.id
}

// Step runs one simulation tick at the simulation time carried by turn:
// intents, shooting (spawn with exclusion), physics, contacts, expiry sweep.
func (game *CombatGame) Step(turn dogfightutils.Tickturn, intents []commontypes.FiringIntent) {
	now := turn.GetNow()
	utils.Assert(now >= game.lastStep, "Simulation clock went backwards between two steps")

	dt := now - game.lastStep
	game.lastStep = now
	game.tick = turn.GetSeq()

	systemIntents(game, now, intents)
	systemShooting(game, now)
	systemPhysics(game, dt)
	game.lastCollisions = systemCollisions(game)
	game.Sweep(now)
}

// GetVizFrameJson serializes every renderable body for a visualisation collaborator.
func (game *CombatGame) GetVizFrameJson() []byte {
	msg := commontypes.VizMessage{
		GameID:  game.id,
		Tick:    game.tick,
		Time:    game.lastStep.Seconds(),
		Objects: []commontypes.VizMessageObject{},
	}

	for _, entityresult := range game.renderableView.Get() {

		renderAspect := game.CastRender(entityresult.Components[game.renderComponent])
		physicalBodyAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		msg.Objects = append(msg.Objects, commontypes.VizMessageObject{
			Id:          entityresult.Entity.GetID().String(),
			Type:        renderAspect.GetType(),
			Position:    physicalBodyAspect.GetPosition(),
			Velocity:    physicalBodyAspect.GetVelocity(),
			Radius:      physicalBodyAspect.GetRadius(),
			Orientation: physicalBodyAspect.GetYaw(),
		})
	}

	res, err := json.Marshal(msg)
	utils.Check(err, "Could not serialize the visualisation frame")

	return res
}

// </GameInterface>

// ProjectileSnapshot is a read-only view of a live projectile.
type ProjectileSnapshot struct {
	ID       ecs.EntityID
	Owner    ecs.EntityID
	Position vector.Vector3
	Velocity vector.Vector3
	Expiry   time.Duration
}

func (game *CombatGame) GetProjectiles() []ProjectileSnapshot {
	res := make([]ProjectileSnapshot, 0)

	for _, entityresult := range game.expiryView.Get() {
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		ownedAspect := game.CastOwned(entityresult.Components[game.ownedComponent])
		expiryAspect := game.CastExpiry(entityresult.Components[game.expiryComponent])

		res = append(res, ProjectileSnapshot{
			ID:       entityresult.Entity.GetID(),
			Owner:    ownedAspect.GetOwner(),
			Position: physicalAspect.GetPosition(),
			Velocity: physicalAspect.GetVelocity(),
			Expiry:   expiryAspect.GetDeadline(),
		})
	}

	return res
}

func (game *CombatGame) GetProjectile(id ecs.EntityID) (ProjectileSnapshot, bool) {
	for _, snapshot := range game.GetProjectiles() {
		if snapshot.ID == id {
			return snapshot, true
		}
	}

	return ProjectileSnapshot{}, false
}

// IsExcluded reports whether contacts between a and b are suppressed.
func (game *CombatGame) IsExcluded(a ecs.EntityID, b ecs.EntityID) bool {
	return game.exclusions.IsExcluded(a, b)
}

// GetExclusionCount returns the number of registered exclusion pairs.
func (game *CombatGame) GetExclusionCount() int {
	return game.exclusions.Len()
}

// GetCollisions returns the contacts that began during the last step.
func (game *CombatGame) GetCollisions() []Collision {
	return game.lastCollisions
}

func (game *CombatGame) GetLiveProjectileCount() int {
	return len(game.expiryView.Get())
}

type Stats struct {
	ShotsFired         int
	ProjectilesExpired int
}

// GetStats returns the counters accumulated since the previous call.
// It only touches atomic counters and may be called from a reporting goroutine.
func (game *CombatGame) GetStats() Stats {
	return Stats{
		ShotsFired:         game.shotsFired.GetAndReset(),
		ProjectilesExpired: game.projectilesExpired.GetAndReset(),
	}
}

// GetTotals returns the counters accumulated since the creation of the game.
func (game *CombatGame) GetTotals() Stats {
	return Stats{
		ShotsFired:         game.shotsFired.GetTotal(),
		ProjectilesExpired: game.projectilesExpired.GetTotal(),
	}
}
