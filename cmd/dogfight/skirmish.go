package main

import (
	"math"
	"time"

	commontypes "github.com/bytearena/dogfight/common/types"
	"github.com/bytearena/dogfight/common/utils/vector"
	"github.com/bytearena/dogfight/config"
	"github.com/bytearena/dogfight/game/combat"
	dogfightutils "github.com/bytearena/dogfight/utils"
	"github.com/bytearena/ecs"
)

// triggerWindow holds the trigger of an actor down during [from, to).
type triggerWindow struct {
	from time.Duration
	to   time.Duration
}

type pilot struct {
	actorid ecs.EntityID
	windows []triggerWindow
}

func (p pilot) isFiring(now time.Duration) bool {
	for _, window := range p.windows {
		if now >= window.from && now < window.to {
			return true
		}
	}

	return false
}

type skirmishSummary struct {
	Ticks              uint32
	Duration           time.Duration
	ShotsFired         int
	ProjectilesExpired int
	LiveProjectiles    int
	Hits               int
	SelfHits           int
}

// skirmish is a scripted two-ship engagement around a rock.
type skirmish struct {
	game     *combat.CombatGame
	turn     dogfightutils.Tickturn
	tickdur  time.Duration
	duration time.Duration
	started  bool

	pilots []pilot
	owners map[ecs.EntityID]ecs.EntityID // live projectile => owner, for hit accounting

	hits     int
	selfHits int
}

func newSkirmish(conf config.CombatConfig) *skirmish {
	game := combat.NewCombatGame(conf)

	red := game.NewEntityActor(vector.MakeVector3(-5, 0, 0), math.Pi/2, 1)
	blue := game.NewEntityActor(vector.MakeVector3(5, 0, 0), -math.Pi/2, 1)
	game.NewEntityObstacle(vector.MakeVector3(0, 0, -8), 2)

	game.AttachWeapon(red.GetID(), conf.Weapon.RoundsPerMinute, conf.Weapon.MuzzleSpeed, 0)
	game.AttachWeapon(blue.GetID(), conf.Weapon.RoundsPerMinute, conf.Weapon.MuzzleSpeed, 0)

	// red strafes while firing
	game.SetActorVelocity(red.GetID(), vector.MakeVector3(0, 0, -1))

	return &skirmish{
		game:     game,
		turn:     dogfightutils.MakeFirstTickturn(),
		tickdur:  conf.GetTickDuration(),
		duration: conf.GetSimulationDuration(),

		pilots: []pilot{
			{
				actorid: red.GetID(),
				windows: []triggerWindow{{from: time.Second, to: 3 * time.Second}},
			},
			{
				actorid: blue.GetID(),
				windows: []triggerWindow{
					{from: 2 * time.Second, to: 2500 * time.Millisecond},
					{from: 4 * time.Second, to: 6 * time.Second},
				},
			},
		},
		owners: make(map[ecs.EntityID]ecs.EntityID),
	}
}

func (s *skirmish) IsOver() bool {
	return s.started && s.turn.GetNow() >= s.duration
}

// Step advances the engagement by one tick; the first call runs the tick at time 0.
func (s *skirmish) Step() {
	if s.started {
		s.turn = s.turn.Next(s.tickdur)
	}
	s.started = true

	now := s.turn.GetNow()

	intents := make([]commontypes.FiringIntent, 0, len(s.pilots))
	for _, p := range s.pilots {
		intents = append(intents, commontypes.MakeFiringIntent(p.actorid, p.isFiring(now)))
	}

	s.game.Step(s.turn, intents)

	// projectiles swept during this step are still known from the previous one
	previous := s.owners
	s.owners = make(map[ecs.EntityID]ecs.EntityID, len(previous))
	for _, projectile := range s.game.GetProjectiles() {
		s.owners[projectile.ID] = projectile.Owner
	}

	for _, collision := range s.game.GetCollisions() {
		s.accountCollision(collision, previous)
	}
}

func (s *skirmish) accountCollision(collision combat.Collision, previous map[ecs.EntityID]ecs.EntityID) {
	projectileid, targetid, targetType := collision.EntityIDA, collision.EntityIDB, collision.TypeB
	if collision.TypeB == commontypes.PhysicalBodyDescriptorType.Projectile.String() {
		projectileid, targetid, targetType = collision.EntityIDB, collision.EntityIDA, collision.TypeA
	} else if collision.TypeA != commontypes.PhysicalBodyDescriptorType.Projectile.String() {
		return
	}

	if targetType != commontypes.PhysicalBodyDescriptorType.Actor.String() {
		return
	}

	owner, ok := s.owners[projectileid]
	if !ok {
		if owner, ok = previous[projectileid]; !ok {
			return
		}
	}

	if owner == targetid {
		s.selfHits++
	} else {
		s.hits++
	}
}

func (s *skirmish) Summary() skirmishSummary {
	totals := s.game.GetTotals()

	return skirmishSummary{
		Ticks:              s.turn.GetSeq(),
		Duration:           s.turn.GetNow(),
		ShotsFired:         totals.ShotsFired,
		ProjectilesExpired: totals.ProjectilesExpired,
		LiveProjectiles:    s.game.GetLiveProjectileCount(),
		Hits:               s.hits,
		SelfHits:           s.selfHits,
	}
}
