package combat

import (
	"math"
	"time"

	"github.com/bytearena/dogfight/common/utils"
)

// Weapon is the fire control state of an armed actor.
//
// Shots are accounted in Tick: every whole cooldown elapsed since lastFired is
// one due shot. When shots are due, lastFired moves to now and the fraction
// of a cooldown left over is dropped, so the realized rate never exceeds the
// configured one.
type Weapon struct {
	firing      bool
	lastFired   time.Duration // simulation time of the last shot accounting
	cooldown    time.Duration // Const
	muzzleSpeed float64       // Const
}

// NewWeaponWithRoundsPerMinute configures a weapon ready to fire at now.
func NewWeaponWithRoundsPerMinute(rpm float64, muzzleSpeed float64, now time.Duration) *Weapon {
	utils.Assert(rpm > 0 && !math.IsInf(rpm, 0), "Weapon rate must be a positive number of rounds per minute")

	return NewWeapon(time.Duration(float64(time.Minute)/rpm), muzzleSpeed, now)
}

func NewWeapon(cooldown time.Duration, muzzleSpeed float64, now time.Duration) *Weapon {
	utils.Assert(cooldown > 0, "Weapon cooldown must be positive")
	utils.Assert(!math.IsNaN(muzzleSpeed) && !math.IsInf(muzzleSpeed, 0), "Weapon muzzle speed must be finite")

	return &Weapon{
		firing:      false,
		lastFired:   now - cooldown,
		cooldown:    cooldown,
		muzzleSpeed: muzzleSpeed,
	}
}

func (game CombatGame) CastWeapon(data interface{}) *Weapon {
	return data.(*Weapon)
}

// StartFiring pulls the trigger. On the idle to firing edge, the backlog
// accumulated while idle is capped to one immediately available shot.
func (w *Weapon) StartFiring(now time.Duration) {
	if w.firing {
		return
	}

	w.firing = true

	noCooldown := now - w.cooldown
	if w.lastFired < noCooldown {
		w.lastFired = noCooldown
	}
}

func (w *Weapon) StopFiring() {
	w.firing = false
}

// Tick returns the number of shots due at now.
func (w *Weapon) Tick(now time.Duration) int {
	if !w.firing {
		return 0
	}

	utils.Assert(now >= w.lastFired, "Weapon ticked with a simulation time older than its last shot")

	shots := int((now - w.lastFired) / w.cooldown)
	if shots > 0 {
		w.lastFired = now
	}

	return shots
}

func (w Weapon) IsFiring() bool {
	return w.firing
}

func (w Weapon) GetLastFired() time.Duration {
	return w.lastFired
}

func (w Weapon) GetCooldown() time.Duration {
	return w.cooldown
}

func (w Weapon) GetMuzzleSpeed() float64 {
	return w.muzzleSpeed
}
