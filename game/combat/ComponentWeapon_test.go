package combat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeaponCooldownFromRoundsPerMinute(t *testing.T) {
	weapon := NewWeaponWithRoundsPerMinute(600, 20, 0)

	assert.Equal(t, 100*time.Millisecond, weapon.GetCooldown())
	assert.Equal(t, -100*time.Millisecond, weapon.GetLastFired())
	assert.Equal(t, 20.0, weapon.GetMuzzleSpeed())
	assert.False(t, weapon.IsFiring())
}

func TestWeaponRejectsInvalidRate(t *testing.T) {
	assert.Panics(t, func() { NewWeaponWithRoundsPerMinute(0, 20, 0) })
	assert.Panics(t, func() { NewWeaponWithRoundsPerMinute(-60, 20, 0) })
	assert.Panics(t, func() { NewWeapon(0, 20, 0) })
}

func TestWeaponIdleFiresNothing(t *testing.T) {
	weapon := NewWeapon(100*time.Millisecond, 20, 0)

	assert.Equal(t, 0, weapon.Tick(0))
	assert.Equal(t, 0, weapon.Tick(5*time.Second))
	assert.Equal(t, -100*time.Millisecond, weapon.GetLastFired())
}

func TestWeaponFirstPullFiresImmediately(t *testing.T) {
	weapon := NewWeapon(100*time.Millisecond, 20, 0)

	weapon.StartFiring(0)
	assert.True(t, weapon.IsFiring())
	assert.Equal(t, 1, weapon.Tick(0))
	assert.Equal(t, time.Duration(0), weapon.GetLastFired())
	assert.Equal(t, 0, weapon.Tick(50*time.Millisecond))
}

func TestWeaponCatchUpShots(t *testing.T) {
	weapon := NewWeapon(100*time.Millisecond, 20, 0)

	weapon.StartFiring(0)
	assert.Equal(t, 1, weapon.Tick(0))

	// a long tick accounts for every whole cooldown elapsed
	assert.Equal(t, 3, weapon.Tick(350*time.Millisecond))
	assert.Equal(t, 350*time.Millisecond, weapon.GetLastFired())
}

func TestWeaponDropsRemainderOnShot(t *testing.T) {
	weapon := NewWeapon(100*time.Millisecond, 20, 0)
	weapon.StartFiring(0)
	assert.Equal(t, 1, weapon.Tick(0))

	// ticks every 60ms: the 120ms tick fires and the extra 20ms are lost,
	// so the next shot is due at 220ms (tick at 240ms), not at 200ms.
	shots := 0
	for now := 60 * time.Millisecond; now <= 240*time.Millisecond; now += 60 * time.Millisecond {
		n := weapon.Tick(now)
		shots += n

		if now == 180*time.Millisecond {
			assert.Equal(t, 0, n)
		}
	}

	assert.Equal(t, 2, shots)
	assert.Equal(t, 240*time.Millisecond, weapon.GetLastFired())
}

func TestWeaponStartWhileFiringKeepsTiming(t *testing.T) {
	weapon := NewWeapon(100*time.Millisecond, 20, 0)
	weapon.StartFiring(0)
	assert.Equal(t, 1, weapon.Tick(0))

	weapon.StartFiring(5 * time.Second)
	assert.Equal(t, time.Duration(0), weapon.GetLastFired())
	assert.Equal(t, 50, weapon.Tick(5*time.Second))
}

func TestWeaponBoundedCatchUpAfterIdle(t *testing.T) {
	weapon := NewWeapon(100*time.Millisecond, 20, 0)
	weapon.StartFiring(0)
	assert.Equal(t, 1, weapon.Tick(0))
	weapon.StopFiring()

	assert.Equal(t, 0, weapon.Tick(time.Minute))

	weapon.StartFiring(time.Minute)
	assert.Equal(t, time.Minute-100*time.Millisecond, weapon.GetLastFired())
	assert.Equal(t, 1, weapon.Tick(time.Minute))
}

func TestWeaponRapidToggleDoesNotFire(t *testing.T) {
	weapon := NewWeapon(100*time.Millisecond, 20, 0)
	weapon.StartFiring(0)
	assert.Equal(t, 1, weapon.Tick(0))

	weapon.StopFiring()
	weapon.StartFiring(30 * time.Millisecond)
	assert.Equal(t, 0, weapon.Tick(30*time.Millisecond))

	weapon.StopFiring()
	weapon.StartFiring(60 * time.Millisecond)
	assert.Equal(t, 0, weapon.Tick(60*time.Millisecond))

	assert.Equal(t, 1, weapon.Tick(100*time.Millisecond))
}

func TestWeaponStopKeepsLastFired(t *testing.T) {
	weapon := NewWeapon(100*time.Millisecond, 20, 0)
	weapon.StartFiring(0)
	weapon.Tick(0)

	weapon.StopFiring()
	assert.False(t, weapon.IsFiring())
	assert.Equal(t, time.Duration(0), weapon.GetLastFired())
}
