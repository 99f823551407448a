package config

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path"
	"time"

	"github.com/bytearena/dogfight/utils"
	"github.com/kardianos/osext"
	"github.com/pkg/errors"
)

const (
	DefaultTps              = 60
	DefaultDuration         = 20.0  // seconds
	DefaultRoundsPerMinute  = 600.0 // 10 shots per second
	DefaultMuzzleSpeed      = 20.0
	DefaultProjectileMass   = 0.1
	DefaultLifetime         = 10.0 // seconds
	DefaultProjectileRadius = 0.1
)

type SimulationConfig struct {
	Tps      int
	Duration float64 // seconds
}

type WeaponConfig struct {
	RoundsPerMinute float64
	MuzzleSpeed     float64
}

type ProjectileConfig struct {
	Mass     float64
	Lifetime float64 // seconds
	Radius   float64
}

type CombatConfig struct {
	Simulation SimulationConfig
	Weapon     WeaponConfig
	Projectile ProjectileConfig
}

func DefaultCombatConfig() CombatConfig {
	return CombatConfig{
		Simulation: SimulationConfig{
			Tps:      DefaultTps,
			Duration: DefaultDuration,
		},
		Weapon: WeaponConfig{
			RoundsPerMinute: DefaultRoundsPerMinute,
			MuzzleSpeed:     DefaultMuzzleSpeed,
		},
		Projectile: ProjectileConfig{
			Mass:     DefaultProjectileMass,
			Lifetime: DefaultLifetime,
			Radius:   DefaultProjectileRadius,
		},
	}
}

func (conf CombatConfig) GetTickDuration() time.Duration {
	return utils.TickDuration(conf.Simulation.Tps)
}

func (conf CombatConfig) GetSimulationDuration() time.Duration {
	return secondsToDuration(conf.Simulation.Duration)
}

func (conf CombatConfig) GetProjectileLifetime() time.Duration {
	return secondsToDuration(conf.Projectile.Lifetime)
}

// Validate rejects configurations that would break the invariants of the combat core.
func (conf CombatConfig) Validate() error {
	if conf.Simulation.Tps <= 0 {
		return errors.Errorf("Simulation.Tps must be positive, got %d", conf.Simulation.Tps)
	}

	if conf.Simulation.Duration <= 0 {
		return errors.Errorf("Simulation.Duration must be positive, got %f", conf.Simulation.Duration)
	}

	if conf.Weapon.RoundsPerMinute <= 0 {
		return errors.Errorf("Weapon.RoundsPerMinute must be positive, got %f", conf.Weapon.RoundsPerMinute)
	}

	if conf.Projectile.Mass <= 0 {
		return errors.Errorf("Projectile.Mass must be positive, got %f", conf.Projectile.Mass)
	}

	if conf.Projectile.Lifetime <= 0 {
		return errors.Errorf("Projectile.Lifetime must be positive, got %f", conf.Projectile.Lifetime)
	}

	if conf.Projectile.Radius <= 0 {
		return errors.Errorf("Projectile.Radius must be positive, got %f", conf.Projectile.Radius)
	}

	return nil
}

// LoadCombatConfig reads a JSON configuration; fields absent from the file keep their default value.
// Relative paths are resolved against the folder of the running executable.
func LoadCombatConfig(configpath string) (CombatConfig, error) {
	conf := DefaultCombatConfig()

	configpath, err := getAbsolutePath(configpath)
	if err != nil {
		return conf, err
	}

	if _, err := os.Stat(configpath); os.IsNotExist(err) {
		return conf, errors.Errorf("Missing config file: %s", configpath)
	}

	data, err := ioutil.ReadFile(configpath)
	if err != nil {
		return conf, errors.Wrapf(err, "Cannot read config file (%s)", configpath)
	}

	if err := json.Unmarshal(data, &conf); err != nil {
		return conf, errors.Wrapf(err, "Invalid JSON in config file (%s)", configpath)
	}

	if err := conf.Validate(); err != nil {
		return conf, errors.Wrapf(err, "Invalid config file (%s)", configpath)
	}

	return conf, nil
}

func getAbsolutePath(relative string) (string, error) {
	if path.IsAbs(relative) {
		return relative, nil
	}

	exfolder, err := osext.ExecutableFolder()
	if err != nil {
		return "", errors.Wrap(err, "Cannot determine executable folder")
	}

	return path.Join(exfolder, relative), nil
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
