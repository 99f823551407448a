package config

import (
	"io/ioutil"
	"os"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeConfigFile(t *testing.T, content string) string {
	dir, err := ioutil.TempDir("", "dogfight-config")
	assert.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	configpath := path.Join(dir, "config.json")
	assert.NoError(t, ioutil.WriteFile(configpath, []byte(content), 0644))

	return configpath
}

func TestDefaultCombatConfig(t *testing.T) {
	conf := DefaultCombatConfig()

	assert.NoError(t, conf.Validate())
	assert.Equal(t, 10*time.Second, conf.GetProjectileLifetime())
	assert.Equal(t, 20*time.Second, conf.GetSimulationDuration())
	assert.Equal(t, time.Second/60, conf.GetTickDuration())
}

func TestLoadCombatConfigKeepsDefaults(t *testing.T) {
	configpath := writeConfigFile(t, `{"Weapon": {"RoundsPerMinute": 1200}, "Simulation": {"Tps": 30}}`)

	conf, err := LoadCombatConfig(configpath)
	assert.NoError(t, err)

	assert.Equal(t, 1200.0, conf.Weapon.RoundsPerMinute)
	assert.Equal(t, DefaultMuzzleSpeed, conf.Weapon.MuzzleSpeed)
	assert.Equal(t, 30, conf.Simulation.Tps)
	assert.Equal(t, DefaultProjectileMass, conf.Projectile.Mass)
}

func TestLoadCombatConfigRejectsInvalidValues(t *testing.T) {
	configpath := writeConfigFile(t, `{"Projectile": {"Lifetime": 0}}`)

	_, err := LoadCombatConfig(configpath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Projectile.Lifetime")
}

func TestLoadCombatConfigRejectsInvalidJSON(t *testing.T) {
	configpath := writeConfigFile(t, `{"Weapon": `)

	_, err := LoadCombatConfig(configpath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid JSON")
}

func TestLoadCombatConfigMissingFile(t *testing.T) {
	_, err := LoadCombatConfig("/nonexistent/dogfight/config.json")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Missing config file")
}
