package replay

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/bytearena/dogfight/common/recording"
	"github.com/bytearena/dogfight/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordThenReplay(t *testing.T) {
	dir, err := ioutil.TempDir("", "dogfight-replay")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	filename := path.Join(dir, "game.zip")
	conf := config.DefaultCombatConfig()
	conf.Weapon.RoundsPerMinute = 1200

	recorder := recording.MakeSingleGameRecorder(filename)
	require.NoError(t, recorder.RecordMetadata("game-1", conf))
	require.NoError(t, recorder.Record("game-1", `{"Tick":0}`))
	require.NoError(t, recorder.Record("game-1", `{"Tick":1}`))
	require.NoError(t, recorder.Close("game-1"))

	replayer, err := NewReplayer(filename)
	require.NoError(t, err)
	defer replayer.Close()

	metadata, err := replayer.ReadMetadata()
	require.NoError(t, err)
	assert.Equal(t, "game-1", metadata.GameID)
	assert.Equal(t, 1200.0, metadata.Config.Weapon.RoundsPerMinute)

	messages, err := replayer.Read()
	require.NoError(t, err)

	lines := make([]string, 0)
	for msg := range messages {
		assert.Equal(t, "game-1", msg.GameID)
		lines = append(lines, msg.Line)
	}

	assert.Equal(t, []string{`{"Tick":0}`, `{"Tick":1}`}, lines)
}

func TestRecorderRequiresMetadata(t *testing.T) {
	recorder := recording.MakeSingleGameRecorder(path.Join(os.TempDir(), "never-written.zip"))

	assert.Error(t, recorder.Close("game-1"))
}

func TestReplayerMissingArchive(t *testing.T) {
	_, err := NewReplayer("/nonexistent/game.zip")

	assert.Error(t, err)
}
