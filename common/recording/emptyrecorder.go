package recording

import (
	"github.com/bytearena/dogfight/config"
)

type EmptyRecorder struct{}

func MakeEmptyRecorder() EmptyRecorder {
	return EmptyRecorder{}
}

func (r EmptyRecorder) Record(gameID string, frame string) error {
	return nil
}

func (r EmptyRecorder) RecordMetadata(gameID string, conf config.CombatConfig) error {
	return nil
}

func (r EmptyRecorder) Close(gameID string) error {
	return nil
}
