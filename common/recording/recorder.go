package recording

import (
	"github.com/bytearena/dogfight/config"
)

const (
	archiveRecordName         = "Record"
	archiveRecordMetadataName = "RecordMetadata"
)

// Recorder stores the visualisation frames of a game, one frame per line.
type Recorder interface {
	RecordMetadata(gameID string, conf config.CombatConfig) error
	Record(gameID string, frame string) error
	Close(gameID string) error
}

type RecordMetadata struct {
	GameID  string
	Date    string
	Version string
	Config  config.CombatConfig
}

func GetRecordName() string {
	return archiveRecordName
}

func GetRecordMetadataName() string {
	return archiveRecordMetadataName
}
