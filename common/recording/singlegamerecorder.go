package recording

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/bytearena/dogfight/common/utils"
	"github.com/bytearena/dogfight/config"
	"github.com/pkg/errors"
)

// SingleGameRecorder buffers the frames of one game in memory and writes
// them, with the metadata, to a zip archive on Close.
type SingleGameRecorder struct {
	buffer         strings.Builder
	filename       string
	recordMetadata *RecordMetadata
}

func MakeSingleGameRecorder(filename string) *SingleGameRecorder {
	return &SingleGameRecorder{
		filename:       filename,
		recordMetadata: nil,
	}
}

func (r *SingleGameRecorder) RecordMetadata(gameID string, conf config.CombatConfig) error {
	r.recordMetadata = &RecordMetadata{
		GameID:  gameID,
		Date:    time.Now().Format(time.RFC3339),
		Version: utils.GetVersion(),
		Config:  conf,
	}

	utils.Debug("SingleGameRecorder", "created RecordMetadata for game "+gameID)

	return nil
}

func (r *SingleGameRecorder) Record(gameID string, frame string) error {
	r.buffer.WriteString(frame)
	r.buffer.WriteString("\n")

	return nil
}

func (r *SingleGameRecorder) Close(gameID string) error {
	if r.recordMetadata == nil {
		return errors.New("Missing RecordMetadata for game " + gameID)
	}

	metadata, err := json.Marshal(*r.recordMetadata)
	if err != nil {
		return errors.Wrap(err, "Could not serialize RecordMetadata")
	}

	files := []archiveFile{
		{Name: archiveRecordMetadataName, Body: metadata},
		{Name: archiveRecordName, Body: []byte(r.buffer.String())},
	}

	if err := makeArchive(r.filename, files); err != nil {
		return errors.Wrap(err, "Could not create record archive")
	}

	utils.DebugWithContext("SingleGameRecorder", "wrote record archive", utils.Context{
		"game": gameID,
		"file": r.filename,
	})

	return nil
}
