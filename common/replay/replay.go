package replay

import (
	"archive/zip"
	"bufio"
	"encoding/json"
	"io"
	"io/ioutil"

	"github.com/bytearena/dogfight/common/recording"
	"github.com/bytearena/dogfight/common/utils"
	"github.com/pkg/errors"
)

type ReplayMessage struct {
	Line   string
	GameID string
}

// Replayer streams back the frames of a record archive.
type Replayer struct {
	filename string
	zip      *zip.ReadCloser
	record   *zip.File
	metadata *zip.File
}

func NewReplayer(filename string) (*Replayer, error) {
	reader, err := zip.OpenReader(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not open record archive (%s)", filename)
	}

	r := &Replayer{
		filename: filename,
		zip:      reader,
	}

	for _, file := range reader.File {
		switch file.Name {
		case recording.GetRecordName():
			r.record = file
		case recording.GetRecordMetadataName():
			r.metadata = file
		}
	}

	if r.record == nil || r.metadata == nil {
		reader.Close()
		return nil, errors.Errorf("Incomplete record archive (%s)", filename)
	}

	return r, nil
}

func (r *Replayer) ReadMetadata() (recording.RecordMetadata, error) {
	var metadata recording.RecordMetadata

	fd, err := r.metadata.Open()
	if err != nil {
		return metadata, errors.Wrap(err, "Could not open RecordMetadata")
	}
	defer fd.Close()

	data, err := ioutil.ReadAll(fd)
	if err != nil {
		return metadata, errors.Wrap(err, "Could not read RecordMetadata")
	}

	if err := json.Unmarshal(data, &metadata); err != nil {
		return metadata, errors.Wrap(err, "Invalid RecordMetadata")
	}

	return metadata, nil
}

// Read streams every recorded frame; the channel is closed after the last one.
func (r *Replayer) Read() (chan *ReplayMessage, error) {
	metadata, err := r.ReadMetadata()
	if err != nil {
		return nil, err
	}

	fd, err := r.record.Open()
	if err != nil {
		return nil, errors.Wrap(err, "Could not open Record")
	}

	streamingChannel := make(chan *ReplayMessage)

	go func() {
		defer close(streamingChannel)
		defer fd.Close()

		reader := bufio.NewReader(fd)

		for {
			line, readErr := reader.ReadString('\n')

			if len(line) > 1 {
				streamingChannel <- &ReplayMessage{
					Line:   line[:len(line)-1],
					GameID: metadata.GameID,
				}
			}

			if readErr == io.EOF {
				return
			}

			if readErr != nil {
				utils.Debug("replay", "could not read record: "+readErr.Error())
				return
			}
		}
	}()

	return streamingChannel, nil
}

func (r *Replayer) Close() error {
	return r.zip.Close()
}
