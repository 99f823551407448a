package recording

import (
	"archive/zip"
	"os"

	"github.com/pkg/errors"
)

type archiveFile struct {
	Name string
	Body []byte
}

func makeArchive(filename string, files []archiveFile) error {
	out, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "Could not create file %s", filename)
	}
	defer out.Close()

	w := zip.NewWriter(out)

	for _, file := range files {
		f, err := w.Create(file.Name)
		if err != nil {
			return err
		}

		if _, err := f.Write(file.Body); err != nil {
			return err
		}
	}

	return w.Close()
}
