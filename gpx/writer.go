package gpx

import (
	"errors"
	"fmt"
	"os"
)

// ErrOutputWrite is returned when the document cannot be serialized or written
var ErrOutputWrite = errors.New("cannot write GPX file")

// WriteFile serializes doc and writes it to path.
// Nothing is created on disk if serialization fails.
func WriteFile(path string, doc Document) error {
	b, err := BuildXML(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return nil
}
