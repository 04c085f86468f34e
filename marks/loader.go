package marks

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/iancoleman/orderedmap"
)

var (
	// ErrInputNotFound is returned when the input path does not exist
	ErrInputNotFound = errors.New("input file not found")
	// ErrInputParse is returned when the input is not a valid JSON array
	ErrInputParse = errors.New("invalid input JSON")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load reads the file at path and decodes it with Decode
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses data as a JSON array of mark records, preserving input order
func Decode(data []byte) ([]Record, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: top-level value is %s, expected an array", ErrInputParse, typeErr.Value)
		}
		return nil, fmt.Errorf("%w: %v", ErrInputParse, err)
	}
	if elems == nil {
		// literal null
		return nil, fmt.Errorf("%w: top-level value is null, expected an array", ErrInputParse)
	}

	records := make([]Record, 0, len(elems))
	for i, raw := range elems {
		records = append(records, decodeRecord(i, raw))
	}
	return records, nil
}

func decodeRecord(index int, raw json.RawMessage) Record {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Record{index: index, err: fmt.Errorf("record %d is not an object", index)}
	}
	fields := orderedmap.New()
	if err := json.Unmarshal(trimmed, fields); err != nil {
		return Record{index: index, err: fmt.Errorf("record %d: %w", index, err)}
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &members); err != nil {
		return Record{index: index, err: fmt.Errorf("record %d: %w", index, err)}
	}
	return Record{index: index, fields: fields, raw: members}
}
