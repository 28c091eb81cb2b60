package scenegen

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// EncodeJSON returns the exact bytes SaveJSON writes: 4-space indented JSON,
// fields in declaration order, strings unescaped beyond what JSON requires,
// no trailing newline. Scenes holding NaN or ±Inf are rejected with
// ErrNonFinite, invalid UTF-8 strings with ErrInvalidUTF8.
func EncodeJSON(s Scene) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	// nil slices would encode as null
	if s.Lights == nil {
		s.Lights = []Light{}
	}
	if s.Objects == nil {
		s.Objects = []SceneObject{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", JSONIndent)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// SaveJSON writes s to path, replacing any existing file. The parent
// directory must already exist. Nothing is written if encoding fails.
func SaveJSON(s Scene, path string) (err error) {
	data, err := EncodeJSON(s)
	if err != nil {
		return fmt.Errorf("encode scene %s: %w", s.Name, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := w.Write(data); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	DebugLog("Wrote %d bytes to %s", len(data), path)
	return nil
}

func (s *Scene) SaveJSON(path string) error { return SaveJSON(*s, path) }
