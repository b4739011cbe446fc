// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the file formats of a parameter [Set].
type Formats int32

const (
	// None is no format.
	None Formats = iota
	TOML
	YAML
	JSON
)

// ExtToFormat returns the format for the given file extension,
// with or without the leading dot.
func ExtToFormat(ext string) (Formats, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}
	return None, fmt.Errorf("ExtToFormat: extension %q not recognized", ext)
}

// Open opens a parameter set from the given filename, with the format
// inferred from its extension. The set is validated, and any invalid
// entries are logged and returned as an error, along with the set.
func Open(filename string) (*Set, error) {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return nil, err
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return open(file, filename, f)
}

// OpenFS opens a parameter set from the given filename
// using the given [fs.FS] filesystem (e.g., for embed files).
func OpenFS(fsys fs.FS, filename string) (*Set, error) {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return nil, err
	}
	file, err := fsys.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return open(file, filename, f)
}

func open(r io.Reader, filename string, f Formats) (*Set, error) {
	s, err := Read(r, f)
	if err != nil {
		slog.Error("params.Open: could not read parameters", "file", filename, "err", err)
		return nil, err
	}
	if err := s.Validate(); err != nil {
		slog.Error("params.Open: invalid parameters", "file", filename, "err", err)
		return s, err
	}
	return s, nil
}

// Read reads a parameter set in the given format from the given reader.
// It does not validate the set.
func Read(r io.Reader, f Formats) (*Set, error) {
	s := &Set{}
	var err error
	switch f {
	case TOML:
		err = toml.NewDecoder(r).Decode(s)
	case YAML:
		err = yaml.NewDecoder(r).Decode(s)
		if err == io.EOF {
			err = nil
		}
	case JSON:
		err = json.NewDecoder(r).Decode(s)
	default:
		err = fmt.Errorf("params.Read: format %d not supported", f)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Save saves the parameter set to the given filename,
// with the format inferred from the filename.
func Save(s *Set, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	bw := bufio.NewWriter(file)
	if err := Write(s, bw, f); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the parameter set to the given writer in the given format.
// Seeds and streams above [math.MaxInt64] cannot be written as TOML.
func Write(s *Set, w io.Writer, f Formats) error {
	switch f {
	case TOML:
		return toml.NewEncoder(w).Encode(s)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	return fmt.Errorf("params.Write: format %d not supported", f)
}
