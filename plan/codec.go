// seehuhn.de/go/kneeboard - kneeboard notes for VFR flight planning
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a file format for plans.
type Format int

// These are the supported file formats.
const (
	YAML Format = iota + 1
	JSON
)

// ErrUnknownFormat is returned for file names without a recognized
// extension.
var ErrUnknownFormat = errors.New("unknown file format (expect file extension yaml or json)")

// FormatOf determines the file format from the extension of a file name.
func FormatOf(fileName string) (Format, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json", ".jsn":
		return JSON, nil
	default:
		return 0, fmt.Errorf("%q: %w", fileName, ErrUnknownFormat)
	}
}

// Decode reads a plan in the given format.  Unknown fields are an error.
func Decode(r io.Reader, format Format) (*Plan, error) {
	p := &Plan{}
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err := dec.Decode(p)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err := dec.Decode(p)
		if err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownFormat
	}
	return p, nil
}

// Encode writes a plan in the given format.
func Encode(w io.Writer, p *Plan, format Format) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err := enc.Encode(p)
		if err != nil {
			return err
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	default:
		return ErrUnknownFormat
	}
}
