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

	"gopkg.in/yaml.v3"
)

var errNoteFormat = errors.New("note must be \"Blank\" or a map with a single style key")

func noteStyleOf(key string) (NoteStyle, error) {
	switch s := NoteStyle(key); s {
	case Normal, Bold, Italic, Blank:
		return s, nil
	default:
		return "", fmt.Errorf("unknown note style %q", key)
	}
}

// MarshalYAML implements the yaml.Marshaler interface.
// Text notes are written as tagged scalars, like "!Bold Check fuel".
func (n Note) MarshalYAML() (any, error) {
	if n.Style == Blank {
		return string(Blank), nil
	}
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!" + string(n.Style),
		Value: n.Text,
		Style: yaml.DoubleQuotedStyle,
	}, nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
// Three forms are accepted: the plain scalar "Blank", a tagged scalar
// like "!Bold Check fuel", and a map with a single style key.
func (n *Note) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if len(value.Tag) > 1 && value.Tag[0] == '!' && value.Tag[1] != '!' {
			style, err := noteStyleOf(value.Tag[1:])
			if err != nil {
				return fmt.Errorf("line %d: %w", value.Line, err)
			}
			*n = Note{Style: style}
			if style != Blank {
				n.Text = value.Value
			}
			return nil
		}
		if value.Value != string(Blank) {
			return fmt.Errorf("line %d: %w", value.Line, errNoteFormat)
		}
		*n = Note{Style: Blank}
		return nil
	case yaml.MappingNode:
		if len(value.Content) != 2 {
			return fmt.Errorf("line %d: %w", value.Line, errNoteFormat)
		}
		style, err := noteStyleOf(value.Content[0].Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*n = Note{Style: style}
		if style != Blank {
			return value.Content[1].Decode(&n.Text)
		}
		return nil
	default:
		return fmt.Errorf("line %d: %w", value.Line, errNoteFormat)
	}
}

// MarshalJSON implements the json.Marshaler interface.
func (n Note) MarshalJSON() ([]byte, error) {
	if n.Style == Blank {
		return json.Marshal(string(Blank))
	}
	return json.Marshal(map[NoteStyle]string{n.Style: n.Text})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (n *Note) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		if name != string(Blank) {
			return errNoteFormat
		}
		*n = Note{Style: Blank}
		return nil
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil || len(m) != 1 {
		return errNoteFormat
	}
	for key, raw := range m {
		style, err := noteStyleOf(key)
		if err != nil {
			return err
		}
		*n = Note{Style: style}
		if style != Blank {
			return json.Unmarshal(raw, &n.Text)
		}
	}
	return nil
}
