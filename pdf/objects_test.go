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

package pdf

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Integer(-12), "-12"},
		{Real(1), "1"},
		{Real(0.25), ".25"},
		{Real(-3.14159265), "-3.1416"},
		{Real(419.527559), "419.5276"},
		{String("a"), "(a)"},
		{String(""), "()"},
		{String("a (test version)"), `(a \(test version\))`},
		{String("back\\slash"), `(back\\slash)`},
		{String("line\nbreak\r"), `(line\nbreak\r)`},
		{String("\f\b"), `(\f\b)`},
		{String("\t"), `(\011)`},
		{String("\xb0"), `(\260)`},
		{Name("Type"), "/Type"},
		{Name("Helvetica-Bold"), "/Helvetica-Bold"},
		{Name("a b#"), "/a#20b#23"},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Array{}, "[]"},
		{Reference{Number: 7}, "7 0 R"},
		{Dict(nil), "null"},
		{Dict{}, "<<\n>>"},
		{Dict{"B": Integer(2), "A": Integer(1), "C": nil}, "<<\n/A 1\n/B 2\n>>"},
		{&Stream{Data: []byte("q Q")}, "<<\n/Length 3\n>>\nstream\nq Q\nendstream"},
	}
	for _, test := range cases {
		out := Format(test.in)
		if out != test.out {
			t.Errorf("wrongly formatted, expected %q but got %q", test.out, out)
		}
	}
}

func TestRealNonFinite(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1)} {
		err := Real(x).PDF(&bytes.Buffer{})
		if err == nil {
			t.Errorf("Real(%g) was written without error", x)
		}
	}
}

func TestDictOrder(t *testing.T) {
	a := Dict{}
	b := Dict{}
	keys := []Name{"Type", "MediaBox", "Resources", "Parent", "Contents", "A", "Z"}
	for i, key := range keys {
		a[key] = Integer(i)
	}
	for i := len(keys) - 1; i >= 0; i-- {
		b[keys[i]] = Integer(i)
	}
	for range 10 {
		if Format(a) != Format(b) {
			t.Fatalf("dict output depends on insertion order:\n%s\n%s", Format(a), Format(b))
		}
	}
}

func TestTextString(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"Wind:310°", `(Wind:310\260)`},
		{"Müller", `(M\374ller)`},
		{"€", `(\200)`},
		{"日本", "(??)"},
		{"(x)", `(\(x\))`},
	}
	for _, test := range cases {
		out := Format(TextString(test.in))
		if out != test.out {
			t.Errorf("TextString(%q) = %s, want %s", test.in, out, test.out)
		}
	}
}

func TestDate(t *testing.T) {
	tm := time.Date(2024, 5, 17, 13, 45, 0, 0, time.FixedZone("", 3600))
	got := string(Date(tm))
	if got != "D:20240517134500+01'00" {
		t.Errorf("wrong date %q", got)
	}
}

func FuzzString(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("ABC"))
	f.Add([]byte{0, 1, 2})
	f.Add([]byte("(()\\"))
	f.Fuzz(func(t *testing.T, data []byte) {
		out := Format(String(data))
		if !strings.HasPrefix(out, "(") || !strings.HasSuffix(out, ")") {
			t.Fatalf("not a literal string: %q", out)
		}
		inner := out[1 : len(out)-1]
		for i := 0; i < len(inner); i++ {
			c := inner[i]
			if c < 32 || c >= 127 {
				t.Fatalf("unescaped byte %d in %q", c, out)
			}
			if c == '\\' {
				i++ // skip the escaped character
				continue
			}
			if c == '(' || c == ')' {
				t.Fatalf("unescaped parenthesis in %q", out)
			}
		}
	})
}
