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

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestTemplateAndCreate(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "plan.yaml")
	out := filepath.Join(dir, "notes.pdf")

	err := run([]string{"template", "-o", tmpl})
	if err != nil {
		t.Fatal(err)
	}
	err = run([]string{"create", "-i", tmpl, "-o", out, "-log", filepath.Join(dir, "log")})
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.5\n")) || !bytes.HasSuffix(data, []byte("%%EOF\n")) {
		t.Error("output is not a PDF file")
	}

	// existing files are only replaced with -f
	err = run([]string{"create", "-i", tmpl, "-o", out})
	if err == nil {
		t.Error("existing output file overwritten")
	}
	err = run([]string{"create", "-i", tmpl, "-o", out, "-f"})
	if err != nil {
		t.Error(err)
	}
}

func TestJSONTemplate(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "plan.json")
	err := run([]string{"template", "-o", tmpl})
	if err != nil {
		t.Fatal(err)
	}
	p, err := readPlan(tmpl)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Routes) != 1 || len(p.Diversions) != 2 {
		t.Errorf("unexpected template contents %+v", p)
	}
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	cases := [][]string{
		{"template", "-o", filepath.Join(dir, "plan.txt")},
		{"create", "-i", filepath.Join(dir, "missing.yaml"), "-o", filepath.Join(dir, "a.pdf")},
		{"create", "-v", "loud"},
		{"create", "-lang", "!!"},
	}
	for _, args := range cases {
		if err := run(args); err == nil {
			t.Errorf("%q: no error", args)
		}
	}

	for _, args := range [][]string{nil, {"print"}} {
		if err := run(args); !errors.Is(err, errUsage) {
			t.Errorf("%q: got %v, want usage error", args, err)
		}
	}
}
