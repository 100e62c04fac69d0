/*
 * mffile_test.go, part of goMF.
 *
 *
 * Copyright 2025 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goMF is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package mffile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	mf "github.com/rmera/gomf"
)

var expectedLines = []string{"H2O", "C67H132N8O3", "[(2H2O.NaCl)3S.N]2-", "  CH4CH4 ", "CuSO4.5H2O", "2CH3.NH3"}

func sameLines(Te *testing.T, got []string) {
	Te.Helper()
	if len(got) != len(expectedLines) {
		Te.Fatalf("Expected %d lines, got %d: %q", len(expectedLines), len(got), got)
	}
	for i, v := range expectedLines {
		if got[i] != v {
			Te.Errorf("Line %d: expected %q, got %q", i, v, got[i])
		}
	}
}

func TestReadPlain(Te *testing.T) {
	lines, err := ReadAll("testdata/formulas.txt")
	if err != nil {
		Te.Fatal(err)
	}
	sameLines(Te, lines)
}

//compressTo writes the test formulas to dir/name, compressed with w.
func compressTo(Te *testing.T, dir, name string, w func(io.Writer) (io.WriteCloser, error)) string {
	Te.Helper()
	raw, err := os.ReadFile("testdata/formulas.txt")
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	c, err := w(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err = c.Write(raw); err != nil {
		Te.Fatal(err)
	}
	if err = c.Close(); err != nil {
		Te.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err = os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		Te.Fatal(err)
	}
	return path
}

func TestReadCompressed(Te *testing.T) {
	dir := Te.TempDir()
	writers := map[string]func(io.Writer) (io.WriteCloser, error){
		"f.txt.zst": func(a io.Writer) (io.WriteCloser, error) { return zstd.NewWriter(a) },
		"f.zstd":    func(a io.Writer) (io.WriteCloser, error) { return zstd.NewWriter(a) },
		"f.txt.gz":  func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(a), nil },
		"f.s2":      func(a io.Writer) (io.WriteCloser, error) { return s2.NewWriter(a), nil },
		"f.SZ":      func(a io.Writer) (io.WriteCloser, error) { return snappy.NewBufferedWriter(a), nil },
	}
	for name, w := range writers {
		path := compressTo(Te, dir, name, w)
		lines, err := ReadAll(path)
		if err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		sameLines(Te, lines)
	}
}

func TestNext(Te *testing.T) {
	R, err := New("testdata/formulas.txt")
	if err != nil {
		Te.Fatal(err)
	}
	defer R.Close()
	P := mf.NewParser()
	var h uint64
	for {
		l, err := R.Next()
		if err != nil {
			if e, ok := err.(mf.LastLineError); ok {
				if e.Critical() || e.FileName() != "testdata/formulas.txt" {
					Te.Errorf("Unexpected last line error: %v", e)
				}
				break
			}
			Te.Fatal(err)
		}
		c, err := P.ParseBytes(l)
		if err != nil {
			Te.Fatalf("Line %d: %v", R.Line(), err)
		}
		h += c.Count(0)
	}
	if h != 2+132+12+8+10+9 {
		Te.Errorf("Unexpected number of hydrogens: %d", h)
	}
	if R.Readable() {
		Te.Errorf("The reader should be closed after the last line")
	}
	if _, err := R.Next(); err == nil {
		Te.Errorf("Expected an error reading from a closed reader")
	}
	fmt.Println("Hydrogens:", h)
}

func TestLongLine(Te *testing.T) {
	dir := Te.TempDir()
	long := strings.Repeat("CH2", 5000)
	path := filepath.Join(dir, "long.txt")
	if err := os.WriteFile(path, []byte(long+"\nH2O\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	lines, err := ReadAll(path)
	if err != nil {
		Te.Fatal(err)
	}
	if len(lines) != 2 || lines[0] != long || lines[1] != "H2O" {
		Te.Errorf("Long lines not read correctly: %d lines", len(lines))
	}
}

func TestOpenErrors(Te *testing.T) {
	_, err := New("testdata/nonexistent.txt")
	if err == nil {
		Te.Fatal("Expected an error for a missing file")
	}
	fe, ok := err.(mf.FileError)
	if !ok || !fe.Critical() || fe.Format() != "mf" {
		Te.Errorf("Unexpected error type: %T %v", err, err)
	}
	_, err = ReadAll("testdata/nonexistent.txt")
	if err == nil || len(err.(mf.Error).Decorate("")) != 2 {
		Te.Errorf("Expected a decorated error, got %v", err)
	}
	//a plain file with a .gz extension
	dir := Te.TempDir()
	path := filepath.Join(dir, "plain.gz")
	os.WriteFile(path, []byte("H2O\n"), 0o644)
	if _, err = New(path); err == nil {
		Te.Errorf("Expected an error opening a plain file as gzip")
	}
}

func TestWriter(Te *testing.T) {
	dir := Te.TempDir()
	for _, name := range []string{"res.csv", "res.csv.zst", "res.csv.gz", "res.csv.s2", "res.csv.sz"} {
		path := filepath.Join(dir, name)
		W, err := NewWriter(path)
		if err != nil {
			Te.Fatal(err)
		}
		for _, v := range []string{"H2O", "2CH3.NH3", "(CH4CH4)2"} {
			c := mf.MustParse(v)
			if err = W.WNext(v, &c); err != nil {
				Te.Fatal(err)
			}
		}
		if W.Hydrogens() != 2+9+16 {
			Te.Errorf("%s: unexpected hydrogen count %d", name, W.Hydrogens())
		}
		if err = W.Close(); err != nil {
			Te.Fatal(err)
		}
		c := mf.MustParse("H")
		if err = W.WNext("H", &c); err == nil {
			Te.Errorf("%s: expected an error writing to a closed writer", name)
		}
		lines, err := ReadAll(path)
		if err != nil {
			Te.Fatal(err)
		}
		expected := []string{"Formula,Hydrogen_Count,Canonical", "H2O,2,H2O", "2CH3.NH3,9,H9C2N", "(CH4CH4)2,16,H16C4", "TOTAL,27,"}
		if strings.Join(lines, "\n") != strings.Join(expected, "\n") {
			Te.Errorf("%s: unexpected content:\n%s", name, strings.Join(lines, "\n"))
		}
	}
}
