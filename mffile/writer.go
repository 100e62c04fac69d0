/*
 * writer.go, part of goMF.
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
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	mf "github.com/rmera/gomf"
)

//Header is the first line of every results file.
var Header = []string{"Formula", "Hydrogen_Count", "Canonical"}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

//Writer writes parsing results as CSV: the formula as given, its number of hydrogens and the
//canonical formula. The file is compressed according to its extension, as for Reader.
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	c         *csv.Writer
	filename  string
	hydrogens uint64
	writeable bool
}

//NewWriter creates the results file name and writes the header to it. compressionLevel is used
//for gzip only, and only the first value given is considered.
func NewWriter(name string, compressionLevel ...int) (*Writer, error) {
	level := gzip.DefaultCompression
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	W := new(Writer)
	W.filename = name
	var err error
	W.f, err = os.Create(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	switch compression(name) {
	case "zstd":
		W.h, err = zstd.NewWriter(W.f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	case "gzip":
		W.h, err = gzip.NewWriterLevel(W.f, level)
	case "s2":
		W.h = s2.NewWriter(W.f)
	case "snappy":
		W.h = snappy.NewBufferedWriter(W.f)
	default:
		W.h = nopWriteCloser{W.f}
	}
	if err != nil {
		W.f.Close()
		return nil, Error{WrongFormat + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	W.c = csv.NewWriter(W.h)
	W.writeable = true
	if err = W.c.Write(Header); err != nil {
		W.Close()
		return nil, Error{WriteError + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	return W, nil
}

//WNext writes the results for one formula.
func (W *Writer) WNext(formula string, counts *mf.AtomCounts) error {
	if !W.writeable {
		return Error{WriterUnIni, W.filename, []string{"WNext"}, true}
	}
	h := counts.Count(0) //H is always the first element
	W.hydrogens += h
	err := W.c.Write([]string{formula, strconv.FormatUint(h, 10), counts.String()})
	if err != nil {
		return Error{WriteError + ": " + err.Error(), W.filename, []string{"WNext"}, true}
	}
	return nil
}

//Hydrogens returns the number of hydrogens in all the formulas written so far.
func (W *Writer) Hydrogens() uint64 {
	return W.hydrogens
}

//Close writes the total number of hydrogens and closes the file. The
//Writer can't be used after this call.
func (W *Writer) Close() error {
	if W == nil || !W.writeable {
		return nil
	}
	W.writeable = false
	W.c.Write([]string{"TOTAL", strconv.FormatUint(W.hydrogens, 10), ""})
	W.c.Flush()
	err := W.c.Error()
	if err2 := W.h.Close(); err == nil {
		err = err2
	}
	if err2 := W.f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return Error{WriteError + ": " + err.Error(), W.filename, []string{"Close"}, true}
	}
	return nil
}
