/*
 * mffile.go, part of goMF.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package mffile reads and writes files of molecular formulas.
//
//A formula file has one formula per line. Blank lines are skipped. A file may be
//compressed, in which case the compression is given by the extension:
//
//	.zst or .zstd: zstd
//	.gz: gzip
//	.s2: s2
//	.sz: snappy (framed)
//
//Anything else is read as plain ASCII text.
package mffile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	mf "github.com/rmera/gomf"
)

//compression returns the compression format for the file, from its extension,
//or an empty string for plain text.
func compression(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		return "zstd"
	case ".gz":
		return "gzip"
	case ".s2":
		return "s2"
	case ".sz":
		return "snappy"
	default:
		return ""
	}
}

//Why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type zstdql struct {
	*zstd.Decoder
}

//Close Closes the object. It can not be used after this call
func (z zstdql) Close() error {
	z.Decoder.Close()
	return nil
}

//Reader reads a formula file, line by line.
type Reader struct {
	f        *os.File
	z        io.ReadCloser
	h        *bufio.Reader
	buf      []byte
	filename string
	line     int
	readable bool
}

//New opens the formula file name for reading.
func New(name string) (*Reader, error) {
	R := new(Reader)
	R.filename = name
	var err error
	R.f, err = os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"New"}, true}
	}
	var in io.Reader = R.f
	switch compression(name) {
	case "zstd":
		d, err := zstd.NewReader(R.f)
		if err != nil {
			R.f.Close()
			return nil, Error{WrongFormat + ": " + err.Error(), name, []string{"New"}, true}
		}
		R.z = zstdql{d}
	case "gzip":
		g, err := gzip.NewReader(R.f)
		if err != nil {
			R.f.Close()
			return nil, Error{WrongFormat + ": " + err.Error(), name, []string{"New"}, true}
		}
		R.z = g
	case "s2":
		R.z = io.NopCloser(s2.NewReader(R.f))
	case "snappy":
		R.z = io.NopCloser(snappy.NewReader(R.f))
	}
	if R.z != nil {
		in = R.z
	}
	R.h = bufio.NewReader(in)
	R.readable = true
	return R, nil
}

//Readable returns true if there might still be lines to read.
func (R *Reader) Readable() bool {
	return R.readable
}

//Line returns the number (starting from 1) of the line last returned by Next.
func (R *Reader) Line() int {
	return R.line
}

//FileName returns the name of the file being read.
func (R *Reader) FileName() string {
	return R.filename
}

//Close closes the file. The Reader can not be used after this call.
func (R *Reader) Close() {
	if R == nil || !R.readable {
		return
	}
	if R.z != nil {
		R.z.Close()
	}
	R.f.Close()
	R.readable = false
}

//Next returns the next non-blank line of the file, without the line break.
//The returned slice is only valid until the next call to Next.
//When the file ends, the error returned implements mf.LastLineError, and the
//file is closed.
func (R *Reader) Next() ([]byte, error) {
	if !R.readable {
		return nil, Error{ReaderUnIni, R.filename, []string{"Next"}, true}
	}
	for {
		R.buf = R.buf[:0]
		var err error
		var chunk []byte
		for {
			chunk, err = R.h.ReadSlice('\n')
			R.buf = append(R.buf, chunk...)
			if err != bufio.ErrBufferFull {
				break
			}
		}
		if err == io.EOF && len(R.buf) == 0 {
			R.Close()
			return nil, newLastLineError(R.filename, "Next")
		}
		if err != nil && err != io.EOF {
			return nil, Error{ReadError + ": " + err.Error(), R.filename, []string{"Next"}, true}
		}
		R.line++
		l := trimNewline(R.buf)
		if isBlank(l) {
			continue
		}
		return l, nil
	}
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}

func isBlank(b []byte) bool {
	for _, v := range b {
		if v != ' ' && v != '\t' {
			return false
		}
	}
	return true
}

//ReadAll returns all the non-blank lines in the formula file name.
func ReadAll(name string) ([]string, error) {
	R, err := New(name)
	if err != nil {
		return nil, errDecorate(err, "ReadAll")
	}
	defer R.Close()
	ret := make([]string, 0, 1024)
	for {
		l, err := R.Next()
		if err != nil {
			if _, ok := err.(mf.LastLineError); ok {
				break
			}
			return nil, errDecorate(err, "ReadAll")
		}
		ret = append(ret, string(l))
	}
	return ret, nil
}

//Errors

//errDecorate is a helper function that asserts that the error
//implements mf.Error and decorates the error with the caller's name before returning it.
//if used with a non-mf.Error error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.deco = append(err2.deco, caller)
	return err2
}

//Error is the general structure for formula file errors. It fullfills mf.Error and mf.FileError
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("formula file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	//E is a copy, so the decoration is only kept in the returned slice.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing reader or writer was associated
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file (always "mf") associated to the error
func (err Error) Format() string { return "mf" }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	ReaderUnIni  = "Reader object uninitialized or already closed"
	WriterUnIni  = "Writer object uninitialized or already closed"
	ReadError    = "Error reading line"
	WriteError   = "Error writing line"
	UnableToOpen = "Unable to open file"
	WrongFormat  = "Wrong compression format"
)

var (
	_ mf.FileError     = Error{}
	_ mf.LastLineError = lastLineError{}
)

//lastLineError implements mf.LastLineError
type lastLineError struct {
	deco     []string
	fileName string
}

//NormalLastLineTermination does nothing
func (E lastLineError) NormalLastLineTermination() {}

func (E lastLineError) FileName() string { return E.fileName }

func (E lastLineError) Error() string { return "EOF" }

func (E lastLineError) Critical() bool { return false }

func (E lastLineError) Format() string { return "mf" }

func (E lastLineError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newLastLineError(filename string, caller string) lastLineError {
	return lastLineError{fileName: filename, deco: []string{caller}}
}
