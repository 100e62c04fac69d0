/*
 * json.go, part of goMF.
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

package chemjson

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"strings"

	mf "github.com/rmera/gomf"
)

//A ready-to-serialize container for the result of parsing one formula.
type Result struct {
	Formula   string
	Canonical string            `json:",omitempty"`
	Counts    map[string]uint64 `json:",omitempty"`
	Mass      float64           `json:",omitempty"`
	Error     *Error            `json:",omitempty"`
}

//NewResult builds a Result for formula. If err is not nil, only the formula and the error
//are set, so no partial counts ever get serialized.
func NewResult(formula string, counts *mf.AtomCounts, err error) *Result {
	r := &Result{Formula: formula}
	if err != nil {
		r.Error = NewError("parsing", "mf.Parse", err)
		return r
	}
	r.Canonical = counts.String()
	r.Counts = counts.Map()
	r.Mass = counts.Mass()
	return r
}

//An easily JSON-serializable error type.
type Error struct {
	deco      []string
	IsError   bool   //If this is false (no error) all the other fields will be at their zero-values.
	InParsing bool   //Was it the formula itself?
	InReading bool   //Or reading the input?
	InOutput  bool   //was it in preparing the output?
	Kind      string `json:",omitempty"` //Only for parsing errors.
	Function  string //which go function gave the error
	Message   string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

//Takes an error and some additional info to create a json-marshal-ble error.
//where is one of "parsing", "reading" or "output".
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "reading":
		jerr.InReading = true
	case "output":
		jerr.InOutput = true
	default:
		jerr.InParsing = true
	}
	if k, ok := mf.KindOf(err); ok {
		jerr.Kind = k.String()
	}
	var e mf.Error
	if errors.As(err, &e) {
		jerr.deco = append(jerr.deco, e.Decorate("")...)
	}
	jerr.Function = function
	jerr.Message = err.Error()
	return jerr
}

//Information on a whole run, to be passed back to the calling program.
type Info struct {
	Formulas  int
	Failed    int
	Hydrogens uint64
	Seconds   float64
	Frequency map[string]float64 `json:",omitempty"`
}

//Send Marshals the info and writes to out, returns an error or nil
func (J *Info) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(J); err != nil {
		return NewError("output", "Info.Send", err)
	}
	return nil
}

//Encoder writes Results as newline-delimited JSON, one per line.
type Encoder struct {
	enc *json.Encoder
	n   int
}

//NewEncoder returns an Encoder writing to out.
func NewEncoder(out io.Writer) *Encoder {
	return &Encoder{enc: json.NewEncoder(out)}
}

//Encode writes r to the underlying writer.
func (E *Encoder) Encode(r *Result) *Error {
	if err := E.enc.Encode(r); err != nil {
		return NewError("output", "Encoder.Encode", err)
	}
	E.n++
	return nil
}

//Count returns the number of results written so far.
func (E *Encoder) Count() int {
	return E.n
}

//DecodeResults decodes a stream of newline-delimited results, until the stream ends.
func DecodeResults(stream *bufio.Reader) ([]*Result, *Error) {
	const funcname = "DecodeResults" //for the error
	ret := make([]*Result, 0, 10)
	for {
		line, err := stream.ReadBytes('\n')
		if len(strings.TrimSpace(string(line))) > 0 {
			r := new(Result)
			if err2 := json.Unmarshal(line, r); err2 != nil {
				return ret, NewError("reading", funcname, err2)
			}
			ret = append(ret, r)
		}
		if err == io.EOF {
			return ret, nil
		}
		if err != nil {
			return ret, NewError("reading", funcname, err)
		}
	}
}
