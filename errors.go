/*
 * errors.go, part of goMF.
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

package mf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

//Kind tells what sort of problem an *Error reports.
type Kind int

const (
	//Parsing errors come from malformed formulas: unexpected characters, unbalanced
	//parentheses, empty input, coefficients too large to hold.
	Parsing Kind = iota
	//UnknownElement errors come from well-formed symbols that are not in the table.
	UnknownElement
)

func (K Kind) String() string {
	switch K {
	case Parsing:
		return "Parsing"
	case UnknownElement:
		return "UnknownElement"
	default:
		return "Kind(" + strconv.Itoa(int(K)) + ")"
	}
}

//Messages for the errors that don't carry extra information.
const (
	EmptyFormula       = "Empty Molecular Formula"
	UnmatchedParens    = "The opening and closing parentheses don't match."
	CoefficientTooBig  = "Coefficient overflow"
	invalidFormulaTmpl = "Invalid Molecular Formula: %s. Details: %s"
)

//MFError is the error returned by the goMF parser and symbol table. It fulfills Error.
type MFError struct {
	message string
	kind    Kind
	formula string //the whole formula, for errors that have been wrapped. Empty otherwise
	deco    []string
	cause   error
}

func (E *MFError) Error() string {
	if E.cause != nil {
		return fmt.Sprintf(invalidFormulaTmpl, E.formula, E.cause.Error())
	}
	return E.message
}

//Decorate adds new information to the error
func (E *MFError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Kind returns the kind of the error.
func (E *MFError) Kind() Kind { return E.kind }

//Formula returns the formula that failed to parse, or an empty string if
//the error was not produced while parsing a whole formula.
func (E *MFError) Formula() string { return E.formula }

//Unwrap returns the lower-level error, if any.
func (E *MFError) Unwrap() error { return E.cause }

//KindOf returns the Kind of err, if err is, or wraps, an *MFError.
func KindOf(err error) (Kind, bool) {
	var e *MFError
	if errors.As(err, &e) {
		return e.kind, true
	}
	return 0, false
}

func parsingError(msg string, deco ...string) *MFError {
	return &MFError{message: msg, kind: Parsing, deco: deco}
}

func unknownElement(symbol []byte) *MFError {
	return &MFError{message: "Unknown chemical symbol: " + bytes2String(symbol), kind: UnknownElement, deco: []string{"LookupElement"}}
}

func unexpectedByte(b byte) *MFError {
	if b >= 0x80 {
		return parsingError("Unexpected symbol: "+bytes2String([]byte{b}), "scan")
	}
	return parsingError(fmt.Sprintf("Unexpected symbol: %q", rune(b)), "scan")
}

//invalidFormula wraps a lower level error with the text of the whole formula.
//The result is always of kind Parsing.
func invalidFormula(formula []byte, cause error) *MFError {
	E := &MFError{kind: Parsing, formula: bytes2String(formula), cause: cause}
	E.Decorate("Parse")
	return E
}

//bytes2String returns the ASCII bytes as a string, or a description of
//the raw bytes if they are not ASCII.
func bytes2String(ascii []byte) string {
	for _, b := range ascii {
		if b >= 0x80 {
			s := make([]string, len(ascii))
			for i, v := range ascii {
				s[i] = strconv.Itoa(int(v))
			}
			return "Invalid ASCII sequence: [" + strings.Join(s, ",") + "]"
		}
	}
	return string(ascii)
}
