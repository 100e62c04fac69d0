/*
 * parser.go, part of goMF.
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

import "sync"

//Parser parses molecular formulas of formats like H2O, 2H2O, (H2O)2, H2O.4NaCl, (H2O.(NaCl)3)2
//or [Fe(CN)6]3-. It keeps its buffers between calls, so parsing many formulas with one
//Parser avoids most allocations.
//A Parser is NOT safe for concurrent use. Use one per goroutine, or the package-level Parse.
type Parser struct {
	//both always have the same length, the length of the formula being parsed.
	//elements[i] only means something where coeffs[i] != 0
	elements []Element
	coeffs   []uint32
}

//NewParser returns a ready-to-use Parser.
func NewParser() *Parser {
	return new(Parser)
}

//reset prepares the buffers for a formula of n bytes.
func (P *Parser) reset(n int) {
	if cap(P.coeffs) < n {
		P.coeffs = make([]uint32, n)
		P.elements = make([]Element, n)
		return
	}
	P.coeffs = P.coeffs[:n]
	P.elements = P.elements[:n]
	clear(P.coeffs)
	clear(P.elements)
}

//Parse returns the atom counts for the formula. Leading and trailing
//ASCII whitespace is ignored.
func (P *Parser) Parse(formula string) (AtomCounts, error) {
	return P.ParseBytes([]byte(formula))
}

//ParseBytes returns the atom counts for the ASCII-encoded formula.
func (P *Parser) ParseBytes(formula []byte) (AtomCounts, error) {
	return P.ParseChunk(formula, 0, len(formula))
}

//ParseChunk parses the formula in buf[start:end]. The formula may be only a part of buf,
//as when buf is a whole file, or a line with leading spaces.
func (P *Parser) ParseChunk(buf []byte, start, end int) (AtomCounts, error) {
	if start < 0 || end > len(buf) || start > end {
		panic("goMF: ParseChunk bounds out of range")
	}
	start, end = trimBounds(buf, start, end)
	if start == end {
		return AtomCounts{}, parsingError(EmptyFormula, "Parse")
	}
	mf := buf[start:end]
	P.reset(len(mf))
	if err := scan(mf, P.elements, P.coeffs); err != nil {
		return AtomCounts{}, invalidFormula(mf, err)
	}
	if err := propagate(mf, P.coeffs); err != nil {
		return AtomCounts{}, invalidFormula(mf, err)
	}
	return combine(P.elements, P.coeffs), nil
}

var parsers = sync.Pool{
	New: func() any { return NewParser() },
}

//Parse returns the atom counts for the formula. Unlike the Parser method, it is
//safe to call from many goroutines at the same time.
func Parse(formula string) (AtomCounts, error) {
	P := parsers.Get().(*Parser)
	defer parsers.Put(P)
	return P.Parse(formula)
}

//MustParse is like Parse but panics on error. Meant for formulas known at compile time.
func MustParse(formula string) AtomCounts {
	c, err := Parse(formula)
	if err != nil {
		panic(err.Error())
	}
	return c
}
