/*
 * counts.go, part of goMF.
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
	"strconv"
	"strings"
)

//AtomCounts holds how many atoms of each element a formula has. The index is the Element.
//The zero value is a valid, empty, AtomCounts.
type AtomCounts [NElements]uint64

//combine adds each non-zero coefficient to the count of the element found at its position.
//A 0 coefficient (as in 0H2O) just adds nothing.
func combine(elements []Element, coeffs []uint32) AtomCounts {
	var ret AtomCounts
	for i, c := range coeffs {
		if c != 0 {
			ret[elements[i]] += uint64(c)
		}
	}
	return ret
}

//Format returns the formula for the counts, with the elements in table order.
//Elements with a 0 count are omitted, and so is a count of 1. H2O and HOH
//are both formatted as H2O.
func Format(counts *AtomCounts) string {
	var sb strings.Builder
	for e, c := range counts {
		if c == 0 {
			continue
		}
		sb.WriteString(symbols[e])
		if c > 1 {
			sb.WriteString(strconv.FormatUint(c, 10))
		}
	}
	return sb.String()
}

func (A AtomCounts) String() string {
	return Format(&A)
}

//Count returns the number of atoms of element e.
func (A *AtomCounts) Count(e Element) uint64 {
	return A[e]
}

//CountOf returns the number of atoms of the element with the given symbol.
func (A *AtomCounts) CountOf(symbol string) (uint64, error) {
	e, err := LookupElement(symbol)
	if err != nil {
		return 0, err
	}
	return A[e], nil
}

//Total returns the total number of atoms.
func (A *AtomCounts) Total() uint64 {
	var t uint64
	for _, c := range A {
		t += c
	}
	return t
}

//IsZero returns true if there are no atoms at all, as for 0H2O.
func (A *AtomCounts) IsZero() bool {
	return A.Total() == 0
}

//Add adds the counts in B to the receiver.
func (A *AtomCounts) Add(B *AtomCounts) {
	for i, c := range B {
		A[i] += c
	}
}

//Scale multiplies all the counts in the receiver by g.
func (A *AtomCounts) Scale(g uint64) {
	for i := range A {
		A[i] *= g
	}
}

//Map returns the non-zero counts, keyed by symbol.
func (A *AtomCounts) Map() map[string]uint64 {
	ret := make(map[string]uint64)
	for e, c := range A {
		if c != 0 {
			ret[symbols[e]] = c
		}
	}
	return ret
}

//Mass returns the average molar mass, in g/mol, of the atoms in the receiver.
func (A *AtomCounts) Mass() float64 {
	var m float64
	for e, c := range A {
		if c != 0 {
			m += masses[e] * float64(c)
		}
	}
	return m
}
