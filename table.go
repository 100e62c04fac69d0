/*
 * table.go, part of goMF.
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

import "fmt"

//Element identifies a chemical element. It is NOT the atomic number, but the index
//of the element's symbol in the goMF symbol table, which is roughly sorted by how
//often the element appears in organic chemistry. Treat it as an opaque ID.
type Element uint8

//NElements is the number of elements goMF knows about, and the length of AtomCounts.
const NElements = 85

//The symbols, in Element order. Only elements that could actually show up in a
//molecular formula written by a chemist are here, so no Po, At, Rn, Fr, etc.
var symbols = [NElements]string{
	"H", "C", "O", "N", "P", "F", "S", "Br", "Cl", "Na", "Li", "Fe", "K", "Ca", "Mg", "Ni", "Al",
	"Pd", "Sc", "V", "Cu", "Cr", "Mn", "Co", "Zn", "Ga", "Ge", "As", "Se", "Ti", "Si", "Be", "B",
	"Kr", "Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Ru", "Rh", "Ag", "Cd", "In", "Sn", "Sb", "Te", "I",
	"Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "Tc", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg", "Tl", "Pb", "Bi", "Th", "Pa",
	"U", "He", "Ne", "Ar",
}

const (
	nBuckets   = 512
	bucketMask = nBuckets - 1
	//277 is one of the few multipliers that gives no collisions for the current
	//symbol list in a 512-bucket table.
	hashMultiplier = 277
)

//symbolTable is a perfect hash from a 1-2 byte symbol to its Element.
//Each symbol is stored padded to 2 bytes, with a 0 second byte for 1-letter symbols.
type symbolTable struct {
	buckets [nBuckets]Element
	padded  [NElements][2]byte
}

//the table is immutable after init, so any number of goroutines can read it.
var table = buildTable(symbols[:])

func symbolHash(b0, b1 byte) int {
	return ((int(b0) * hashMultiplier) ^ int(b1)) & bucketMask
}

//buildTable panics if 2 symbols fall in the same bucket. That means either the
//list outgrew the table or hashMultiplier needs to be re-tuned, and the program is wrong.
func buildTable(syms []string) *symbolTable {
	if len(syms) > NElements {
		panic(fmt.Sprintf("goMF: %d symbols given, the table holds %d", len(syms), NElements))
	}
	T := new(symbolTable)
	var taken [nBuckets]bool
	for i, s := range syms {
		if len(s) < 1 || len(s) > 2 {
			panic(fmt.Sprintf("goMF: Ill-formed element symbol %q", s))
		}
		T.padded[i][0] = s[0]
		if len(s) == 2 {
			T.padded[i][1] = s[1]
		}
		bucket := symbolHash(T.padded[i][0], T.padded[i][1])
		if taken[bucket] {
			panic(fmt.Sprintf("goMF: Symbol table collision: %s at element #%d, bucket %d", s, i, bucket))
		}
		taken[bucket] = true
		T.buckets[bucket] = Element(i)
	}
	return T
}

//lookup returns the element for the (padded) symbol b0b1, and false if there is no such element.
func (T *symbolTable) lookup(b0, b1 byte) (Element, bool) {
	e := T.buckets[symbolHash(b0, b1)]
	p := T.padded[e]
	if p[0] != b0 || p[1] != b1 {
		return 0, false
	}
	return e, true
}

//LookupElementBytes returns the Element with the 1 or 2-byte symbol given, or an
//error of kind UnknownElement.
func LookupElementBytes(symbol []byte) (Element, error) {
	var b1 byte
	switch len(symbol) {
	case 2:
		b1 = symbol[1]
		if b1 == 0 {
			break //a symbol can't have a 0 byte, and that would alias a 1-letter one.
		}
		fallthrough
	case 1:
		if e, ok := table.lookup(symbol[0], b1); ok {
			return e, nil
		}
	}
	return 0, unknownElement(symbol)
}

//LookupElement returns the Element with the symbol given, or an error
//of kind UnknownElement.
func LookupElement(symbol string) (Element, error) {
	return LookupElementBytes([]byte(symbol))
}

//Symbol returns the chemical symbol for the element. Panics if E is
//not a valid element.
func (E Element) Symbol() string {
	if int(E) >= NElements {
		panic(fmt.Sprintf("goMF: Element %d out of range", E))
	}
	return symbols[E]
}

func (E Element) String() string {
	if int(E) >= NElements {
		return fmt.Sprintf("Element(%d)", uint8(E))
	}
	return symbols[E]
}

//Symbols returns a copy of the symbol list, in Element order.
func Symbols() []string {
	ret := make([]string, NElements)
	copy(ret, symbols[:])
	return ret
}
