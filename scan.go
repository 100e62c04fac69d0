/*
 * scan.go, part of goMF.
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

import "math"

//scan fills elements and coeffs for each position of mf where a symbol starts. The
//coefficients written are only the ones right after each symbol, group coefficients
//are applied later by propagate. Positions where no symbol starts keep a 0 coefficient.
//For 2H2O.(NaCl)5:
//
//	MF:       2|H|2|O|.|(|N|a|C|l|)|5
//	Elements: 0|0|0|2|0|0|9|0|8|0|0|0
//	Coeffs:   0|2|0|1|0|0|1|0|1|0|0|0
func scan(mf []byte, elements []Element, coeffs []uint32) error {
	for i := 0; i < len(mf); {
		b := mf[i]
		switch {
		case isBigLetter(b):
			var err error
			i, err = scanSymbol(mf, i, elements, coeffs)
			if err != nil {
				return err
			}
		case isDigit(b) || isPunctuation(b): //digits here belong to groups, (xx)N or Nxx
			i++
		default:
			return unexpectedByte(b)
		}
	}
	return nil
}

//scanSymbol reads the symbol starting at i, and its coefficient, if any.
//It returns the index of the first byte after both.
func scanSymbol(mf []byte, i int, elements []Element, coeffs []uint32) (int, error) {
	pos := i
	b0, b1 := mf[i], byte(0)
	i++
	if i < len(mf) && isSmallLetter(mf[i]) {
		b1 = mf[i]
		i++
	}
	e, ok := table.lookup(b0, b1)
	if !ok {
		if b1 == 0 {
			return i, unknownElement(mf[pos : pos+1])
		}
		return i, unknownElement(mf[pos : pos+2])
	}
	elements[pos] = e
	var err error
	coeffs[pos], i, err = readCoeff(mf, i)
	return i, err
}

//readCoeff reads the number starting at i. If there is no number there
//it returns 1. It also returns the index of the first byte after the number.
func readCoeff(mf []byte, i int) (uint32, int, error) {
	if i >= len(mf) || !isDigit(mf[i]) {
		return 1, i, nil
	}
	var c uint64
	for ; i < len(mf) && isDigit(mf[i]); i++ {
		c = c*10 + uint64(mf[i]-'0')
		if c > math.MaxUint32 {
			return 0, i, parsingError(CoefficientTooBig, "readCoeff")
		}
	}
	return uint32(c), i, nil
}
