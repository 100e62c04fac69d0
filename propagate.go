/*
 * propagate.go, part of goMF.
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

//propagate multiplies the coefficients found by scan by the group coefficients
//of the formula. There are 2 types of group coefficients:
//
//	At the beginning: 5Cl or O.5Cl. These are applied with scaleForward.
//	After parenthesis: (CO)2. These are applied with scaleBackward.
//
//For 2H2O.(NaCl)5:
//
//	MF:             2|H|2|O|.|(|N|a|C|l|)|5
//	Coeffs (scan):  0|2|0|1|0|0|1|0|1|0|0|0
//	Coeffs (after): 0|4|0|2|0|0|5|0|5|0|0|0
//
//Brackets are charge delimiters, not groups. A number after a closing bracket
//is the magnitude of the charge, as in [Fe(CN)6]3-, and is not applied to anything.
func propagate(mf []byte, coeffs []uint32) error {
	var err error
	var g uint32
	depth := 0
	for i := 0; i < len(mf); {
		start := i
		g, i, err = readCoeff(mf, i)
		if err != nil {
			return err
		}
		if err = scaleForward(mf, start, depth, coeffs, g); err != nil {
			return err
		}
		//letters and the coefficients right after them were taken care of by scan
		for i < len(mf) && isAlphanumeric(mf[i]) {
			i++
		}
		if i >= len(mf) {
			break
		}
		switch mf[i] {
		case '(':
			depth++
			i++
		case ')':
			if depth == 0 {
				return parsingError(UnmatchedParens, "propagate")
			}
			chunkEnd := i - 1
			g, i, err = readCoeff(mf, i+1)
			if err != nil {
				return err
			}
			if err = scaleBackward(mf, chunkEnd, depth, coeffs, g); err != nil {
				return err
			}
			depth--
		case ']':
			if _, i, err = readCoeff(mf, i+1); err != nil {
				return err
			}
		default: // . [ + -
			i++
		}
	}
	if depth != 0 {
		return parsingError(UnmatchedParens, "propagate")
	}
	return nil
}

//scaleForward multiplies by g the coefficients from lo until the group that contains lo closes,
//or until a dot at the same depth as lo ends the component.
func scaleForward(mf []byte, lo, depth int, coeffs []uint32, g uint32) error {
	if g == 1 {
		return nil //usually the case, people rarely put coefficients in front of a formula.
	}
	d := depth
	for ; lo < len(mf) && d >= depth; lo++ {
		switch mf[lo] {
		case '(':
			d++
		case ')':
			d--
		case '.':
			if d == depth {
				return nil
			}
		}
		if err := scale(coeffs, lo, g); err != nil {
			return err
		}
	}
	return nil
}

//scaleBackward multiplies by g the coefficients from hi (inclusive) back to the
//opening parenthesis of the group that hi+1 closes.
func scaleBackward(mf []byte, hi, depth int, coeffs []uint32, g uint32) error {
	if g == 1 {
		return nil
	}
	d := depth
	for ; hi >= 0 && d <= depth; hi-- {
		switch mf[hi] {
		case '(':
			d++
		case ')':
			d--
		}
		if err := scale(coeffs, hi, g); err != nil {
			return err
		}
	}
	return nil
}

func scale(coeffs []uint32, i int, g uint32) error {
	c := uint64(coeffs[i]) * uint64(g)
	if c > math.MaxUint32 {
		return parsingError(CoefficientTooBig, "scale")
	}
	coeffs[i] = uint32(c)
	return nil
}
