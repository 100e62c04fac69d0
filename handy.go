/*
 * handy.go, part of goMF.
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

//Some internal convenience functions for ASCII bytes.

func isBigLetter(b byte) bool {
	return 'A' <= b && b <= 'Z'
}

func isSmallLetter(b byte) bool {
	return 'a' <= b && b <= 'z'
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isAlphanumeric(b byte) bool {
	return isDigit(b) || isSmallLetter(b) || isBigLetter(b)
}

//isPunctuation returns true for the punctuation marks a formula may contain.
//Only ( and ) change the meaning of the formula, the rest are either component
//separators (.) or charge notation ([ ] + -).
func isPunctuation(b byte) bool {
	switch b {
	case '(', ')', '+', '-', '.', '[', ']':
		return true
	}
	return false
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

//trimBounds returns the indexes (start inclusive, end exclusive) of
//buf[start:end] without leading or trailing ASCII whitespace.
func trimBounds(buf []byte, start, end int) (int, int) {
	for start < end && isSpace(buf[start]) {
		start++
	}
	for end > start && isSpace(buf[end-1]) {
		end--
	}
	return start, end
}
