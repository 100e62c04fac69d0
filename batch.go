/*
 * batch.go, part of goMF.
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

import "runtime"

//ParseConc parses the formulas concurrently, using workers goroutines, each with
//its own Parser. If workers <= 0, runtime.NumCPU() goroutines are used.
//The i-th element of each returned slice corresponds to the i-th formula.
//errs[i] is nil if formulas[i] was parsed correctly.
func ParseConc(formulas []string, workers int) ([]AtomCounts, []error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(formulas) {
		workers = len(formulas)
	}
	counts := make([]AtomCounts, len(formulas))
	errs := make([]error, len(formulas))
	if workers == 0 {
		return counts, errs
	}
	chunk := (len(formulas) + workers - 1) / workers
	ended := make(chan bool, workers)
	launched := 0
	for lo := 0; lo < len(formulas); lo += chunk {
		hi := min(lo+chunk, len(formulas))
		launched++
		go func(lo, hi int) {
			P := NewParser()
			for i := lo; i < hi; i++ {
				counts[i], errs[i] = P.Parse(formulas[i])
			}
			ended <- true
		}(lo, hi)
	}
	for i := 0; i < launched; i++ {
		<-ended
	}
	return counts, errs
}
