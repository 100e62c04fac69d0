/*
 * doc.go, part of goMF.
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

/*Package mf is the main package of the goMF library. It parses molecular formulas into
atom counts, and formats atom counts back into formulas.



	**goMF Capabilities**


    Parses formulas with group coefficients both before (2H2O) and after (Ca(OH)2)
	the group. Groups can be nested to any depth.

    Parses hydrates and other multi-component formulas, where the components are
	separated with dots: CuSO4.5H2O. The counts of all components are summed up.

    Accepts charge notation ([Fe(CN)6]3-, NH4+), which is ignored in the counts.

    Formats counts as a canonical formula, so formulas for the same set of atoms
	always produce the same string.

    Calculates molar masses.

    Reads formula files, plain or compressed, one formula per line (package mffile),
	and writes result files.

    Histograms of element counts for large sets of formulas (package histo), and
	plots of them (package chemplot).

    JSON output of the results, for use by other programs (package chemjson).


The element symbols are resolved with a perfect hash table built when the package is
initialized. The parser keeps its buffers between calls, so a Parser should be reused
for large sets of formulas, but not shared among goroutines. The package-level Parse
function and ParseConc are safe for concurrent use.*/
package mf
