/*
 * interfaces.go, part of goMF.
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

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call adds the string to the decoration slice, and returns the resulting slice. If passed an empty string, it should just return the current value, not add the empty string to the slice.
	//The decoration slice should contain a list of functions in the calling stack, plus, for each function any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}

// FileError is the interface for errors in reading or writing formula files.
type FileError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastLineError has a useless function to distinguish the harmless errors (i.e. the end of a formula file) so  they can be
// filtered in a typeswitch that looks for this interface.
type LastLineError interface {
	FileError
	NormalLastLineTermination() //does nothing, just to separate this interface from other FileError's
}
