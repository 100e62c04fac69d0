/*
 * parser_test.go, part of goMF.
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
	"strings"
	"testing"
)

var testParser = NewParser()

//mfTest parses mf with the shared test parser and returns the canonical formula.
func mfTest(Te *testing.T, mf string) string {
	Te.Helper()
	c, err := testParser.Parse(mf)
	if err != nil {
		Te.Fatalf("Unexpected error parsing %q: %v", mf, err)
	}
	return c.String()
}

func expectMF(Te *testing.T, cases [][2]string) {
	Te.Helper()
	for _, v := range cases {
		if got := mfTest(Te, v[0]); got != v[1] {
			Te.Errorf("%q: expected %q, got %q", v[0], v[1], got)
		}
	}
}

func TestSimpleMF(Te *testing.T) {
	expectMF(Te, [][2]string{
		{"H2O", "H2O"},
		{"HOH", "H2O"},
		{"C67H132N8O3", "H132C67O3N8"},
		{"NaCl", "ClNa"},
		{"H", "H"},
		{"H1", "H"},
	})
}

func TestComplicatedMF(Te *testing.T) {
	expectMF(Te, [][2]string{
		{"[(2H2O.NaCl)3S.N]2-", "H12O6NSCl3Na3"},
		{" [(2H2O.NaCl)3S.N]2- ", "H12O6NSCl3Na3"},
	})
	c, err := Parse("[(2H2O.NaCl)3S.N]2-")
	if err != nil {
		Te.Fatal(err)
	}
	expected := map[string]uint64{"H": 12, "O": 6, "N": 1, "S": 1, "Cl": 3, "Na": 3}
	m := c.Map()
	if len(m) != len(expected) {
		Te.Errorf("Expected %v, got %v", expected, m)
	}
	for k, v := range expected {
		if m[k] != v {
			Te.Errorf("%s: expected %d, got %d", k, v, m[k])
		}
	}
}

func TestEmptyMF(Te *testing.T) {
	for _, v := range []string{"", " ", "  ", "\t\r\n"} {
		_, err := testParser.Parse(v)
		if err == nil {
			Te.Fatalf("%q: expected an error", v)
		}
		if err.Error() != EmptyFormula {
			Te.Errorf("%q: unexpected message %q", v, err.Error())
		}
		if k, ok := KindOf(err); !ok || k != Parsing {
			Te.Errorf("%q: expected a Parsing error, got %v", v, k)
		}
	}
}

func TestTrim(Te *testing.T) {
	expectMF(Te, [][2]string{
		{"  CH4CH4 ", "H8C2"},
		{"  (CH4).[CH]-  ", "H5C2"},
		{"H2O\r\n", "H2O"},
	})
}

func TestParenthesis(Te *testing.T) {
	expectMF(Te, [][2]string{
		{"(CH4CH4)", "H8C2"},
		{"(CH4CH4)2", "H16C4"},
		{"C(CH4CH4)2", "H16C5"},
		{"(C(OH)2)2P", "H4C2O4P"},
		{"(C(2S)2O)2P", "C2O2PS8"}, //2 is followed by O, but this 2 should be applied to ()
		{"(C(OH))2(S(S))2P", "H2C2O2PS4"},
		{"((((((((((H))))))))))2", "H2"},
		{"Ca(OH)2", "H2O2Ca"},
		{"(CO)0", ""},
	})
}

func TestLeadingCoefficient(Te *testing.T) {
	expectMF(Te, [][2]string{
		{"2H2O", "H4O2"},
		{"0H2O", ""},
		{"5Cl.C", "CCl5"},
		{"O.5Cl", "OCl5"},
		{"(2H2O)3", "H12O6"},
	})
	c, err := Parse("0H2O")
	if err != nil {
		Te.Fatal(err)
	}
	if !c.IsZero() {
		Te.Errorf("0H2O should give empty counts, got %v", c)
	}
}

func TestChargeIsIgnored(Te *testing.T) {
	expectMF(Te, [][2]string{
		{"[CH4CH4]+", "H8C2"},
		{"[CH4CH4]2+", "H8C2"},
		{"[Fe(CN)6]3-", "C6N6Fe"},
		{"NH4+", "H4N"},
	})
}

//Brackets only delimit charges. The number after ] is a charge, even if more atoms follow.
func TestBracketsAreNotGroups(Te *testing.T) {
	expectMF(Te, [][2]string{
		{"[CH4]2Na", "H4CNa"},
		{"[CH4]Na2", "H4CNa2"},
	})
}

//Brackets don't take part in the parenthesis matching, so they can interleave with parentheses.
func TestBracketsInterleaveWithParens(Te *testing.T) {
	expectMF(Te, [][2]string{
		{"([C)]", "C"},
		{"([CH2)3]", "H6C3"},
		{"[(C]2)", "C"},
	})
}

func TestDotsSeparateComponents(Te *testing.T) {
	expectMF(Te, [][2]string{
		{"NH3.CH3", "H6CN"},
		{"NH3.2CH3", "H9C2N"},
		{"2CH3.NH3", "H9C2N"},
		{"CuSO4.5H2O", "H10O9SCu"},
	})
}

func TestTwoLetterSymbolsAreGreedy(Te *testing.T) {
	c, err := Parse("Na")
	if err != nil {
		Te.Fatal(err)
	}
	if n, _ := c.CountOf("N"); n != 0 {
		Te.Errorf("Na was read as N + a")
	}
	if n, _ := c.CountOf("Na"); n != 1 {
		Te.Errorf("Expected 1 Na, got %d", n)
	}
}

func TestUnmatchedParenthesis(Te *testing.T) {
	for _, v := range []string{"(C", ")C", "C)", "C(", "(C))", "(C(OH)2(S(S))2P", ")C(", "((((((((((H)))))))))"} {
		_, err := testParser.Parse(v)
		if err == nil {
			Te.Errorf("%q: expected an error", v)
			continue
		}
		expected := fmt.Sprintf("Invalid Molecular Formula: %s. Details: %s", v, UnmatchedParens)
		if err.Error() != expected {
			Te.Errorf("%q: expected message %q, got %q", v, expected, err.Error())
		}
	}
}

func TestUnknownSymbol(Te *testing.T) {
	_, err := testParser.Parse("A")
	if err == nil {
		Te.Fatal("Expected an error for A")
	}
	if k, _ := KindOf(err); k != Parsing {
		Te.Errorf("Expected a Parsing error, got %v", k)
	}
	if err.Error() != "Invalid Molecular Formula: A. Details: Unknown chemical symbol: A" {
		Te.Errorf("Unexpected message: %s", err.Error())
	}
	if k, _ := KindOf(errors.Unwrap(err)); k != UnknownElement {
		Te.Errorf("Expected the cause to be an UnknownElement error, got %v", k)
	}
	var e *MFError
	if !errors.As(err, &e) || e.Formula() != "A" {
		Te.Errorf("Expected the error to carry the formula")
	}
}

func TestUnexpectedCharacter(Te *testing.T) {
	_, err := testParser.Parse("o")
	if err == nil {
		Te.Fatal("Expected an error for o")
	}
	if err.Error() != "Invalid Molecular Formula: o. Details: Unexpected symbol: 'o'" {
		Te.Errorf("Unexpected message: %s", err.Error())
	}
	for _, v := range []string{"=", "O=", "=C", "H2o", "C6H6,", "H\xff"} {
		_, err := testParser.Parse(v)
		if err == nil {
			Te.Errorf("%q: expected an error", v)
			continue
		}
		if k, _ := KindOf(err); k != Parsing {
			Te.Errorf("%q: expected a Parsing error, got %v", v, k)
		}
	}
	_, err = testParser.Parse("H\xff")
	if !strings.Contains(err.Error(), "Invalid ASCII sequence: [72,255]") {
		Te.Errorf("Non-ASCII formulas should be reported as raw bytes, got: %s", err.Error())
	}
	_, err = testParser.Parse("H\xc3\xa9")
	if err == nil || !strings.HasSuffix(err.Error(), "Details: Unexpected symbol: Invalid ASCII sequence: [195]") {
		Te.Errorf("A non-ASCII byte should be reported as a raw byte, got: %v", err)
	}
}

func TestCoefficientOverflow(Te *testing.T) {
	c := mfTest(Te, "H4294967295")
	if c != "H4294967295" {
		Te.Errorf("Expected H4294967295, got %s", c)
	}
	for _, v := range []string{"H4294967296", "(H65536)65536", "65536(H65536)", "99999999999999999999H"} {
		_, err := testParser.Parse(v)
		if err == nil {
			Te.Errorf("%q: expected an overflow error", v)
			continue
		}
		if !strings.HasSuffix(err.Error(), CoefficientTooBig) {
			Te.Errorf("%q: unexpected message %s", v, err.Error())
		}
	}
	//counts themselves are 64 bit, so many large coefficients can add up.
	big, err := Parse("H4294967295H4294967295")
	if err != nil {
		Te.Fatal(err)
	}
	if big.Count(0) != 2*4294967295 {
		Te.Errorf("Expected %d H, got %d", uint64(2*4294967295), big.Count(0))
	}
}

func TestGroupScalingEquivalence(Te *testing.T) {
	pairs := [][3]string{ //formula, equivalent unscaled formula, factor
		{"2H2O", "H2O", "2"},
		{"(CH4CH4)2", "CH4CH4", "2"},
		{"7(C(OH)2)", "C(OH)2", "7"},
		{"(NaCl.H2O)3", "NaCl.H2O", "3"},
	}
	for _, v := range pairs {
		scaled, err := Parse(v[0])
		if err != nil {
			Te.Fatal(err)
		}
		base, err := Parse(v[1])
		if err != nil {
			Te.Fatal(err)
		}
		var g uint64
		fmt.Sscan(v[2], &g)
		base.Scale(g)
		if scaled != base {
			Te.Errorf("%s != %s * %d: %v vs %v", v[0], v[1], g, scaled, base)
		}
	}
}

func TestOrderIndependence(Te *testing.T) {
	a, _ := Parse("NH3.CH3")
	b, _ := Parse("CH3.NH3")
	if a != b {
		Te.Errorf("NH3.CH3 and CH3.NH3 gave different counts: %v, %v", a, b)
	}
	c, _ := Parse("H132C67N8O3")
	d, _ := Parse("C67H132N8O3")
	if c != d {
		Te.Errorf("Reordered symbols gave different counts: %v, %v", c, d)
	}
}

//The buffers are reused, so a short formula after a long one must not see leftovers.
func TestParserReuse(Te *testing.T) {
	P := NewParser()
	for _, v := range [][2]string{{"C6H12O6.(NaCl)20", "H12C6O6Cl20Na20"}, {"H2", "H2"}, {"(CO)3", "C3O3"}, {"Xe", "Xe"}} {
		c, err := P.Parse(v[0])
		if err != nil {
			Te.Fatal(err)
		}
		if c.String() != v[1] {
			Te.Errorf("%q: expected %q, got %q", v[0], v[1], c.String())
		}
	}
	//an error must leave the parser usable
	if _, err := P.Parse("(C"); err == nil {
		Te.Errorf("Expected an error for (C")
	}
	if c, err := P.Parse("CH4"); err != nil || c.String() != "H4C" {
		Te.Errorf("Parser not usable after an error: %v %v", c, err)
	}
}

func TestParseChunk(Te *testing.T) {
	buf := []byte("xx  H2O  yy")
	c, err := testParser.ParseChunk(buf, 2, 9)
	if err != nil {
		Te.Fatal(err)
	}
	if c.String() != "H2O" {
		Te.Errorf("Expected H2O, got %s", c.String())
	}
	if _, err = testParser.ParseChunk(buf, 2, 4); err == nil || err.Error() != EmptyFormula {
		Te.Errorf("Expected an empty formula error, got %v", err)
	}
}

func TestMustParse(Te *testing.T) {
	if MustParse("H2SO4").String() != "H2O4S" {
		Te.Errorf("MustParse(H2SO4) gave %s", MustParse("H2SO4").String())
	}
	defer func() {
		if r := recover(); r == nil {
			Te.Errorf("MustParse should panic on invalid formulas")
		}
	}()
	MustParse("(")
}

func BenchmarkParse(b *testing.B) {
	P := NewParser()
	mfs := []string{"H2O", "C67H132N8O3", "[(2H2O.NaCl)3S.N]2-", "(C(OH))2(S(S))2P", "CuSO4.5H2O"}
	for i := 0; i < b.N; i++ {
		for _, v := range mfs {
			if _, err := P.Parse(v); err != nil {
				b.Fatal(err)
			}
		}
	}
}
