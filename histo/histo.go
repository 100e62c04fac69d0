/*
 * histo.go, part of goMF.
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

//Package histo collects histograms and simple statistics over the atom counts of
//sets of formulas.
package histo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	mf "github.com/rmera/gomf"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Data is a histogram. dividers has one element more than histo: histo[i] counts
//the values v for which dividers[i] <= v < dividers[i+1]. Values outside
//the dividers are not counted.
type Data struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}{
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a struct {
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.Dividers) != len(a.Histo)+1 {
		return fmt.Errorf("goMF/histo: %d dividers for %d bins", len(a.Dividers), len(a.Histo))
	}
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}

//String prints a -hopefully- pretty string representation of
//the histogram, in 3 lines of text.
func (D *Data) String() string {
	ret := fmt.Sprintf("Normalized: %v, TotalData: %d\n", D.normalized, D.total)
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.0f-%4.0f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

//NewData returns a new histogram from the dividers and rawdata given.
//rawdata can be nil. In that case, an empty histogram is created.
//Panics if there are less than 2 dividers, or if they are not sorted.
func NewData(dividers []float64, rawdata []float64) *Data {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		panic("goMF/histo.NewData: At least 2 sorted dividers are needed")
	}
	d := new(Data)
	//copied so nobody can change them from outside
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(rawdata)
	}
	return d
}

//AddData adds the given data point(s) to the histogram
func (D *Data) AddData(point ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	for _, v := range point {
		//the index of the first divider larger than v
		j := sort.SearchFloat64s(D.dividers, v)
		if j < len(D.dividers) && D.dividers[j] == v {
			j++
		}
		if j == 0 || j == len(D.dividers) {
			continue //out of range
		}
		D.histo[j-1]++
	}
	D.total += len(point)
	if norma {
		D.Normalize()
	}
}

//Total returns the number of points added to the histogram,
//including those out of the range of the dividers.
func (D *Data) Total() int {
	return D.total
}

//Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize normalizes the histogram
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize un-normalizes the histogram
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	if normalize {
		n = 1 / n
	}
	D.normalized = normalize
	floats.Scale(n, D.histo)
}

//Dividers returns a copy of the dividers of the histogram
func (D *Data) Dividers() []float64 {
	return append([]float64(nil), D.dividers...)
}

//View returns the histogram itself, not a copy.
func (D *Data) View() []float64 {
	return D.histo
}

//Sum returns the sum of all bins.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//ReHisto replaces the contents of the histogram with the histogram of rawdata.
//rawdata is sorted in the process.
func (D *Data) ReHisto(rawdata []float64) {
	D.total = len(rawdata)
	sort.Float64s(rawdata)
	//stat.Histogram just panics instead of omitting the values that are off limits
	//so we remove them here before the call.
	maxi := sort.SearchFloat64s(rawdata, D.dividers[len(D.dividers)-1])
	mini := sort.SearchFloat64s(rawdata, D.dividers[0])
	rawdata = rawdata[mini:maxi]
	D.histo = stat.Histogram(nil, D.dividers, rawdata, nil)
	D.normalized = false
}

//Composition keeps a histogram of the count of each element over a set of formulas,
//and the raw counts for the statistics.
type Composition struct {
	dividers []float64
	elements [mf.NElements]*Data
	counts   [mf.NElements][]float64
	totals   []float64
	present  [mf.NElements]int
	n        int
}

//NewComposition returns an empty Composition whose histograms all have the given dividers.
func NewComposition(dividers []float64) *Composition {
	C := new(Composition)
	C.dividers = append([]float64(nil), dividers...)
	for i := range C.elements {
		C.elements[i] = NewData(C.dividers, nil)
	}
	return C
}

//IntDividers returns dividers for a histogram with one bin for each integer from 0 to max-1
//and a last bin for max or more. A max smaller than 1 is taken as 1.
func IntDividers(max int) []float64 {
	if max < 1 {
		max = 1
	}
	ret := make([]float64, max+2)
	floats.Span(ret[:max+1], 0, float64(max))
	ret[max+1] = float64(1<<53)
	return ret
}

//AddCounts adds the atom counts of one formula to the composition.
func (C *Composition) AddCounts(counts *mf.AtomCounts) {
	for e, c := range counts {
		v := float64(c)
		C.elements[e].AddData(v)
		C.counts[e] = append(C.counts[e], v)
		if c > 0 {
			C.present[e]++
		}
	}
	C.totals = append(C.totals, float64(counts.Total()))
	C.n++
}

//Len returns the number of formulas added.
func (C *Composition) Len() int {
	return C.n
}

//Element returns the histogram for element e. It is not a copy.
func (C *Composition) Element(e mf.Element) *Data {
	return C.elements[e]
}

//Totals returns the total number of atoms in each formula added, in the order they were added.
func (C *Composition) Totals() []float64 {
	return append([]float64(nil), C.totals...)
}

//Frequency returns, for each element, the fraction of formulas that contain it.
func (C *Composition) Frequency() []float64 {
	ret := make([]float64, mf.NElements)
	if C.n == 0 {
		return ret
	}
	for i, v := range C.present {
		ret[i] = float64(v)
	}
	floats.Scale(1/float64(C.n), ret)
	return ret
}

//MeanStd returns the mean and standard deviation of the count of element e
//over all the formulas added. The standard deviation is NaN for less than 2 formulas.
func (C *Composition) MeanStd(e mf.Element) (float64, float64) {
	if C.n == 0 {
		return 0, 0
	}
	return stat.MeanStdDev(C.counts[e], nil)
}

//Summary returns a text table with the frequency, mean and standard deviation
//of the count of each element present in at least one formula, most frequent first.
func (C *Composition) Summary() string {
	freq := C.Frequency()
	idx := make([]int, len(freq))
	//floats.Argsort sorts in increasing order, and changes the slice.
	f := append([]float64(nil), freq...)
	floats.Argsort(f, idx)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-3s %9s %9s %9s\n", "El", "Freq", "Mean", "Std"))
	for i := len(idx) - 1; i >= 0; i-- {
		e := mf.Element(idx[i])
		if C.present[e] == 0 {
			continue
		}
		mean, std := C.MeanStd(e)
		sb.WriteString(fmt.Sprintf("%-3s %9.4f %9.3f %9.3f\n", e.Symbol(), freq[e], mean, std))
	}
	return sb.String()
}
