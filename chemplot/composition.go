/*
 * composition.go, part of goMF.
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

//Package chemplot draws plots for the composition of sets of formulas.
package chemplot

import (
	"fmt"
	"image/color"

	mf "github.com/rmera/gomf"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//FrequencyPlot draws a bar chart with the fraction of formulas that contain each element, for
//the top most frequent elements, and saves it to filename. The format is taken from the extension of
//filename (png, svg, pdf...). freq must have one value per element, as returned by histo.Composition.Frequency.
//Elements that are never present are not plotted even if they are among the top.
func FrequencyPlot(freq []float64, title, filename string, top int) error {
	if len(freq) != mf.NElements {
		return fmt.Errorf("goMF/chemplot.FrequencyPlot: %d frequencies given, %d expected", len(freq), mf.NElements)
	}
	if top < 1 {
		return fmt.Errorf("goMF/chemplot.FrequencyPlot: At least one element must be plotted, got top=%d", top)
	}
	f := append([]float64(nil), freq...)
	idx := make([]int, len(f))
	floats.Argsort(f, idx) //increasing order
	vals := make(plotter.Values, 0, top)
	names := make([]string, 0, top)
	for i := len(idx) - 1; i >= 0 && len(vals) < top; i-- {
		if f[i] <= 0 {
			break
		}
		vals = append(vals, f[i])
		names = append(names, mf.Element(idx[i]).Symbol())
	}
	if len(vals) == 0 {
		return fmt.Errorf("goMF/chemplot.FrequencyPlot: Nothing to plot")
	}
	p := basicPlot(title, "Element", "Fraction of formulas")
	bars, err := plotter.NewBarChart(vals, vg.Points(12))
	if err != nil {
		return err
	}
	r, g, b := colors(0, 1)
	bars.Color = color.RGBA{R: r, G: g, B: b, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)
	p.Y.Min = 0
	p.Y.Max = 1
	return p.Save(vg.Length(len(vals))*vg.Points(16)+2*vg.Inch, 4*vg.Inch, filename)
}

//TotalsPlot draws a histogram, with bins bins, of the total number of atoms per formula, and
//saves it to filename. The format is taken from the extension of filename.
func TotalsPlot(totals []float64, bins int, title, filename string) error {
	if len(totals) == 0 {
		return fmt.Errorf("goMF/chemplot.TotalsPlot: Nothing to plot")
	}
	if bins < 1 {
		return fmt.Errorf("goMF/chemplot.TotalsPlot: At least one bin is needed, got %d", bins)
	}
	p := basicPlot(title, "Atoms per formula", "Formulas")
	h, err := plotter.NewHist(plotter.Values(totals), bins)
	if err != nil {
		return err
	}
	r, g, b := colors(5, 6)
	h.FillColor = color.RGBA{R: r, G: g, B: b, A: 255}
	p.Add(h)
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
