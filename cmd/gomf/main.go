/*
 * main.go, part of goMF.
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

//gomf parses a file with one molecular formula per line, many times, and reports
//how fast it went. It can also write the results as CSV or JSON, print statistics
//on the composition of the formulas and plot them.
//
//	gomf [flags] FILE
//
//FILE can be compressed with zstd (.zst), gzip (.gz), s2 (.s2) or snappy (.sz).
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	mf "github.com/rmera/gomf"
	"github.com/rmera/gomf/chemjson"
	"github.com/rmera/gomf/chemplot"
	"github.com/rmera/gomf/histo"
	"github.com/rmera/gomf/mffile"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	repeats   int
	warmup    bool
	workers   int
	csv       string
	json      bool
	stats     bool
	plot      string
	keepGoing bool
}

func parseFlags(args []string, stderr io.Writer) (*options, string, error) {
	o := new(options)
	fs := flag.NewFlagSet("gomf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.repeats, "repeats", 50, "Parse the whole file this many times")
	fs.BoolVar(&o.warmup, "warmup", true, "Do one untimed pass before the timed ones")
	fs.IntVar(&o.workers, "workers", 0, "Parse with this many goroutines. 0 uses a single parser, a negative number uses all CPUs")
	fs.StringVar(&o.csv, "csv", "", "Write the results to this CSV file (compressed according to the extension)")
	fs.BoolVar(&o.json, "json", false, "Print the results as JSON, one per line, to stdout")
	fs.BoolVar(&o.stats, "stats", false, "Print statistics on the composition of the formulas")
	fs.StringVar(&o.plot, "plot", "", "Write PREFIX_freq.png and PREFIX_totals.png with plots of the composition")
	fs.BoolVar(&o.keepGoing, "keep-going", false, "Log invalid formulas and go on, instead of exiting")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: gomf [flags] FILE\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, "", fmt.Errorf("exactly one input file is needed, got %d", fs.NArg())
	}
	if o.repeats < 1 {
		return nil, "", fmt.Errorf("-repeats must be at least 1, got %d", o.repeats)
	}
	return o, fs.Arg(0), nil
}

//parseAll parses every line, with P or, if workers is not 0, with ParseConc.
func parseAll(P *mf.Parser, lines []string, workers int) ([]mf.AtomCounts, []error) {
	if workers != 0 {
		return mf.ParseConc(lines, workers)
	}
	counts := make([]mf.AtomCounts, len(lines))
	errs := make([]error, len(lines))
	for i, v := range lines {
		counts[i], errs[i] = P.Parse(v)
	}
	return counts, errs
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "gomf: ", 0)
	o, name, err := parseFlags(args, stderr)
	if err != nil {
		if err != flag.ErrHelp {
			logger.Print(err)
		}
		return 2
	}
	lines, err := mffile.ReadAll(name)
	if err != nil {
		logger.Print(err)
		return 1
	}
	var nbytes int
	for _, v := range lines {
		nbytes += len(v) + 1
	}
	hydrogen, _ := mf.LookupElement("H")
	P := mf.NewParser()
	var counts []mf.AtomCounts
	var errs []error
	valid := len(lines)
	//check looks at the results of the first pass, and logs the invalid formulas.
	check := func(c []mf.AtomCounts, e []error) bool {
		counts, errs = c, e
		valid = 0
		for i, err := range e {
			if err == nil {
				valid++
				continue
			}
			logger.Printf("line %d: %s", i+1, err)
			if !o.keepGoing {
				return false
			}
		}
		return true
	}
	if o.warmup {
		if !check(parseAll(P, lines, o.workers)) {
			return 1
		}
	}
	var hydrogens uint64
	start := time.Now()
	for i := 0; i < o.repeats; i++ {
		c, e := parseAll(P, lines, o.workers)
		if counts == nil && !check(c, e) {
			return 1
		}
		for j := range c {
			if e[j] == nil {
				hydrogens += c[j].Count(hydrogen)
			}
		}
	}
	secs := time.Since(start).Seconds()
	//JSON goes to stdout, so nothing else should.
	report := stdout
	if o.json {
		report = stderr
	}
	nmf := valid * o.repeats
	fmt.Fprintf(report, "%d MFs, %d hydrogens in %.3f s (%.0f MF/s, %.2f MB/s)\n", nmf, hydrogens, secs, float64(nmf)/secs, float64(nbytes*o.repeats)/secs/1e6)
	if o.csv != "" {
		if err := writeCSV(o.csv, lines, counts, errs); err != nil {
			logger.Print(err)
			return 1
		}
	}
	var comp *histo.Composition
	if o.stats || o.plot != "" || o.json {
		comp = histo.NewComposition(histo.IntDividers(20))
		for i := range counts {
			if errs[i] == nil {
				comp.AddCounts(&counts[i])
			}
		}
	}
	if o.json {
		enc := chemjson.NewEncoder(stdout)
		for i, v := range lines {
			if jerr := enc.Encode(chemjson.NewResult(v, &counts[i], errs[i])); jerr != nil {
				logger.Print(jerr)
				return 1
			}
		}
		info := &chemjson.Info{Formulas: len(lines), Failed: len(lines) - valid, Hydrogens: hydrogens / uint64(o.repeats), Seconds: secs, Frequency: make(map[string]float64)}
		for i, f := range comp.Frequency() {
			if f > 0 {
				info.Frequency[mf.Element(i).Symbol()] = f
			}
		}
		if jerr := info.Send(stdout); jerr != nil {
			logger.Print(jerr)
			return 1
		}
	}
	if o.stats {
		fmt.Fprintf(report, "%d formulas\n%s", comp.Len(), comp.Summary())
	}
	if o.plot != "" && comp.Len() > 0 {
		title := fmt.Sprintf("%s (%d formulas)", name, comp.Len())
		if err := chemplot.FrequencyPlot(comp.Frequency(), title, o.plot+"_freq.png", 20); err != nil {
			logger.Print(err)
			return 1
		}
		if err := chemplot.TotalsPlot(comp.Totals(), 20, title, o.plot+"_totals.png"); err != nil {
			logger.Print(err)
			return 1
		}
	}
	return 0
}

func writeCSV(name string, lines []string, counts []mf.AtomCounts, errs []error) error {
	w, err := mffile.NewWriter(name)
	if err != nil {
		return err
	}
	for i, v := range lines {
		if errs[i] != nil {
			continue
		}
		if err := w.WNext(v, &counts[i]); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}
