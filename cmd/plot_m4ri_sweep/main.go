// Command plot_m4ri_sweep renders the JSONL written by cmd/m4ri_sweep into
// an HTML page: average echelonization time per matrix size with one
// series per table width, and the winning width per size.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type record struct {
	Label string `json:"label"`
	Size  int    `json:"size"`
	K     int    `json:"k"`
	Rep   int    `json:"rep"`
	NS    int64  `json:"ns"`
	WPR   int    `json:"wpr"`
	Rank  int    `json:"rank"`
}

type cell struct {
	total int64
	count int64
}

func readRecords(path string) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []record
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1<<20), 1<<20)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var r record
		if err := json.Unmarshal(line, &r); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		rows = append(rows, r)
	}
	return rows, sc.Err()
}

func sortedKeys(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

func main() {
	in := flag.String("in", "m4ri_sweep.jsonl", "sweep JSONL input")
	out := flag.String("out", "m4ri_sweep.html", "HTML output path")
	flag.Parse()

	rows, err := readRecords(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read sweep: %v\n", err)
		os.Exit(1)
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "no sweep rows to plot")
		os.Exit(1)
	}

	cells := make(map[[2]int]*cell)
	kSet := make(map[int]bool)
	sizeSet := make(map[int]bool)
	for _, r := range rows {
		key := [2]int{r.K, r.Size}
		c, ok := cells[key]
		if !ok {
			c = &cell{}
			cells[key] = c
		}
		c.total += r.NS
		c.count++
		kSet[r.K] = true
		sizeSet[r.Size] = true
	}
	ks := sortedKeys(kSet)
	sizes := sortedKeys(sizeSet)

	avgMS := func(k, size int) (float64, bool) {
		c, ok := cells[[2]int{k, size}]
		if !ok || c.count == 0 {
			return 0, false
		}
		return float64(c.total) / float64(c.count) / 1e6, true
	}

	xLabels := make([]string, len(sizes))
	for i, s := range sizes {
		xLabels[i] = fmt.Sprintf("%d", s)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "M4RI echelonization time",
			Subtitle: "average per matrix size, one series per table width k",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "size"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ms"}),
	)
	line.SetXAxis(xLabels)
	for _, k := range ks {
		items := make([]opts.LineData, len(sizes))
		for i, s := range sizes {
			if ms, ok := avgMS(k, s); ok {
				items[i] = opts.LineData{Value: ms}
			} else {
				items[i] = opts.LineData{Value: nil}
			}
		}
		line.AddSeries(fmt.Sprintf("k=%d", k), items)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Best table width per size"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "size"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "k"}),
	)
	bar.SetXAxis(xLabels)
	best := make([]opts.BarData, len(sizes))
	for i, s := range sizes {
		bestK, bestMS := 0, 0.0
		for _, k := range ks {
			if ms, ok := avgMS(k, s); ok && (bestK == 0 || ms < bestMS) {
				bestK, bestMS = k, ms
			}
		}
		best[i] = opts.BarData{Value: bestK}
	}
	bar.AddSeries("best k", best)

	page := components.NewPage().SetPageTitle("M4RI table width sweep")
	page.AddCharts(line, bar)

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		fmt.Fprintf(os.Stderr, "render page: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *out)
}
