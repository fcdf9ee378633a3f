// Command m4ri_sweep benchmarks F2Mat echelonization across M4RI table
// widths and matrix sizes. It writes one JSONL record per measurement plus
// a CSV summary; cmd/plot_m4ri_sweep renders the JSONL into charts. The
// default width in the library was chosen with this tool.
package main

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"DVR-Cohomology/matrix"
	"DVR-Cohomology/prof"
	"DVR-Cohomology/randmat"
)

const (
	defaultKsSpec    = "2,3,4,5,6,7,8,10"
	defaultSizesSpec = "128,256,512,1024,2048"
	defaultReps      = 3
	defaultLabel     = "m4ri-sweep"
	defaultJSONLPath = "m4ri_sweep.jsonl"
	defaultCSVPath   = "m4ri_sweep.csv"
)

// Config is the optional YAML grid file; flags fill anything it omits.
type Config struct {
	Ks    []int  `yaml:"ks"`
	Sizes []int  `yaml:"sizes"`
	Reps  int    `yaml:"reps"`
	Label string `yaml:"label"`
}

type record struct {
	Label string `json:"label"`
	Size  int    `json:"size"`
	K     int    `json:"k"`
	Rep   int    `json:"rep"`
	NS    int64  `json:"ns"`
	WPR   int    `json:"wpr"`
	Rank  int    `json:"rank"`
}

func parseIntList(spec string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("bad list entry %q", part)
		}
		out = append(out, v)
	}
	return out, nil
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func rankOf(m *matrix.F2Mat) int {
	rank := 0
	for c := 0; c < m.Dom(); c++ {
		if _, ok := m.PivotRow(c); ok {
			rank++
		}
	}
	return rank
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	configPath := flag.String("config", "", "optional YAML grid file")
	ksSpec := flag.String("ks", defaultKsSpec, "table widths to sweep")
	sizesSpec := flag.String("sizes", defaultSizesSpec, "square matrix sizes to sweep")
	reps := flag.Int("reps", defaultReps, "repetitions per cell")
	label := flag.String("label", defaultLabel, "seed label for matrix generation")
	jsonlPath := flag.String("jsonl", defaultJSONLPath, "JSONL output path")
	csvPath := flag.String("csv", defaultCSVPath, "CSV summary output path")
	flag.Parse()

	ks, err := parseIntList(*ksSpec)
	if err != nil {
		log.Fatal().Err(err).Msg("parse -ks")
	}
	sizes, err := parseIntList(*sizesSpec)
	if err != nil {
		log.Fatal().Err(err).Msg("parse -sizes")
	}
	runLabel := *label
	runReps := *reps

	if *configPath != "" {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("load config")
		}
		if len(cfg.Ks) > 0 {
			ks = cfg.Ks
		}
		if len(cfg.Sizes) > 0 {
			sizes = cfg.Sizes
		}
		if cfg.Reps > 0 {
			runReps = cfg.Reps
		}
		if cfg.Label != "" {
			runLabel = cfg.Label
		}
	}

	jsonFile, err := os.Create(*jsonlPath)
	if err != nil {
		log.Fatal().Err(err).Msg("create jsonl")
	}
	defer jsonFile.Close()
	jsonBuf := bufio.NewWriter(jsonFile)
	defer jsonBuf.Flush()
	jsonEnc := json.NewEncoder(jsonBuf)

	csvFile, err := os.Create(*csvPath)
	if err != nil {
		log.Fatal().Err(err).Msg("create csv")
	}
	defer csvFile.Close()
	csvWriter := csv.NewWriter(csvFile)
	defer csvWriter.Flush()
	if err := csvWriter.Write([]string{"size", "k", "avg_ns", "min_ns", "rank"}); err != nil {
		log.Fatal().Err(err).Msg("write csv header")
	}

	log.Info().Ints("ks", ks).Ints("sizes", sizes).Int("reps", runReps).Msg("sweep start")

	for _, size := range sizes {
		genStart := time.Now()
		base := randmat.F2Matrix(fmt.Sprintf("%s/size=%d", runLabel, size), size, size)
		prof.Track(genStart, "generate")

		var reference *matrix.F2Mat
		for _, k := range ks {
			var total, min int64
			var rank int
			for rep := 0; rep < runReps; rep++ {
				m := base.Clone()
				start := time.Now()
				m.EchelonizeK(k)
				ns := time.Since(start).Nanoseconds()

				total += ns
				if rep == 0 || ns < min {
					min = ns
				}
				rank = rankOf(m)

				if err := jsonEnc.Encode(record{
					Label: runLabel, Size: size, K: k, Rep: rep,
					NS: ns, WPR: m.WordsPerRow(), Rank: rank,
				}); err != nil {
					log.Fatal().Err(err).Msg("write jsonl")
				}

				if rep == 0 {
					if reference == nil {
						reference = m
					} else if !m.Equal(reference) {
						log.Fatal().Int("size", size).Int("k", k).
							Msg("echelon form differs between table widths")
					}
				}
			}
			avg := total / int64(runReps)
			if err := csvWriter.Write([]string{
				strconv.Itoa(size), strconv.Itoa(k),
				strconv.FormatInt(avg, 10), strconv.FormatInt(min, 10),
				strconv.Itoa(rank),
			}); err != nil {
				log.Fatal().Err(err).Msg("write csv")
			}
			log.Info().Int("size", size).Int("k", k).
				Dur("avg", time.Duration(avg)).Int("rank", rank).Msg("cell done")
		}
	}

	for _, e := range prof.Totals(prof.SnapshotAndReset()) {
		log.Info().Str("stage", e.Label).Dur("total", e.Dur).Msg("timing")
	}
	log.Info().Str("jsonl", *jsonlPath).Str("csv", *csvPath).Msg("sweep done")
}
