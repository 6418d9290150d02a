// Copyright © 2020 Dmitry Mozzherin <dmozzherin@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnomen"
	"github.com/gnames/gnomen/ent/rank"
	"github.com/gnames/gnomen/pkg/config"
	"github.com/spf13/cobra"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [name]",
	Short: "Parses one scientific name, or a file with one name per line",
	Run: func(cmd *cobra.Command, args []string) {
		flagOpts(cmd)
		cfg := config.New(opts...)
		gn := gnomen.New(cfg)

		fileName, _ := cmd.Flags().GetString("file")
		if fileName != "" {
			parseFile(gn, cfg, fileName)
			return
		}

		if len(args) != 1 {
			_ = cmd.Help()
			os.Exit(0)
		}
		rankStr, _ := cmd.Flags().GetString("rank")
		canonical, _ := cmd.Flags().GetBool("canonical")
		parseName(gn, args[0], rankStr, canonical)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringP("file", "f", "", "file with one name per line")
	parseCmd.Flags().StringP("rank", "r", "", "rank known from an external source")
	parseCmd.Flags().BoolP("canonical", "c", false, "output only the canonical form")
	parseCmd.Flags().IntP("jobs", "j", 0, "number of parallel parsing jobs")
	parseCmd.Flags().String("format", "", "batch output format: csv, tsv, compact")
	parseCmd.Flags().Bool("cache", false, "cache parse results between runs")
}

// flagOpts appends flag overrides to options collected from the
// config file.
func flagOpts(cmd *cobra.Command) {
	if jobs, _ := cmd.Flags().GetInt("jobs"); jobs > 0 {
		opts = append(opts, config.OptJobsNum(jobs))
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		opts = append(opts, config.OptFormat(newFormat(format)))
	}
	if withCache, _ := cmd.Flags().GetBool("cache"); withCache {
		opts = append(opts, config.OptWithCache(true))
	}
}

func newFormat(s string) gnfmt.Format {
	switch strings.ToLower(s) {
	case "csv":
		return gnfmt.CSV
	case "tsv":
		return gnfmt.TSV
	case "compact":
		return gnfmt.CompactJSON
	case "pretty":
		return gnfmt.PrettyJSON
	default:
		slog.Error("Unknown format, using csv", "format", s)
		return gnfmt.CSV
	}
}

func parseName(gn gnomen.GNomen, name, rankStr string, canonical bool) {
	if canonical {
		fmt.Println(gn.ParseToCanonical(name))
		return
	}

	pn := gn.ParseQuietly(name, rank.New(rankStr))
	enc := gnfmt.GNjson{Pretty: true}
	out, err := enc.Encode(pn)
	if err != nil {
		slog.Error("Cannot encode parsed name", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func parseFile(gn gnomen.GNomen, cfg config.Config, path string) {
	f, err := os.Open(path)
	if err != nil {
		slog.Error("Cannot open input file", "error", err, "file", path)
		os.Exit(1)
	}
	defer f.Close()

	chIn := make(chan string)
	chOut := make(chan gnomen.Result)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		writeResults(cfg, chOut)
	}()

	go func() {
		defer close(chIn)
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			name := strings.TrimSpace(sc.Text())
			if name == "" {
				continue
			}
			chIn <- name
		}
		if err := sc.Err(); err != nil {
			slog.Error("Cannot read input file", "error", err, "file", path)
		}
	}()

	if err = gn.ParseStream(context.Background(), chIn, chOut); err != nil {
		slog.Error("Batch parsing failed", "error", err)
		os.Exit(1)
	}
	wg.Wait()
}

var csvHeader = []string{
	"Id", "Verbatim", "Canonical", "CanonicalFull",
	"Authorship", "Rank", "Type", "State",
}

func csvRow(res gnomen.Result) []string {
	pn := res.Name
	return []string{
		res.ID,
		pn.Verbatim,
		pn.CanonicalWithoutAuthorship(),
		pn.CanonicalComplete(),
		pn.AuthorshipComplete(),
		pn.Rank.String(),
		pn.Type.String(),
		pn.State.String(),
	}
}

func writeResults(cfg config.Config, chOut <-chan gnomen.Result) {
	var count int
	start := time.Now()

	enc := gnfmt.GNjson{}
	isCSV := cfg.Format == gnfmt.CSV || cfg.Format == gnfmt.TSV
	sep := ','
	if cfg.Format == gnfmt.TSV {
		sep = '\t'
	}

	if isCSV {
		fmt.Println(gnfmt.ToCSV(csvHeader, sep))
	}

	for res := range chOut {
		if isCSV {
			fmt.Println(gnfmt.ToCSV(csvRow(res), sep))
		} else {
			out, err := enc.Encode(res)
			if err != nil {
				slog.Error("Cannot encode result", "error", err)
				continue
			}
			fmt.Println(string(out))
		}

		count++
		if count%cfg.BatchSize == 0 {
			rate := float64(count) / time.Since(start).Seconds()
			slog.Info("Parsing progress",
				"names", humanize.Comma(int64(count)),
				"names/sec", humanize.Comma(int64(rate)),
			)
		}
	}
}
