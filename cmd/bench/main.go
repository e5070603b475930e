package main

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/QuentinRdl/biblioAlgo/array"
	"github.com/QuentinRdl/biblioAlgo/internal/cliutil"
	"github.com/QuentinRdl/biblioAlgo/list"
	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// sorter prepares a container from keys and returns the call that sorts it,
// so that only the sort itself is timed.
type sorter struct {
	name    string
	prepare func(keys []int) (sort func(), sorted func() bool)
}

func sorters() []sorter {
	return []sorter{
		{"array-quicksort", func(keys []int) (func(), func() bool) {
			a := array.NewFrom(keys)
			return a.QuickSort, a.IsSorted
		}},
		{"array-heapsort", func(keys []int) (func(), func() bool) {
			a := array.NewFrom(keys)
			return a.HeapSort, a.IsSorted
		}},
		{"list-mergesort-pool", func(keys []int) (func(), func() bool) {
			l := list.NewFrom(keys)
			return l.MergeSort, l.IsSorted
		}},
		{"list-mergesort-nopool", func(keys []int) (func(), func() bool) {
			l := list.NewFrom(keys, list.WithoutPool())
			return l.MergeSort, l.IsSorted
		}},
	}
}

func main() {
	app := cli.App{
		Name:  "bench",
		Usage: "lightweight sorting microbench over random input",
	}

	app.Flags = append([]cli.Flag{
		&cli.IntFlag{
			Name:    "n",
			Usage:   "number of random keys to sort",
			Value:   200000,
			EnvVars: []string{"BIBLIOALGO_BENCH_N"},
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "random seed (0 picks one)",
		},
	}, cliutil.LogFlags()...)

	app.Action = func(cctx *cli.Context) error {
		n := cctx.Int("n")
		if n <= 0 {
			return errors.Newf("--n must be positive, got %d", n)
		}
		logger, err := cliutil.SetupLogger(cctx)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		seed := cctx.Uint64("seed")
		if seed == 0 {
			seed = rand.Uint64()
		}
		logger.Debug("generating keys", zap.Int("n", n), zap.Uint64("seed", seed))
		return runBench(cctx.App.Writer, randomKeys(n, seed), sorters())
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func randomKeys(n int, seed uint64) []int {
	r := rand.New(rand.NewPCG(seed, seed))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = r.IntN(n * 10)
	}
	return keys
}

func runBench(w io.Writer, keys []int, configs []sorter) error {
	fmt.Fprintf(w, "Running sorting microbench (N=%s)\n", humanize.Comma(int64(len(keys))))

	for _, cfg := range configs {
		runtime.GC()
		time.Sleep(50 * time.Millisecond)
		fmt.Fprintf(w, "\nConfig: %s\n", cfg.name)

		sort, sorted := cfg.prepare(keys)

		var msBefore, msAfter runtime.MemStats
		runtime.ReadMemStats(&msBefore)
		start := time.Now()

		sort()

		dur := time.Since(start)
		runtime.ReadMemStats(&msAfter)

		if !sorted() {
			return errors.Newf("%s left the input unsorted", cfg.name)
		}

		nsPerOp := float64(dur.Nanoseconds()) / float64(len(keys))
		allocDiff := msAfter.TotalAlloc - msBefore.TotalAlloc

		fmt.Fprintf(w, "Duration: %s, ns/elem: %.1f, TotalAlloc diff: %s\n", dur, nsPerOp, humanize.Bytes(allocDiff))
	}
	return nil
}
