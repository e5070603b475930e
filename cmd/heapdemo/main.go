package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/QuentinRdl/biblioAlgo/array"
	"github.com/QuentinRdl/biblioAlgo/internal/cliutil"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	app := cli.App{
		Name:  "heapdemo",
		Usage: "fill an array-backed heap, then drain it while printing its state",
	}

	app.Flags = append([]cli.Flag{
		&cli.IntFlag{
			Name:    "size",
			Usage:   "number of values 0..size-1 added to the heap",
			Value:   10,
			EnvVars: []string{"BIBLIOALGO_HEAP_SIZE"},
		},
	}, cliutil.LogFlags()...)

	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(cctx *cli.Context) error {
	size := cctx.Int("size")
	if size < 0 {
		return errors.Newf("--size must not be negative, got %d", size)
	}

	logger, err := cliutil.SetupLogger(cctx)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return demo(cctx.App.Writer, logger, size)
}

// demo adds 0..size-1 to a heap, then removes the top size times, printing
// the buffer and checking the heap property around every removal.
func demo(w io.Writer, logger *zap.Logger, size int) error {
	a := array.New(array.WithLogger(logger.Named("array")))
	defer a.Destroy()

	for i := 0; i < size; i++ {
		a.HeapAdd(i)
	}
	fmt.Fprintf(w, "Initial array: %v\n", a.Values())

	for i := 0; i < size; i++ {
		expected := size - i - 1
		top, ok := a.HeapTop()
		fmt.Fprintf(w, "\nIteration %d:\n", i)
		fmt.Fprintf(w, "Before removal: %v\n", a.Values())
		fmt.Fprintf(w, "Top value expected: %d\n", expected)
		fmt.Fprintf(w, "Top value actual: %d\n", top)
		fmt.Fprintf(w, "Is heap before removal: %s\n", yesNo(a.IsHeap()))

		if !ok || top != expected {
			logger.Warn("unexpected heap top",
				zap.Int("iteration", i),
				zap.Int("expected", expected),
				zap.Int("actual", top),
			)
		}

		a.HeapRemoveTop()

		fmt.Fprintf(w, "After removal: %v\n", a.Values())
		fmt.Fprintf(w, "Is heap after removal: %s\n", yesNo(a.IsHeap()))
		if !a.IsHeap() {
			return errors.Newf("heap property broken after removal %d", i)
		}
	}
	logger.Debug("heap drained", zap.Int("size", size), zap.Int("capacity", a.Cap()))
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
