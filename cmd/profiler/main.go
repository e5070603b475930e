package main

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	_ "net/http/pprof" // Import for side effects: registers pprof handlers
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/QuentinRdl/biblioAlgo/array"
	"github.com/QuentinRdl/biblioAlgo/internal/cliutil"
	"github.com/QuentinRdl/biblioAlgo/list"
	"github.com/QuentinRdl/biblioAlgo/tree"
	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	app := cli.App{
		Name:  "profiler",
		Usage: "fill one container with a large workload and keep it alive for pprof",
	}

	app.Flags = append([]cli.Flag{
		&cli.StringFlag{
			Name:    "container",
			Usage:   "workload to run: array, heap, list or tree",
			Value:   "array",
			EnvVars: []string{"BIBLIOALGO_PROFILE_CONTAINER"},
		},
		&cli.IntFlag{
			Name:    "items",
			Usage:   "number of values to insert",
			Value:   1_000_000,
			EnvVars: []string{"BIBLIOALGO_PROFILE_ITEMS"},
		},
		&cli.StringFlag{
			Name:    "addr",
			Usage:   "listen address for /debug/pprof and /metrics",
			Value:   "localhost:6060",
			EnvVars: []string{"BIBLIOALGO_PROFILE_ADDR"},
		},
	}, cliutil.LogFlags()...)

	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(cctx *cli.Context) error {
	logger, err := cliutil.SetupLogger(cctx)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	numItems := cctx.Int("items")
	if numItems < 0 {
		return errors.Newf("--items must not be negative, got %d", numItems)
	}

	// Trap SIGINT to trigger a shutdown.
	ctx, stop := signal.NotifyContext(cctx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	m := newMetrics(reg)

	// เปิด pprof และ metrics endpoint ผ่าน HTTP server
	mux := http.NewServeMux()
	mux.Handle("/debug/pprof/", http.DefaultServeMux)
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: cctx.String("addr"), Handler: mux}
	go func() {
		logger.Info("starting pprof server", zap.String("url", "http://"+srv.Addr+"/debug/pprof/"))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("pprof server failed", zap.Error(err))
			stop()
		}
	}()

	kind := cctx.String("container")
	fmt.Fprintf(cctx.App.Writer, "Starting %s insertion workload...\n", kind)
	fmt.Fprintf(cctx.App.Writer, " - Items to insert: %s\n", humanize.Comma(int64(numItems)))

	runtime.GC() // สั่งให้ GC ทำงานเพื่อดู memory ก่อนเริ่ม
	w, err := newWorkload(kind, numItems, logger)
	if err != nil {
		return err
	}
	w.run(m)

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	fmt.Fprintf(cctx.App.Writer, "Finished inserting %s items. Size: %s, heap in use: %s\n",
		humanize.Comma(int64(numItems)), humanize.Comma(int64(w.size())), humanize.Bytes(ms.HeapInuse))
	fmt.Fprintln(cctx.App.Writer, "Program is keeping alive for profiling. Press Ctrl+C to exit.")

	<-ctx.Done()
	return srv.Shutdown(context.Background())
}

type metrics struct {
	ops  *prometheus.CounterVec
	size *prometheus.GaugeVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "biblioalgo_profiler_operations_total",
			Help: "Container operations performed by the profiling workload.",
		}, []string{"container", "op"}),
		size: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "biblioalgo_profiler_container_size",
			Help: "Number of elements held by the profiled container.",
		}, []string{"container"}),
	}
	reg.MustRegister(m.ops, m.size)
	return m
}

// workload fills one container with n values and reports its size.
type workload struct {
	kind string
	n    int
	fill func(v int)
	size func() int
	op   string
}

func newWorkload(kind string, n int, logger *zap.Logger) (*workload, error) {
	w := &workload{kind: kind, n: n}
	switch kind {
	case "array":
		// seed the capacity: the one-slot growth policy would otherwise
		// reallocate on every push
		a := array.New(array.WithCapacity(n), array.WithLogger(logger.Named("array")))
		w.fill, w.size, w.op = a.PushBack, a.Size, "push_back"
	case "heap":
		a := array.New(array.WithCapacity(n), array.WithLogger(logger.Named("heap")))
		w.fill, w.size, w.op = a.HeapAdd, a.Size, "heap_add"
	case "list":
		l := list.New(list.WithLogger(logger.Named("list")))
		w.fill, w.size, w.op = l.PushBack, l.Size, "push_back"
	case "tree":
		t := tree.New(tree.WithLogger(logger.Named("tree")))
		w.fill = func(v int) { t.Insert(v) }
		w.size, w.op = t.Size, "insert"
	default:
		return nil, errors.Newf("unknown container %q (want array, heap, list or tree)", kind)
	}
	return w, nil
}

func (w *workload) run(m *metrics) {
	ops := m.ops.WithLabelValues(w.kind, w.op)
	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	for i := 0; i < w.n; i++ {
		// random keys keep the unbalanced tree shallow
		w.fill(r.Int())
		ops.Inc()
	}
	m.size.WithLabelValues(w.kind).Set(float64(w.size()))
}
