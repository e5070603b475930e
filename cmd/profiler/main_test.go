package main

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWorkloads(t *testing.T) {
	for _, kind := range []string{"array", "heap", "list", "tree"} {
		t.Run(kind, func(t *testing.T) {
			m := newMetrics(prometheus.NewRegistry())
			w, err := newWorkload(kind, 100, zap.NewNop())
			require.NoError(t, err)

			w.run(m)

			assert.Equal(t, 100.0, testutil.ToFloat64(m.ops.WithLabelValues(kind, w.op)))
			// random tree keys may collide, everything else keeps all 100
			assert.InDelta(t, 100, w.size(), 2)
			assert.Equal(t, float64(w.size()), testutil.ToFloat64(m.size.WithLabelValues(kind)))
		})
	}
}

func TestWorkload_Unknown(t *testing.T) {
	_, err := newWorkload("trie", 10, zap.NewNop())
	assert.ErrorContains(t, err, `unknown container "trie"`)
}
