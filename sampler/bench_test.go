package sampler

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/hypernull/hypergraph"
	"github.com/hupe1980/hypernull/testutil"
)

func benchEdges(b *testing.B) [][]int64 {
	b.Helper()
	return testutil.RandomEdges(testutil.NewRNG(1), 1000, 5000, 2, 5)
}

func BenchmarkStub(b *testing.B) {
	h, err := hypergraph.Build(benchEdges(b))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	if _, err := Randomize(context.Background(), h, b.N, seeded(1)); err != nil {
		b.Fatal(err)
	}
}

func BenchmarkVertex(b *testing.B) {
	for _, batch := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("ClashBatch%d", batch), func(b *testing.B) {
			h, err := hypergraph.Build(benchEdges(b))
			if err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			_, err = Randomize(context.Background(), h, b.N, seeded(2), func(o *Options) {
				o.Labeling = LabelingVertex
				o.ClashBatch = batch
			})
			if err != nil {
				b.Fatal(err)
			}
		})
	}
}
