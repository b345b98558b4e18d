// Package benchmarks provides performance benchmarks for the observers
// and exporters.
package benchmarks

import (
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/deepaksharmaongraph/frame-transpiler/observe"
	"github.com/deepaksharmaongraph/frame-transpiler/testutil"
)

// BenchmarkTracerDispatch measures the tracer's per-dispatch overhead
// against a no-op logger, isolating field construction from sink cost.
func BenchmarkTracerDispatch(b *testing.B) {
	m := testutil.NewCascadeMachine()
	observe.NewTracer(zap.NewNop()).Attach(m.EventMonitor())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Mult(3, 4)
	}
}

// BenchmarkPublisherForward measures channel forwarding with a live
// consumer draining the buffer.
func BenchmarkPublisherForward(b *testing.B) {
	m := testutil.NewCascadeMachine()
	pub := observe.NewPublisher(observe.WithBuffer(1024))
	pub.Attach(m.EventMonitor())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range pub.Notifications() {
		}
	}()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Mult(3, 4)
	}
	b.StopTimer()

	pub.Close()
	<-done
}

func BenchmarkDescribeYAML(b *testing.B) {
	mi := testutil.NewCascadeMachine().Info()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := observe.Describe(mi).YAML(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDescribeJSON(b *testing.B) {
	mi := testutil.NewCascadeMachine().Info()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := observe.Describe(mi).JSON(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExportDOT(b *testing.B) {
	m := testutil.NewStackMachine()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = observe.ExportDOT(m.Info(), "A")
	}
}

func BenchmarkFingerprint(b *testing.B) {
	mi := testutil.NewCascadeMachine().Info()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = observe.Fingerprint(mi)
	}
}

// BenchmarkDescribeScale measures description cost against synthetic
// tables of increasing size.
func BenchmarkDescribeScale(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		mi := GenFlatTable(n)
		b.Run(fmt.Sprintf("states=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := observe.Describe(mi).YAML(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkExportDOTDeep measures cluster rendering against nested
// hierarchies.
func BenchmarkExportDOTDeep(b *testing.B) {
	for _, depth := range []int{1, 3, 5} {
		mi := GenDeepTable(depth)
		b.Run(fmt.Sprintf("depth=%d", depth), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = observe.ExportDOT(mi, "")
			}
		})
	}
}
