// File: resize/bench_test.go
package resize_test

import (
	"testing"

	"github.com/katalvlaran/siegegrid/resize"
	"github.com/katalvlaran/siegegrid/template"
	"github.com/katalvlaran/siegegrid/topology"
)

func BenchmarkResize(b *testing.B) {
	tpl, err := topology.Extract(template.MustParse(rampText))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := resize.Resize(tpl, 56, 36); err != nil {
			b.Fatal(err)
		}
	}
}
