package main

import (
	"testing"

	"github.com/go-raybench/raybench/pkg/bench"
)

func TestSinkFor(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
		expectPNG bool
	}{
		{name: "png", format: "png", expectPNG: true},
		{name: "png uppercase", format: "PNG", expectPNG: true},
		{name: "raw", format: "raw"},
		{name: "unknown", format: "bmp", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink, err := sinkFor(tt.format, "out")

			if tt.expectErr {
				if err == nil {
					t.Error("Expected an error for unknown format")
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			_, isPNG := sink.(*bench.PNGFileSink)
			if isPNG != tt.expectPNG {
				t.Errorf("Expected PNG sink %t, got %T", tt.expectPNG, sink)
			}
		})
	}
}
