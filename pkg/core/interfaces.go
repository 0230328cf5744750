package core

import "time"

// Logger interface for renderer and benchmark logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// TimeSource measures elapsed wall time for the benchmark loop. The
// platform supplies the implementation; tests substitute a fake.
type TimeSource interface {
	Start()
	Stop()
	Elapsed() time.Duration
}

// ImageSink consumes a finished frame. The buffer is row-major
// top-to-bottom RGB, three bytes per pixel, width*height*3 bytes long.
// Implementations must not retain the buffer past the call.
type ImageSink interface {
	Consume(width, height int, rgb []byte) error
}
