//go:build !((linux && cgo) || windows || darwin)

package pipeline

import "github.com/gopxl/beep/v2"

// AudioAvailable indicates whether this build can reach an audio device.
// Audio requires cgo for the native sound libraries on this platform.
const AudioAvailable = false

// DefaultSink returns a sink that discards audio.
func DefaultSink(rate beep.SampleRate) Sink {
	return NewNullSink()
}
