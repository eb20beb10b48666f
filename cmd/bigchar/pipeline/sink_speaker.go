//go:build (linux && cgo) || windows || darwin

package pipeline

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// AudioAvailable indicates whether this build can reach an audio device.
const AudioAvailable = true

// SpeakerSink plays through the system audio device.
type SpeakerSink struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	initialized bool
}

func NewSpeakerSink(rate beep.SampleRate) *SpeakerSink {
	return &SpeakerSink{rate: rate}
}

func (s *SpeakerSink) init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(time.Second/10)); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

func (s *SpeakerSink) Play(stream beep.Streamer, done func()) error {
	if err := s.init(); err != nil {
		return err
	}
	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		// the callback runs with the speaker lock held
		go done()
	})))
	return nil
}

func (s *SpeakerSink) Clear() {
	s.mu.Lock()
	initialized := s.initialized
	s.mu.Unlock()
	if initialized {
		speaker.Clear()
	}
}

// DefaultSink returns the device sink.
func DefaultSink(rate beep.SampleRate) Sink {
	return NewSpeakerSink(rate)
}
