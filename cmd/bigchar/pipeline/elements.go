package pipeline

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

var (
	ErrNoLocation       = errors.New("no location set")
	ErrUnknownContainer = errors.New("unrecognised container format")
	ErrNotLinked        = errors.New("decoder sink pad is not linked")
	ErrAlreadyLinked    = errors.New("pad is already linked")
	ErrIncompatible     = errors.New("pad container not accepted by sink")
)

// Container is the file format detected by the demuxer.
type Container string

const (
	ContainerOgg Container = "ogg"
	ContainerWAV Container = "wav"
	ContainerMP3 Container = "mp3"
)

// FileSource reads the file at its location.
type FileSource struct {
	location string
}

func (s *FileSource) SetLocation(path string) {
	s.location = path
}

func (s *FileSource) Location() string {
	return s.location
}

func (s *FileSource) Open() (io.ReadCloser, error) {
	if s.location == "" {
		return nil, ErrNoLocation
	}
	return os.Open(s.location)
}

// Pad is the demuxer output. It exists only once the container is known.
type Pad struct {
	Container Container
	r         io.ReadCloser
	peer      *SinkPad
}

// Link connects the pad to a decoder input.
func (p *Pad) Link(sink *SinkPad) error {
	if p.peer != nil || sink.peer != nil {
		return ErrAlreadyLinked
	}
	if !sink.accepts(p.Container) {
		return fmt.Errorf("%w: %s", ErrIncompatible, p.Container)
	}
	p.peer = sink
	sink.peer = p
	return nil
}

func (p *Pad) Close() error {
	return p.r.Close()
}

// SinkPad is a static decoder input.
type SinkPad struct {
	caps []Container
	peer *Pad
}

func (s *SinkPad) accepts(c Container) bool {
	for _, known := range s.caps {
		if known == c {
			return true
		}
	}
	return false
}

func (s *SinkPad) IsLinked() bool {
	return s.peer != nil
}

func (s *SinkPad) unlink() {
	if s.peer != nil {
		s.peer.peer = nil
	}
	s.peer = nil
}

// Demuxer parses the container header and then announces its output pad.
// Callbacks registered with OnPadAdded run synchronously inside Process.
type Demuxer struct {
	padAdded []func(*Pad)
}

func (d *Demuxer) OnPadAdded(fn func(*Pad)) {
	d.padAdded = append(d.padAdded, fn)
}

// Process sniffs r and fires the pad-added callbacks. Ownership of r moves to
// the pad, except when an error is returned, in which case r is closed.
func (d *Demuxer) Process(r io.ReadCloser) (*Pad, error) {
	br := bufio.NewReader(r)
	header, err := br.Peek(12)
	if err != nil && !errors.Is(err, io.EOF) {
		_ = r.Close()
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	container, ok := sniff(header)
	if !ok {
		_ = r.Close()
		return nil, ErrUnknownContainer
	}

	pad := &Pad{Container: container, r: readCloser{Reader: br, Closer: r}}
	for _, fn := range d.padAdded {
		fn(pad)
	}
	return pad, nil
}

func sniff(header []byte) (Container, bool) {
	switch {
	case bytes.HasPrefix(header, []byte("OggS")):
		return ContainerOgg, true
	case len(header) >= 12 && bytes.HasPrefix(header, []byte("RIFF")) && bytes.Equal(header[8:12], []byte("WAVE")):
		return ContainerWAV, true
	case bytes.HasPrefix(header, []byte("ID3")):
		return ContainerMP3, true
	case len(header) >= 2 && header[0] == 0xff && header[1]&0xe0 == 0xe0:
		// bare MPEG frame sync
		return ContainerMP3, true
	}
	return "", false
}

type readCloser struct {
	io.Reader
	io.Closer
}

// Decoder turns the stream linked to its sink pad into samples.
type Decoder struct {
	sink *SinkPad
}

func NewDecoder() *Decoder {
	return &Decoder{sink: &SinkPad{caps: []Container{ContainerOgg, ContainerWAV, ContainerMP3}}}
}

func (d *Decoder) SinkPad() *SinkPad {
	return d.sink
}

// Reset drops the link left by the previous run.
func (d *Decoder) Reset() {
	d.sink.unlink()
}

func (d *Decoder) Decode() (beep.StreamSeekCloser, beep.Format, error) {
	pad := d.sink.peer
	if pad == nil {
		return nil, beep.Format{}, ErrNotLinked
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
		err    error
	)
	switch pad.Container {
	case ContainerOgg:
		stream, format, err = vorbis.Decode(pad.r)
	case ContainerWAV:
		stream, format, err = wav.Decode(pad.r)
	case ContainerMP3:
		stream, format, err = mp3.Decode(pad.r)
	default:
		err = fmt.Errorf("%w: %s", ErrIncompatible, pad.Container)
	}
	if err != nil {
		_ = pad.Close()
		return nil, beep.Format{}, fmt.Errorf("failed to decode %s: %w", pad.Container, err)
	}
	return closingStream{StreamSeekCloser: stream, pad: pad}, format, nil
}

// closingStream also closes the file behind the decoder; not every beep
// decoder closes its reader.
type closingStream struct {
	beep.StreamSeekCloser
	pad *Pad
}

func (s closingStream) Close() error {
	err := s.StreamSeekCloser.Close()
	_ = s.pad.Close()
	return err
}

// Converter resamples decoded audio to the output rate.
type Converter struct {
	rate    beep.SampleRate
	quality int
}

func NewConverter(rate beep.SampleRate) *Converter {
	return &Converter{rate: rate, quality: 4}
}

func (c *Converter) Rate() beep.SampleRate {
	return c.rate
}

func (c *Converter) Convert(s beep.Streamer, format beep.Format) beep.Streamer {
	if format.SampleRate == c.rate {
		return s
	}
	return beep.Resample(c.quality, format.SampleRate, c.rate, s)
}
