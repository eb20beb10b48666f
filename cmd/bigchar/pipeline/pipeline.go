package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gopxl/beep/v2"
)

var ErrBusy = errors.New("pipeline must be in the null state")

// DefaultSampleRate is the rate everything is converted to before the sink.
const DefaultSampleRate = beep.SampleRate(44100)

const busSize = 16

// State of the whole pipeline.
type State int

const (
	StateNull State = iota
	StatePlaying
)

func (s State) String() string {
	switch s {
	case StateNull:
		return "null"
	case StatePlaying:
		return "playing"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type MessageType int

const (
	MessageEOS MessageType = iota + 1
	MessageError
)

func (t MessageType) String() string {
	switch t {
	case MessageEOS:
		return "eos"
	case MessageError:
		return "error"
	}
	return fmt.Sprintf("MessageType(%d)", int(t))
}

// Message is posted on the bus from the pipeline's own goroutines. Serial
// identifies the run that posted it.
type Message struct {
	Type     MessageType
	Serial   uint64
	Location string
	Err      error
}

// Pipeline is file source -> demuxer -> decoder -> converter -> sink.
// The demuxer is linked to the decoder only when its pad appears.
type Pipeline struct {
	mu        sync.Mutex
	prerollMu sync.Mutex

	source    *FileSource
	demux     *Demuxer
	decoder   *Decoder
	converter *Converter
	sink      Sink

	bus    chan Message
	state  State
	serial uint64
	stream beep.StreamSeekCloser
}

func New(sink Sink, rate beep.SampleRate) *Pipeline {
	p := &Pipeline{
		source:    &FileSource{},
		demux:     &Demuxer{},
		decoder:   NewDecoder(),
		converter: NewConverter(rate),
		sink:      sink,
		bus:       make(chan Message, busSize),
	}
	p.demux.OnPadAdded(p.onPadAdded)
	return p
}

func (p *Pipeline) onPadAdded(pad *Pad) {
	if err := pad.Link(p.decoder.SinkPad()); err != nil {
		slog.Warn("failed to link demuxer pad", "container", pad.Container, "error", err)
	}
}

// Bus delivers end-of-stream and error messages.
func (p *Pipeline) Bus() <-chan Message {
	return p.bus
}

func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Serial is the id of the current run. It changes on every state change.
func (p *Pipeline) Serial() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.serial
}

func (p *Pipeline) SetLocation(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateNull {
		return ErrBusy
	}
	p.source.SetLocation(path)
	return nil
}

// SetState switches between null and playing. Going to playing returns
// immediately; failures arrive on the bus.
func (p *Pipeline) SetState(state State) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if state == p.state {
		return nil
	}

	switch state {
	case StateNull:
		p.resetLocked()
	case StatePlaying:
		location := p.source.Location()
		if location == "" {
			return ErrNoLocation
		}
		p.serial++
		p.state = StatePlaying
		go p.run(p.serial, location)
	default:
		return fmt.Errorf("unknown state: %v", state)
	}
	return nil
}

// resetLocked tears down the active run and drops its pending messages.
func (p *Pipeline) resetLocked() {
	p.serial++
	p.state = StateNull
	p.sink.Clear()
	if p.stream != nil {
		_ = p.stream.Close()
		p.stream = nil
	}
	for {
		select {
		case <-p.bus:
		default:
			return
		}
	}
}

func (p *Pipeline) run(serial uint64, location string) {
	stream, format, err := p.preroll(location)

	p.mu.Lock()
	defer p.mu.Unlock()

	if serial != p.serial {
		if stream != nil {
			_ = stream.Close()
		}
		return
	}
	if err != nil {
		p.post(Message{Type: MessageError, Serial: serial, Location: location, Err: err})
		return
	}

	p.stream = stream
	out := p.converter.Convert(stream, format)
	if err := p.sink.Play(out, func() { p.finished(serial, location, stream) }); err != nil {
		p.post(Message{Type: MessageError, Serial: serial, Location: location, Err: fmt.Errorf("sink: %w", err)})
	}
}

// preroll runs the first three elements. Runs are serialised because the
// elements are shared between them.
func (p *Pipeline) preroll(location string) (beep.StreamSeekCloser, beep.Format, error) {
	p.prerollMu.Lock()
	defer p.prerollMu.Unlock()

	p.decoder.Reset()

	// a copy: the pipeline's source may be pointed elsewhere once this run is stale
	r, err := (&FileSource{location: location}).Open()
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("source: %w", err)
	}
	pad, err := p.demux.Process(r)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("demux %s: %w", location, err)
	}
	stream, format, err := p.decoder.Decode()
	if errors.Is(err, ErrNotLinked) {
		_ = pad.Close()
	}
	return stream, format, err
}

func (p *Pipeline) finished(serial uint64, location string, stream beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if serial != p.serial || p.state != StatePlaying {
		return
	}
	if err := stream.Err(); err != nil {
		p.post(Message{Type: MessageError, Serial: serial, Location: location, Err: fmt.Errorf("decode: %w", err)})
		return
	}
	p.post(Message{Type: MessageEOS, Serial: serial, Location: location})
}

// post must be called with mu held.
func (p *Pipeline) post(msg Message) {
	select {
	case p.bus <- msg:
	default:
		slog.Warn("pipeline bus full, dropping message", "type", msg.Type, "location", msg.Location)
	}
}

// Close returns the pipeline to the null state.
func (p *Pipeline) Close() error {
	return p.SetState(StateNull)
}
