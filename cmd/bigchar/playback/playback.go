package playback

import (
	"fmt"
	"log/slog"

	"github.com/gigurra/bigchar/cmd/bigchar/assets"
	"github.com/gigurra/bigchar/cmd/bigchar/pipeline"
	"github.com/google/uuid"
)

// PlaybackState is the controller state.
type PlaybackState string

const (
	StateIdle    PlaybackState = "idle"
	StatePlaying PlaybackState = "playing"
)

// Pipeline is the media pipeline the controller drives.
type Pipeline interface {
	SetLocation(path string) error
	SetState(state pipeline.State) error
	Serial() uint64
	Bus() <-chan pipeline.Message
}

// Request is one playback started by Start.
type Request struct {
	ID         uuid.UUID
	Identifier string
	Path       string
}

// Controller plays at most one asset at a time through a single reused
// pipeline. It is not safe for concurrent use; it belongs to the UI loop,
// which feeds it the pipeline's messages through HandleMessage.
type Controller struct {
	pipeline Pipeline
	dir      string
	ext      string

	state   PlaybackState
	current *Request
}

func New(p Pipeline, dir, ext string) *Controller {
	return &Controller{
		pipeline: p,
		dir:      dir,
		ext:      ext,
		state:    StateIdle,
	}
}

// Start plays the asset for id, stopping any current playback first.
func (c *Controller) Start(id string) error {
	if c.state == StatePlaying {
		c.Stop()
	}

	path, err := assets.Resolve(c.dir, id, c.ext)
	if err != nil {
		return err
	}
	if err := c.pipeline.SetLocation(path); err != nil {
		return fmt.Errorf("failed to set location: %w", err)
	}
	if err := c.pipeline.SetState(pipeline.StatePlaying); err != nil {
		return fmt.Errorf("failed to start pipeline: %w", err)
	}

	c.current = &Request{ID: uuid.New(), Identifier: id, Path: path}
	c.state = StatePlaying
	slog.Debug("playback started", "request", c.current.ID, "id", id, "path", path)
	return nil
}

// Stop halts playback and returns the pipeline to null. No-op when idle.
func (c *Controller) Stop() {
	if c.state != StatePlaying {
		return
	}
	if err := c.pipeline.SetState(pipeline.StateNull); err != nil {
		slog.Error("failed to reset pipeline", "error", err)
	}
	if c.current != nil {
		slog.Debug("playback stopped", "request", c.current.ID, "id", c.current.Identifier)
	}
	c.current = nil
	c.state = StateIdle
}

// HandleMessage applies a bus message. Messages from an earlier run of the
// pipeline are ignored.
func (c *Controller) HandleMessage(msg pipeline.Message) {
	if msg.Serial != c.pipeline.Serial() {
		slog.Debug("ignoring stale pipeline message", "type", msg.Type, "serial", msg.Serial)
		return
	}

	var request uuid.UUID
	if c.current != nil {
		request = c.current.ID
	}
	switch msg.Type {
	case pipeline.MessageEOS:
		slog.Debug("end of stream", "request", request, "location", msg.Location)
	case pipeline.MessageError:
		slog.Error("playback failed", "request", request, "location", msg.Location, "error", msg.Err)
	default:
		return
	}
	c.Stop()
}

// Messages is the pipeline bus.
func (c *Controller) Messages() <-chan pipeline.Message {
	return c.pipeline.Bus()
}

func (c *Controller) State() PlaybackState {
	return c.state
}

// Current returns the active request, or nil when idle.
func (c *Controller) Current() *Request {
	return c.current
}
