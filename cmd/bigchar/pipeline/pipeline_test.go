package pipeline

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

// writeWAV creates a short silent WAV file.
func writeWAV(t *testing.T, dir, name string, rate beep.SampleRate, samples int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	format := beep.Format{SampleRate: rate, NumChannels: 1, Precision: 2}
	if err := wav.Encode(f, beep.Silence(samples), format); err != nil {
		t.Fatalf("failed to encode wav: %v", err)
	}
	return path
}

func waitMessage(t *testing.T, p *Pipeline) Message {
	t.Helper()
	select {
	case msg := <-p.Bus():
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for bus message")
		return Message{}
	}
}

func expectNoMessage(t *testing.T, p *Pipeline, wait time.Duration) {
	t.Helper()
	select {
	case msg := <-p.Bus():
		t.Fatalf("unexpected message: %+v", msg)
	case <-time.After(wait):
	}
}

func TestPipeline_PlaysToEndOfStream(t *testing.T) {
	path := writeWAV(t, t.TempDir(), "A.wav", 22050, 2205)
	p := New(NewNullSink(), DefaultSampleRate)
	defer p.Close()

	if err := p.SetLocation(path); err != nil {
		t.Fatalf("SetLocation failed: %v", err)
	}
	if err := p.SetState(StatePlaying); err != nil {
		t.Fatalf("SetState failed: %v", err)
	}

	msg := waitMessage(t, p)
	if msg.Type != MessageEOS {
		t.Fatalf("expected EOS, got %v (%v)", msg.Type, msg.Err)
	}
	if msg.Serial != p.Serial() {
		t.Errorf("message serial %d, pipeline serial %d", msg.Serial, p.Serial())
	}
	if msg.Location != path {
		t.Errorf("message location %q, want %q", msg.Location, path)
	}
}

func TestPipeline_MissingFileIsError(t *testing.T) {
	p := New(NewNullSink(), DefaultSampleRate)
	defer p.Close()

	_ = p.SetLocation(filepath.Join(t.TempDir(), "Q.ogg"))
	_ = p.SetState(StatePlaying)

	msg := waitMessage(t, p)
	if msg.Type != MessageError {
		t.Fatalf("expected error, got %v", msg.Type)
	}
	if !errors.Is(msg.Err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", msg.Err)
	}
}

func TestPipeline_CorruptFileIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "B.ogg")
	if err := os.WriteFile(path, []byte("definitely not audio"), 0644); err != nil {
		t.Fatal(err)
	}
	p := New(NewNullSink(), DefaultSampleRate)
	defer p.Close()

	_ = p.SetLocation(path)
	_ = p.SetState(StatePlaying)

	msg := waitMessage(t, p)
	if msg.Type != MessageError || !errors.Is(msg.Err, ErrUnknownContainer) {
		t.Fatalf("expected unknown container error, got %v %v", msg.Type, msg.Err)
	}
}

func TestPipeline_BusyWhilePlaying(t *testing.T) {
	path := writeWAV(t, t.TempDir(), "C.wav", 44100, 44100)
	p := New(NewNullSink(), DefaultSampleRate)
	defer p.Close()

	_ = p.SetLocation(path)
	_ = p.SetState(StatePlaying)

	if err := p.SetLocation(path); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}

	_ = p.SetState(StateNull)
	if err := p.SetLocation(path); err != nil {
		t.Errorf("SetLocation after reset failed: %v", err)
	}
}

func TestPipeline_ResetDropsPendingMessages(t *testing.T) {
	p := New(NewNullSink(), DefaultSampleRate)
	defer p.Close()

	_ = p.SetLocation(filepath.Join(t.TempDir(), "missing.wav"))
	_ = p.SetState(StatePlaying)
	first := p.Serial()

	// let the error land on the bus, then reset
	time.Sleep(100 * time.Millisecond)
	_ = p.SetState(StateNull)

	if p.Serial() == first {
		t.Errorf("serial did not change on reset")
	}
	expectNoMessage(t, p, 100*time.Millisecond)
}

func TestPipeline_ReusedAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeWAV(t, dir, "A.wav", 44100, 441),
		writeWAV(t, dir, "B.wav", 8000, 80),
		writeWAV(t, dir, "C.wav", 48000, 480),
	}
	p := New(NewNullSink(), DefaultSampleRate)
	defer p.Close()

	for _, path := range paths {
		if err := p.SetLocation(path); err != nil {
			t.Fatalf("SetLocation(%s) failed: %v", path, err)
		}
		_ = p.SetState(StatePlaying)
		msg := waitMessage(t, p)
		if msg.Type != MessageEOS {
			t.Fatalf("%s: expected EOS, got %v (%v)", path, msg.Type, msg.Err)
		}
		_ = p.SetState(StateNull)
	}
}

func TestPipeline_NoLocation(t *testing.T) {
	p := New(NewNullSink(), DefaultSampleRate)
	if err := p.SetState(StatePlaying); !errors.Is(err, ErrNoLocation) {
		t.Errorf("expected ErrNoLocation, got %v", err)
	}
	if p.State() != StateNull {
		t.Errorf("state = %v, want null", p.State())
	}
}

func TestDemuxer_PadAppearsAfterHeader(t *testing.T) {
	path := writeWAV(t, t.TempDir(), "D.wav", 44100, 100)
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}

	decoder := NewDecoder()
	demux := &Demuxer{}
	var added []*Pad
	demux.OnPadAdded(func(pad *Pad) {
		added = append(added, pad)
		if err := pad.Link(decoder.SinkPad()); err != nil {
			t.Errorf("link failed: %v", err)
		}
	})

	if decoder.SinkPad().IsLinked() {
		t.Fatal("decoder linked before demuxing")
	}
	if _, _, err := decoder.Decode(); !errors.Is(err, ErrNotLinked) {
		t.Fatalf("expected ErrNotLinked, got %v", err)
	}

	if _, err := demux.Process(f); err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if len(added) != 1 || added[0].Container != ContainerWAV {
		t.Fatalf("pad-added fired %d times: %+v", len(added), added)
	}
	if !decoder.SinkPad().IsLinked() {
		t.Fatal("decoder not linked after pad-added")
	}

	stream, format, err := decoder.Decode()
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	defer stream.Close()
	if format.SampleRate != 44100 {
		t.Errorf("sample rate = %d", format.SampleRate)
	}

	// a second pad cannot take the same input
	other := &Pad{Container: ContainerOgg, r: io.NopCloser(strings.NewReader(""))}
	if err := other.Link(decoder.SinkPad()); !errors.Is(err, ErrAlreadyLinked) {
		t.Errorf("expected ErrAlreadyLinked, got %v", err)
	}

	decoder.Reset()
	if decoder.SinkPad().IsLinked() {
		t.Error("decoder still linked after reset")
	}
}

func TestSniff(t *testing.T) {
	tests := []struct {
		name   string
		header []byte
		want   Container
		ok     bool
	}{
		{"ogg", []byte("OggS\x00\x02\x00\x00\x00\x00\x00\x00"), ContainerOgg, true},
		{"wav", []byte("RIFF\x24\x00\x00\x00WAVE"), ContainerWAV, true},
		{"riff not wave", []byte("RIFF\x24\x00\x00\x00AVI "), "", false},
		{"id3", []byte("ID3\x04\x00\x00\x00\x00\x00\x00\x00\x00"), ContainerMP3, true},
		{"mpeg sync", []byte{0xff, 0xfb, 0x90, 0x64}, ContainerMP3, true},
		{"text", []byte("hello world!"), "", false},
		{"empty", nil, "", false},
		{"short", []byte("Og"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sniff(tt.header)
			if got != tt.want || ok != tt.ok {
				t.Errorf("sniff(%q) = %q, %v; want %q, %v", tt.header, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestConverter(t *testing.T) {
	c := NewConverter(44100)
	src := beep.Take(10, beep.Silence(-1))

	if c.Rate() != 44100 {
		t.Errorf("Rate() = %d", c.Rate())
	}
	if got := c.Convert(src, beep.Format{SampleRate: 44100}); got != src {
		t.Error("same rate should pass the stream through")
	}
	if _, ok := c.Convert(src, beep.Format{SampleRate: 22050}).(*beep.Resampler); !ok {
		t.Error("different rate should resample")
	}
}
