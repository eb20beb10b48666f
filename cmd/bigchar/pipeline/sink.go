package pipeline

import (
	"sync"

	"github.com/gopxl/beep/v2"
)

// Sink is the last pipeline element. Play must not block; done is called
// once, from another goroutine, when s is exhausted. Clear stops whatever is
// playing without calling done.
type Sink interface {
	Play(s beep.Streamer, done func()) error
	Clear()
}

// NullSink consumes samples as fast as it can without an audio device.
type NullSink struct {
	mu   sync.Mutex
	stop chan struct{}
	wg   sync.WaitGroup
}

func NewNullSink() *NullSink {
	return &NullSink{}
}

func (n *NullSink) Play(s beep.Streamer, done func()) error {
	n.Clear()

	stop := make(chan struct{})
	n.mu.Lock()
	n.stop = stop
	n.mu.Unlock()

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		buf := make([][2]float64, 512)
		for {
			select {
			case <-stop:
				return
			default:
			}
			if _, ok := s.Stream(buf); !ok {
				// done may take locks held by a caller of Clear
				go done()
				return
			}
		}
	}()
	return nil
}

// Clear stops the drain goroutine and waits for it to exit.
func (n *NullSink) Clear() {
	n.mu.Lock()
	if n.stop != nil {
		close(n.stop)
		n.stop = nil
	}
	n.mu.Unlock()
	n.wg.Wait()
}
