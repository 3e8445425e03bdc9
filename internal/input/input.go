// Package input reads keystrokes from a terminal without blocking the frame loop.
package input

import (
	"bufio"
	"sync"
)

// Input is the key state observed during one frame.
type Input struct {
	Quit bool
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch       chan byte
	done     chan struct{}
	finished chan struct{}
	closed   bool
	stopOnce sync.Once
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r returns an error, for example when the SSH
// session closes, or on the first byte read after Stop.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:       make(chan byte, 128),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
	go func() {
		defer close(s.finished)
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Stop tells the reader goroutine that nobody drains the stream any more.
// It is safe to call more than once.
func (s *Stream) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream without blocking.
func ReadInput(s *Stream) Input {
	var buf []byte
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	var in Input
	for i, b := range buf {
		switch b {
		case 'q', 'Q', 0x03: // 0x03 is Ctrl-C in raw mode
			in.Quit = true
		case 0x1b:
			// A lone ESC quits; ESC followed by '[' starts a CSI sequence.
			if i+1 >= len(buf) || buf[i+1] != '[' {
				in.Quit = true
			}
		}
	}
	return in
}
