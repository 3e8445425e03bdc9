package loop

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tomz197/reveal/internal/clock"
)

// syncBuffer is a bytes.Buffer safe to read while Run writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func fixedSize(cols, rows int) func() (int, int, error) {
	return func() (int, int, error) { return cols, rows, nil }
}

func TestRun(t *testing.T) {
	Convey("Running the effect on a fake terminal", t, func() {
		var out syncBuffer

		Convey("quits on q and restores the terminal", func() {
			r, w := io.Pipe()
			defer w.Close()
			done := make(chan error, 1)
			go func() {
				done <- Run(context.Background(), bufio.NewReader(r), &out, Options{SizeFunc: fixedSize(40, 12)})
			}()

			time.Sleep(100 * time.Millisecond)
			_, err := w.Write([]byte("q"))
			So(err, ShouldBeNil)

			select {
			case err := <-done:
				So(err, ShouldBeNil)
			case <-time.After(2 * time.Second):
				So("Run did not return", ShouldBeEmpty)
			}
			s := out.String()
			So(strings.HasPrefix(s, "\033[?25l"), ShouldBeTrue)
			So(strings.HasSuffix(s, "\033[?25h"), ShouldBeTrue)
			So(s, ShouldContainSubstring, "▀")
		})

		Convey("repaints the whole canvas after a resize", func() {
			var cols atomic.Int64
			cols.Store(30)
			size := func() (int, int, error) { return int(cols.Load()), 8, nil }

			r, w := io.Pipe()
			defer w.Close()
			done := make(chan error, 1)
			go func() {
				done <- Run(context.Background(), bufio.NewReader(r), &out, Options{SizeFunc: size})
			}()

			time.Sleep(100 * time.Millisecond)
			cols.Store(36)
			time.Sleep(100 * time.Millisecond)
			_, err := w.Write([]byte("q"))
			So(err, ShouldBeNil)
			So(<-done, ShouldBeNil)

			// hide cursor | first frames | frames after resize | show cursor
			parts := strings.Split(out.String(), "\033[H\033[2J")
			So(parts, ShouldHaveLength, 4)
			So(parts[2], ShouldContainSubstring, "\033[1;1H")
			So(parts[2], ShouldContainSubstring, "\033[8;36H")
		})

		Convey("stops when the context is cancelled", func() {
			r, w := io.Pipe()
			defer w.Close()
			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() {
				done <- Run(ctx, bufio.NewReader(r), &out, Options{SizeFunc: fixedSize(20, 6)})
			}()
			time.Sleep(50 * time.Millisecond)
			cancel()

			select {
			case err := <-done:
				So(err, ShouldBeNil)
			case <-time.After(2 * time.Second):
				So("Run did not return", ShouldBeEmpty)
			}
		})

		Convey("stops when input ends", func() {
			err := Run(context.Background(), bufio.NewReader(strings.NewReader("")), &out, Options{
				SizeFunc: fixedSize(20, 6),
				Clock:    clock.NewMock(time.Now()),
			})
			So(err, ShouldBeNil)
		})

		Convey("fails to mount without a terminal size", func() {
			err := Run(context.Background(), bufio.NewReader(strings.NewReader("")), &out, Options{
				SizeFunc: func() (int, int, error) { return 0, 0, errors.New("not a tty") },
			})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "not a tty")
		})
	})
}
