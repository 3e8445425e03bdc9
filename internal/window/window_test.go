package window

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type fakeTerm struct {
	cols, rows int
	err        error
}

func (f *fakeTerm) size() (int, int, error) {
	return f.cols, f.rows, f.err
}

func TestWindowEvents(t *testing.T) {
	Convey("Window events", t, func() {
		term := &fakeTerm{cols: 80, rows: 24}
		w, err := New(term.size)
		So(err, ShouldBeNil)
		So(w.Size(), ShouldResemble, Size{Cols: 80, Rows: 24})
		So(w.Size().Height(), ShouldEqual, 48)
		So(w.Size().Aspect(), ShouldAlmostEqual, 80.0/48.0, 1e-12)

		var loads, resizes []Size
		offLoad := w.On(EventLoad, func(s Size) { loads = append(loads, s) })
		w.On(EventResize, func(s Size) { resizes = append(resizes, s) })

		Convey("Load fires exactly once", func() {
			w.Load()
			w.Load()
			So(loads, ShouldHaveLength, 1)
		})

		Convey("Poll fires resize only on change", func() {
			changed, err := w.Poll()
			So(err, ShouldBeNil)
			So(changed, ShouldBeFalse)
			So(resizes, ShouldBeEmpty)

			term.cols, term.rows = 120, 40
			changed, err = w.Poll()
			So(err, ShouldBeNil)
			So(changed, ShouldBeTrue)
			So(resizes, ShouldResemble, []Size{{Cols: 120, Rows: 40}})
		})

		Convey("Unregistered handlers are not called", func() {
			offLoad()
			So(w.Listeners(EventLoad), ShouldEqual, 0)
			w.Load()
			So(loads, ShouldBeEmpty)
		})

		Convey("Close drops every listener", func() {
			w.Close()
			So(w.Listeners(EventResize), ShouldEqual, 0)
			term.cols = 10
			_, _ = w.Poll()
			So(resizes, ShouldBeEmpty)
		})

		Convey("Size errors are reported", func() {
			term.err = errors.New("no tty")
			_, err := w.Poll()
			So(err, ShouldNotBeNil)
		})
	})

	Convey("A failing size func fails construction", t, func() {
		_, err := New((&fakeTerm{err: errors.New("no tty")}).size)
		So(err, ShouldNotBeNil)
	})

	Convey("Event names", t, func() {
		So(EventLoad.String(), ShouldEqual, "load")
		So(EventResize.String(), ShouldEqual, "resize")
	})
}
