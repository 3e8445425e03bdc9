package main

import (
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSizeTracker(t *testing.T) {
	Convey("Size tracker follows window changes", t, func() {
		st := newSizeTracker(80, 24)
		w, h, err := st.getSize()
		So(err, ShouldBeNil)
		So(w, ShouldEqual, 80)
		So(h, ShouldEqual, 24)

		var wg sync.WaitGroup
		for i := 1; i <= 10; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				st.update(100, 30)
				_, _, _ = st.getSize()
			}(i)
		}
		wg.Wait()

		w, h, _ = st.getSize()
		So(w, ShouldEqual, 100)
		So(h, ShouldEqual, 30)
	})
}
