// SPDX-License-Identifier: EPL-2.0

package pcmbuf_test

import (
	"fmt"

	"github.com/ik5/pcmbuf"
	"github.com/ik5/pcmbuf/buf"
	"github.com/ik5/pcmbuf/driver"
	"github.com/ik5/pcmbuf/pcmio"
)

func ExamplePump() {
	src := driver.NewBufSource[float32](buf.NewInterleaved[float32](2, 1000), 8000)
	sink := driver.NewCollectSink[float32](2)

	total, err := pcmbuf.Pump[float32](src, sink, 256)
	if err != nil {
		fmt.Println("pump:", err)
		return
	}

	fmt.Println("frames moved:", total)
	fmt.Println("frames collected:", sink.Frames())
	// Output:
	// frames moved: 1000
	// frames collected: 1000
}

func ExampleCopyRemaining() {
	src := buf.WrapInterleaved([]int16{1, 10, 2, 20, 3, 30, 4, 40}, 2)
	dst := buf.NewInterleaved[int16](2, 4)

	w := pcmio.NewWrite[int16](dst)

	// Copy one frame out of the middle, then the first frame. Each copy
	// resumes where the destination left off.
	pcmio.CopyRemaining[int16](pcmio.NewRead[int16](buf.Skip[int16](src, 2).Limit(1)), w)
	pcmio.CopyRemaining[int16](pcmio.NewRead[int16](buf.Limit[int16](src, 1)), w)

	fmt.Println(dst.Slice())
	// Output:
	// [3 30 1 10 0 0 0 0]
}
