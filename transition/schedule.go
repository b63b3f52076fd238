// SPDX-License-Identifier: EPL-2.0

package transition

// Schedule is the resample ratio applied to the incoming track across the
// fade: a straight ramp from Initial at frame 0 to 1 at frame Len-1.
type Schedule struct {
	initial float64
	frames  int
}

func NewSchedule(initial float64, frames int) Schedule {
	return Schedule{initial: initial, frames: frames}
}

func (s Schedule) Initial() float64 { return s.initial }
func (s Schedule) Len() int         { return s.frames }

// Ratio is the ratio at fade frame i.
func (s Schedule) Ratio(i float64) float64 {
	if s.frames <= 1 || i >= float64(s.frames-1) {
		return 1
	}
	if i <= 0 {
		return s.initial
	}
	return s.initial + (1-s.initial)*i/float64(s.frames-1)
}

// Block is a run of fade frames resampled at one ratio.
type Block struct {
	Start int
	Len   int
	Ratio float64
}

// Blocks cuts the schedule into runs of size frames, each holding the
// ratio at its midpoint. A tail shorter than size joins the run before it,
// so no block is shorter than size unless the whole fade is.
func (s Schedule) Blocks(size int) []Block {
	if s.frames <= 0 {
		return nil
	}
	size = max(1, min(size, s.frames))

	n := s.frames / size
	blocks := make([]Block, 0, n)
	for k := range n {
		blocks = append(blocks, Block{Start: k * size, Len: size})
	}
	blocks[n-1].Len += s.frames - n*size

	for k := range blocks {
		b := &blocks[k]
		b.Ratio = s.Ratio(float64(b.Start) + float64(b.Len-1)/2)
	}

	return blocks
}

// Demand is how many input frames the blocks advance the incoming track
// by.
func Demand(blocks []Block) float64 {
	var sum float64
	for _, b := range blocks {
		sum += float64(b.Len) / b.Ratio
	}
	return sum
}
