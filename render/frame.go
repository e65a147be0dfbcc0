package render

// Frame is the per-frame timing context handed to the camera step.
type Frame struct {
	Elapsed float32 // seconds since the loop started
	Delta   float32 // seconds since the previous frame
}

type Timer struct {
	start float64
	last  float64
}

func NewTimer(now float64) *Timer {
	return &Timer{start: now, last: now}
}

func (t *Timer) Frame(now float64) Frame {
	frame := Frame{
		Elapsed: float32(now - t.start),
		Delta:   float32(now - t.last),
	}
	t.last = now
	return frame
}
