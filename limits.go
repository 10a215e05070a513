package pngme

// Limits bounds what Decode and Parse accept. A zero MaxChunkLen takes the
// PNG maximum; a zero MaxChunks means no limit on the chunk count.
type Limits struct {
	MaxChunkLen uint32 // data bytes of a single chunk
	MaxChunks   int
}

func defaultLimits() Limits {
	return Limits{
		MaxChunkLen: maxChunkLen,
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxChunkLen == 0 {
		l.MaxChunkLen = d.MaxChunkLen
	}
	return l
}
