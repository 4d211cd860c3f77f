package mdct

// Option configures the runtime behavior of a single Compress or Decompress
// call. Options never change outputs.
type Option func(*hooks)

type hooks struct {
	alloc      func(n int) []int32
	yieldEvery int
	yield      func()
}

// WithAllocator routes the num_tiles*64-scale int32 buffers through fn.
// Embedded targets can direct these to a dedicated memory region; a nil or
// short result from fn makes the call fail with ErrAllocationFailed.
func WithAllocator(fn func(n int) []int32) Option {
	return func(h *hooks) {
		h.alloc = fn
	}
}

// WithYield calls fn once every n tiles during the per-tile loop, for
// cooperatively scheduled platforms that need to feed a supervisor. It has
// no effect on outputs.
func WithYield(n int, fn func()) Option {
	return func(h *hooks) {
		h.yieldEvery = n
		h.yield = fn
	}
}

func newHooks(opts []Option) *hooks {
	h := &hooks{
		alloc: func(n int) []int32 { return make([]int32, n) },
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// allocInt32 allocates through the configured hook, mapping refusal to
// ErrAllocationFailed.
func (h *hooks) allocInt32(n int) ([]int32, error) {
	buf := h.alloc(n)
	if buf == nil || len(buf) < n {
		return nil, ErrAllocationFailed
	}
	return buf[:n], nil
}

// tick runs the yield hook when the tile index crosses the configured period.
func (h *hooks) tick(tile int) {
	if h.yield != nil && h.yieldEvery > 0 && tile%h.yieldEvery == 0 {
		h.yield()
	}
}
