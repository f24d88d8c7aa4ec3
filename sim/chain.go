package sim

// Point is a candidate or accepted chain position in R².
type Point struct {
	X float64
	Y float64
}

// Sample is one emitted chain position, tagged with whether the proposal
// that produced it was accepted. Immutable once appended to the history.
type Sample struct {
	Point
	Accepted bool
}

// DefaultHistoryCapacity bounds the chain history when EngineConfig does
// not override it.
const DefaultHistoryCapacity = 2000

// chainOrigin is the fixed seed position for a fresh chain.
var chainOrigin = Point{X: 0.1, Y: 0.1}

// ChainState holds the current position of a single chain, a bounded
// FIFO history of emitted samples, and the intermediate trajectory of
// the most recent step (nil for kernels that move in one jump).
//
// Owned exclusively by one Engine; not safe for concurrent use.
type ChainState struct {
	position       Point
	lastTrajectory []Point

	// history is a fixed-capacity ring; start indexes the oldest sample.
	history []Sample
	start   int
	count   int
}

// NewChainState creates a chain seeded at the fixed origin with an empty
// history of the given capacity (must be > 0).
func NewChainState(capacity int) *ChainState {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &ChainState{
		position: chainOrigin,
		history:  make([]Sample, capacity),
	}
}

// Reset returns the chain to its initial state: position at the origin,
// empty history, no trajectory. Idempotent.
func (c *ChainState) Reset() {
	c.position = chainOrigin
	c.start = 0
	c.count = 0
	c.lastTrajectory = nil
}

// Append records one emitted sample, evicting the oldest beyond
// capacity, and moves the chain position to it.
func (c *ChainState) Append(s Sample) {
	idx := (c.start + c.count) % len(c.history)
	c.history[idx] = s
	if c.count < len(c.history) {
		c.count++
	} else {
		c.start = (c.start + 1) % len(c.history)
	}
	c.position = s.Point
}

// SetTrajectory replaces the most recent step's intermediate path.
// A nil path clears it.
func (c *ChainState) SetTrajectory(path []Point) {
	c.lastTrajectory = path
}

// Position returns the current chain position.
func (c *ChainState) Position() Point {
	return c.position
}

// Len returns the number of samples currently held.
func (c *ChainState) Len() int {
	return c.count
}

// Capacity returns the history bound.
func (c *ChainState) Capacity() int {
	return len(c.history)
}

// History returns the retained samples oldest-first as a fresh slice.
func (c *ChainState) History() []Sample {
	out := make([]Sample, c.count)
	for i := 0; i < c.count; i++ {
		out[i] = c.history[(c.start+i)%len(c.history)]
	}
	return out
}

// LastTrajectory returns a copy of the most recent step's intermediate
// path, or nil if the last step had none.
func (c *ChainState) LastTrajectory() []Point {
	if c.lastTrajectory == nil {
		return nil
	}
	out := make([]Point, len(c.lastTrajectory))
	copy(out, c.lastTrajectory)
	return out
}
