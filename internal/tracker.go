package internal

type frame struct {
	effect   EffectID
	running  bool
	tracking bool
}

// Tracker is the stack of running effects.
// The top frame decides which effect a signal read is attributed to.
type Tracker struct {
	stack []frame
}

func NewTracker() *Tracker {
	return &Tracker{
		stack: make([]frame, 0, 8),
	}
}

// RunWithEffect runs fn with id as the running effect, then restores the previous one,
// even if fn panics.
func (t *Tracker) RunWithEffect(id EffectID, fn func()) {
	t.push(frame{effect: id, running: true, tracking: true})
	defer t.pop()

	fn()
}

// RunUntracked runs fn without attributing reads to the running effect.
// The running effect itself is unchanged.
func (t *Tracker) RunUntracked(fn func()) {
	top, _ := t.top()
	top.tracking = false

	t.push(top)
	defer t.pop()

	fn()
}

// Running returns the effect currently executing, if any.
func (t *Tracker) Running() (EffectID, bool) {
	top, ok := t.top()
	if !ok || !top.running {
		return 0, false
	}

	return top.effect, true
}

// Tracking returns the effect reads should subscribe, if any.
func (t *Tracker) Tracking() (EffectID, bool) {
	top, ok := t.top()
	if !ok || !top.running || !top.tracking {
		return 0, false
	}

	return top.effect, true
}

func (t *Tracker) Depth() int {
	return len(t.stack)
}

func (t *Tracker) top() (frame, bool) {
	if len(t.stack) == 0 {
		return frame{}, false
	}

	return t.stack[len(t.stack)-1], true
}

func (t *Tracker) push(f frame) {
	t.stack = append(t.stack, f)
}

func (t *Tracker) pop() {
	t.stack = t.stack[:len(t.stack)-1]
}
