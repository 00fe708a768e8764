package transition

// Runner executes a transition's operations strictly in order. The real
// implementation lives with the host's animation machinery; the engine only
// requires ordering and the ability to stop when a transition goes stale.
type Runner interface {
	// Run invokes apply for each op in order. apply returns false when the
	// transition has been superseded; the runner must not start any
	// remaining op after that.
	Run(t *Transition, apply func(Op) bool)
}

// Immediate is a Runner that applies every operation synchronously with no
// wall-clock delay. Used headless and in tests, where timed animation has
// no observable meaning.
type Immediate struct{}

// Run applies each op in order, stopping as soon as apply reports the
// transition stale.
func (Immediate) Run(t *Transition, apply func(Op) bool) {
	for _, op := range t.Ops {
		if !apply(op) {
			return
		}
	}
}

var _ Runner = Immediate{}
