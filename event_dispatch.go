package fluentkit

// FireEvent routes an event to the target through the three propagation
// phases. Filters run on the path from the root down to the target
// (capture), then the target's handlers run (target), then handlers run
// from the target's parent back up to the root (bubble). Consuming the
// event at any point stops further propagation.
func FireEvent(target Node, event Event) {
	if target == nil || event == nil {
		return
	}

	event.setTarget(target)
	chain := buildChainToRoot(target)

	// Capture: root to target, filters only.
	event.setPhase(PhaseCapture)
	for i := len(chain) - 1; i >= 1; i-- {
		event.setCurrentTarget(chain[i])
		for _, h := range chain[i].WidgetBase().filtersFor(event.Type()) {
			h.fn(event)
			if event.IsConsumed() {
				return
			}
		}
	}

	// Target: the target's own filters run before its handlers.
	event.setPhase(PhaseTarget)
	event.setCurrentTarget(target)
	base := target.WidgetBase()
	for _, h := range base.filtersFor(event.Type()) {
		h.fn(event)
		if event.IsConsumed() {
			return
		}
	}
	for _, h := range base.handlersFor(event.Type()) {
		h.fn(event)
		if event.IsConsumed() {
			return
		}
	}

	// Bubble: target's parent back to root, handlers only.
	event.setPhase(PhaseBubble)
	for i := 1; i < len(chain); i++ {
		event.setCurrentTarget(chain[i])
		for _, h := range chain[i].WidgetBase().handlersFor(event.Type()) {
			h.fn(event)
			if event.IsConsumed() {
				return
			}
		}
	}
}

// buildChainToRoot returns the ancestor chain from the target (index 0) to
// the root (last index).
func buildChainToRoot(target Node) []Node {
	var chain []Node
	for n := target; n != nil; {
		chain = append(chain, n)
		n = n.WidgetBase().Parent()
	}
	return chain
}
