package internal

import "golang.org/x/exp/slices"

// SubscriptionGraph maps each signal to the effects that read it.
// Edges are only ever added.
type SubscriptionGraph struct {
	guard Guard

	subs  map[SignalID]map[EffectID]struct{}
	edges int
}

func NewSubscriptionGraph() *SubscriptionGraph {
	return &SubscriptionGraph{
		guard: NewGuard("subscription graph"),
		subs:  make(map[SignalID]map[EffectID]struct{}),
	}
}

// Subscribe records that effect depends on signal.
// Returns false if the edge already existed.
func (g *SubscriptionGraph) Subscribe(signal SignalID, effect EffectID) bool {
	defer g.guard.BorrowMut()()

	set, ok := g.subs[signal]
	if !ok {
		set = make(map[EffectID]struct{})
		g.subs[signal] = set
	}

	if _, ok := set[effect]; ok {
		return false
	}

	set[effect] = struct{}{}
	g.edges++
	return true
}

// Subscribers returns a snapshot of the subscribers of signal in ascending id order.
func (g *SubscriptionGraph) Subscribers(signal SignalID) []EffectID {
	defer g.guard.Borrow()()

	set := g.subs[signal]
	ids := make([]EffectID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// Edges returns the total number of subscriptions.
func (g *SubscriptionGraph) Edges() int {
	return g.edges
}
