package internal

import "strconv"

// SignalID indexes a slot in the value store. Ids are assigned in creation order and never reused.
type SignalID uint64

func (id SignalID) String() string {
	return "signal#" + strconv.FormatUint(uint64(id), 10)
}

// EffectID indexes a closure in the effect store. Same allocation rules as SignalID.
type EffectID uint64

func (id EffectID) String() string {
	return "effect#" + strconv.FormatUint(uint64(id), 10)
}
