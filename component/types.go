package component

import "github.com/katalvlaran/lvlseg/edgestore"

// Infinity is the dissimilarity reported when no positive-weight edge joins
// two components.
const Infinity int64 = 1_000_000

// ID addresses a component in a Table's arena.
type ID int

// None is returned by lookups that have no component to report.
const None ID = -1

// Member is one record of a component chain.
type Member struct {
	Vertex       int   // vertex id this record represents
	AttachWeight int64 // weight of the edge that attached it; 0 for the chain origin
}

// component is an arena slot. An absorbed component has a nil chain.
type component struct {
	members    []Member
	confidence int64
}

// Confidence walks the whole chain once and returns
// maxAttachWeight + constant/size with integer (floor) division.
// An empty chain has no size to divide by and reports constant.
// Complexity: O(len(members)).
func Confidence(members []Member, constant int64) int64 {
	if len(members) == 0 {
		return constant
	}
	var greatest int64
	for _, m := range members {
		if m.AttachWeight > greatest {
			greatest = m.AttachWeight
		}
	}

	return greatest + constant/int64(len(members))
}

// Dissimilarity returns the dissimilarity between the components a and b as
// seen through edge e: e.Weight when it is positive, Infinity otherwise.
//
// Only the single edge under consideration is measured; the members of a and
// b are not searched for a cheaper connecting edge. Either chain being empty
// also yields Infinity.
func Dissimilarity(e edgestore.Edge, a, b []Member) int64 {
	if len(a) == 0 || len(b) == 0 {
		return Infinity
	}
	if e.Weight > 0 {
		return e.Weight
	}

	return Infinity
}
