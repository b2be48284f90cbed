package domain

// RequestEdge is the subset of a friend-request row needed to derive a relation.
type RequestEdge struct {
	FromID     uint
	ToID       uint
	IsAccepted bool
}

// ComputeRelation derives the relation between self and other from the
// friend-request rows that exist between them. At most one row is expected per
// pair; if several exist, an accepted one wins.
func ComputeRelation(selfID, otherID uint, edges []RequestEdge) Relation {
	var pending *RequestEdge
	for i := range edges {
		e := &edges[i]
		if !betweenPair(e, selfID, otherID) {
			continue
		}
		if e.IsAccepted {
			return RelationFriend
		}
		if pending == nil {
			pending = e
		}
	}
	if pending == nil {
		return RelationNone
	}
	if pending.FromID == selfID {
		return RelationAsking
	}
	return RelationAsked
}

func betweenPair(e *RequestEdge, a, b uint) bool {
	return (e.FromID == a && e.ToID == b) || (e.FromID == b && e.ToID == a)
}
