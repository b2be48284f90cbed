package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeRelation(t *testing.T) {
	tests := []struct {
		name  string
		self  uint
		other uint
		edges []RequestEdge
		want  Relation
	}{
		{
			name:  "no rows",
			self:  1,
			other: 2,
			edges: nil,
			want:  RelationNone,
		},
		{
			name:  "pending outgoing",
			self:  1,
			other: 2,
			edges: []RequestEdge{{FromID: 1, ToID: 2}},
			want:  RelationAsking,
		},
		{
			name:  "pending incoming",
			self:  1,
			other: 2,
			edges: []RequestEdge{{FromID: 2, ToID: 1}},
			want:  RelationAsked,
		},
		{
			name:  "accepted either direction",
			self:  1,
			other: 2,
			edges: []RequestEdge{{FromID: 2, ToID: 1, IsAccepted: true}},
			want:  RelationFriend,
		},
		{
			name:  "rows for unrelated users ignored",
			self:  1,
			other: 2,
			edges: []RequestEdge{{FromID: 1, ToID: 3}, {FromID: 4, ToID: 1, IsAccepted: true}},
			want:  RelationNone,
		},
		{
			name:  "accepted wins over stale pending",
			self:  1,
			other: 2,
			edges: []RequestEdge{{FromID: 1, ToID: 2}, {FromID: 2, ToID: 1, IsAccepted: true}},
			want:  RelationFriend,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeRelation(tt.self, tt.other, tt.edges))
		})
	}
}

// The relation is mirror symmetric: if A sees ASKING, B sees ASKED, and
// NONE/FRIEND look the same from both sides.
func TestComputeRelationSymmetry(t *testing.T) {
	mirror := map[Relation]Relation{
		RelationNone:   RelationNone,
		RelationAsking: RelationAsked,
		RelationAsked:  RelationAsking,
		RelationFriend: RelationFriend,
	}
	cases := [][]RequestEdge{
		nil,
		{{FromID: 1, ToID: 2}},
		{{FromID: 2, ToID: 1}},
		{{FromID: 1, ToID: 2, IsAccepted: true}},
	}
	for _, edges := range cases {
		a := ComputeRelation(1, 2, edges)
		b := ComputeRelation(2, 1, edges)
		assert.Equal(t, mirror[a], b, "edges: %+v", edges)
	}
}
