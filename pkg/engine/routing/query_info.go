package routing

import (
	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
)

// VertexInfo is the search label of one node: best known cost, predecessor and the heap
// entry while the node is still in the frontier.
type VertexInfo struct {
	cost       float64
	parent     da.Index
	transition da.TransitionKind // kind of the edge parent -> node
	heapNode   *da.PriorityQueueNode[da.Index]
}

func NewVertexInfo(cost float64, parent da.Index, transition da.TransitionKind,
	hnode *da.PriorityQueueNode[da.Index]) *VertexInfo {
	return &VertexInfo{
		cost:       cost,
		parent:     parent,
		transition: transition,
		heapNode:   hnode,
	}
}

func (vi *VertexInfo) GetCost() float64 {
	return vi.cost
}

func (vi *VertexInfo) GetParent() da.Index {
	return vi.parent
}

func (vi *VertexInfo) GetTransition() da.TransitionKind {
	return vi.transition
}

func (vi *VertexInfo) GetHeapNode() *da.PriorityQueueNode[da.Index] {
	return vi.heapNode
}

func (vi *VertexInfo) Update(cost float64, parent da.Index, transition da.TransitionKind) {
	vi.cost = cost
	vi.parent = parent
	vi.transition = transition
}

func (vi *VertexInfo) SetHeapNode(hnode *da.PriorityQueueNode[da.Index]) {
	vi.heapNode = hnode
}
