package routing

import (
	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/util"
	"go.uber.org/zap"
)

// ShortestPath resolves the anchors of both query points and searches between them.
func (r *Router) ShortestPath(start da.Coordinate, startLevel float64, end da.Coordinate,
	endLevel float64) (*Path, error) {
	s, ok := r.ResolveAnchor(start, startLevel)
	if !ok {
		return nil, util.WrapErrorf(ErrNoStartNode, util.ErrNotFound, "no start node on level %s",
			util.FormatFloat(startLevel))
	}
	t, ok := r.ResolveAnchor(end, endLevel)
	if !ok {
		return nil, util.WrapErrorf(ErrNoEndNode, util.ErrNotFound, "no end node on level %s",
			util.FormatFloat(endLevel))
	}
	return r.ShortestPathBetween(s.Node, t.Node)
}

// ShortestPathBetween runs A* from s to t. The heuristic is the edge cost formula evaluated
// directly between a node and t, so it never overestimates.
func (r *Router) ShortestPathBetween(s, t da.Index) (*Path, error) {
	g := r.graph
	info := make(map[da.Index]*VertexInfo)
	pq := da.NewFourAryHeap[da.Index]()

	sNode := da.NewPriorityQueueNode(0, s)
	pq.Insert(sNode)
	info[s] = NewVertexInfo(0, da.INVALID_INDEX, da.TRANSITION_NONE, sNode)

	target := da.INVALID_INDEX
	numSettledNodes := 0
	for !pq.IsEmpty() {
		item, _ := pq.ExtractMin()
		u := item.GetItem()
		numSettledNodes++
		if g.Equal(u, t) {
			target = u
			break
		}

		uCost := info[u].GetCost()
		g.ForOutEdgesOf(u, func(e da.Edge) {
			v := e.To
			newCost := uCost + e.Cost
			vInfo, seen := info[v]
			if seen && newCost >= vInfo.GetCost() {
				return
			}
			priority := newCost + g.VerticalDistance(v, t)

			if !seen {
				hn := da.NewPriorityQueueNode(priority, v)
				pq.Insert(hn)
				info[v] = NewVertexInfo(newCost, u, e.Transition, hn)
				return
			}

			vInfo.Update(newCost, u, e.Transition)
			if vInfo.GetHeapNode().InHeap() {
				_ = pq.DecreaseKey(vInfo.GetHeapNode(), priority)
				return
			}
			// settled node improved again, put it back in the frontier
			hn := da.NewPriorityQueueNode(priority, v)
			pq.Insert(hn)
			vInfo.SetHeapNode(hn)
		})
	}

	if target == da.INVALID_INDEX {
		r.log.Debug("search exhausted without reaching the end",
			zap.String("start", g.GetNode(s).Name), zap.String("end", g.GetNode(t).Name),
			zap.Int("settled", numSettledNodes))
		return nil, util.WrapErrorf(ErrNoRoute, util.ErrNotFound, "no route from %s to %s",
			g.GetNode(s).Name, g.GetNode(t).Name)
	}

	nodes := make([]PathNode, 0)
	for cur := target; cur != da.INVALID_INDEX; cur = info[cur].GetParent() {
		nodes = append(nodes, newPathNode(g, cur, info[cur].GetTransition()))
	}
	nodes = util.ReverseG(nodes)

	r.log.Debug("route found", zap.Int("settled", numSettledNodes), zap.Int("nodes", len(nodes)))
	return &Path{Nodes: nodes, Cost: info[target].GetCost()}, nil
}
