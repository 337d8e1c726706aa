package datastructure

// StronglyConnectedComponents runs kosaraju's algorithm over the directed graph. comp[u] is the
// component id of node u; ids are numbered in discovery order of the second pass.
func (g *Graph) StronglyConnectedComponents() (comp []int, count int) {
	n := g.NumberOfNodes()

	reverse := make([][]Index, n)
	for u := range g.adj {
		for _, e := range g.adj[u] {
			reverse[e.To] = append(reverse[e.To], Index(u))
		}
	}

	order := make([]Index, 0, n)
	visited := make([]bool, n)
	for v := 0; v < n; v++ {
		if !visited[v] {
			g.dfs(Index(v), visited, func(u Index) []Index { return g.heads(u) }, &order)
		}
	}

	comp = make([]int, n)
	visited = make([]bool, n)
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		if visited[v] {
			continue
		}
		component := make([]Index, 0, 8)
		g.dfs(v, visited, func(u Index) []Index { return reverse[u] }, &component)
		for _, u := range component {
			comp[u] = count
		}
		count++
	}
	return comp, count
}

func (g *Graph) heads(u Index) []Index {
	out := make([]Index, len(g.adj[u]))
	for i, e := range g.adj[u] {
		out[i] = e.To
	}
	return out
}

// dfs appends the nodes reachable from root, unvisited so far, in post-order.
func (g *Graph) dfs(root Index, visited []bool, next func(u Index) []Index, output *[]Index) {
	type frame struct {
		u    Index
		succ []Index
		i    int
	}
	visited[root] = true
	stack := []frame{{u: root, succ: next(root)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.i < len(top.succ) {
			v := top.succ[top.i]
			top.i++
			if !visited[v] {
				visited[v] = true
				stack = append(stack, frame{u: v, succ: next(v)})
			}
			continue
		}
		*output = append(*output, top.u)
		stack = stack[:len(stack)-1]
	}
}
