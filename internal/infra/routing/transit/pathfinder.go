package transit

import (
	"container/heap"
	"math"
	"slices"

	"github.com/pkg/errors"
)

// dijkstraNode represents a node in the priority queue
type dijkstraNode struct {
	idx      int
	distance float64
}

// priorityQueue implements heap.Interface for Dijkstra's algorithm.
// Equal distances pop in index order so results do not depend on heap internals.
type priorityQueue []dijkstraNode

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].distance != pq[j].distance {
		return pq[i].distance < pq[j].distance
	}

	return pq[i].idx < pq[j].idx
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(dijkstraNode))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	node := old[n-1]
	*pq = old[:n-1]

	return node
}

// FindPath returns the minimum-weight path from origin to destination and its total weight.
//
// It runs Dijkstra with a binary heap, O((V+E) log V). A path from a station to itself is the
// single station with weight 0.
func FindPath(graph *Graph, origin, destination string) ([]string, float64, error) {
	source, ok := graph.index[origin]
	if !ok {
		return nil, 0, errors.Wrapf(ErrUnknownStation, "origin %q", origin)
	}

	target, ok := graph.index[destination]
	if !ok {
		return nil, 0, errors.Wrapf(ErrUnknownStation, "destination %q", destination)
	}

	if source == target {
		return []string{origin}, 0, nil
	}

	distances, previous := graph.dijkstra(source, target)
	if math.IsInf(distances[target], 1) {
		return nil, 0, errors.Wrapf(ErrUnreachable, "%s -> %s", origin, destination)
	}

	return graph.reconstructPath(previous, target), distances[target], nil
}

// dijkstra stops as soon as target is finalized; finalized nodes are never relaxed again.
func (g *Graph) dijkstra(source, target int) ([]float64, []int) {
	distances := make([]float64, len(g.stations))
	previous := make([]int, len(g.stations))
	finalized := make([]bool, len(g.stations))
	for idx := range distances {
		distances[idx] = math.Inf(1)
		previous[idx] = -1
	}
	distances[source] = 0

	queue := priorityQueue{{idx: source, distance: 0}}
	for queue.Len() > 0 {
		current := heap.Pop(&queue).(dijkstraNode)
		if finalized[current.idx] {
			continue
		}
		finalized[current.idx] = true

		if current.idx == target {
			break
		}

		for _, edge := range g.adjList[current.idx] {
			if finalized[edge.to] {
				continue
			}

			newDist := current.distance + edge.weight
			if newDist < distances[edge.to] {
				distances[edge.to] = newDist
				previous[edge.to] = current.idx
				heap.Push(&queue, dijkstraNode{idx: edge.to, distance: newDist})
			}
		}
	}

	return distances, previous
}

func (g *Graph) reconstructPath(previous []int, target int) []string {
	var path []string
	for current := target; current != -1; current = previous[current] {
		path = append(path, g.stations[current].ID)
	}
	slices.Reverse(path)

	return path
}
