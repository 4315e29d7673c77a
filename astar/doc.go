// Package astar implements a resumable, step-wise A* search over a core.Graph.
//
// Unlike a blocking shortest-path call, an Engine advances one node expansion per
// Step and reports what changed through a SearchState (visited nodes, the frontier
// relaxed by the latest expansion, and the final path once found). A caller such
// as a render loop can call Step once per tick and draw progress in between.
//
// Lifecycle:
//
//	Ready ──Step──▶ Searching ──Step──▶ … ──▶ Found      (goal expanded, Path set)
//	                                      └──▶ Exhausted (open set drained, Path empty)
//
// Found and Exhausted are terminal: further Step calls return false and leave the
// SearchState untouched. Unreachable goals are not errors; they surface as Exhausted.
//
// Priority and heuristic:
//
//   - f(n) = dist[n] + h(n, goal) * HeadingWeight, h = Euclidean 3D distance by default.
//   - HeadingWeight defaults to 15. That inflates h far beyond admissibility: the search
//     heads almost straight for the goal and converges quickly, but the returned path
//     is not guaranteed to be the globally cheapest. Use WithHeadingWeight(1) for
//     classic A*, WithHeadingWeight(0) for Dijkstra order.
//   - Equal f-scores pop in insertion order (FIFO). Node indices never break ties.
//
// Open set:
//
// The open set is a binary heap without decrease-key. Every successful relaxation
// pushes a fresh entry; older entries for the same node stay behind and are
// discarded when popped if the node is already visited ("stale pops"). Step loops
// over stale pops internally, so every Step that returns true has expanded exactly
// one new node.
//
// Finality:
//
// Once a node is visited its dist and predecessor never change again; relaxations
// toward visited nodes are skipped. This keeps predecessor chains acyclic and makes
// CurrentBestPath safe to call at any time.
//
// Complexity:
//
//	– Time:  O((V + E) log E) to exhaustion.
//	– Space: O(V + E) (dist/prev/visited tables plus up to E heap entries).
//
// Thread safety:
//
// An Engine is not safe for concurrent use. The graph is only read and may be
// shared between engines.
package astar
