// Package builder defines shared constants used by graph builders, ensuring
// consistent validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodBinaryTree is the canonical name for the BinaryTree constructor.
	MethodBinaryTree = "BinaryTree"
	// MethodSkipPath is the canonical name for the SkipPath constructor.
	MethodSkipPath = "SkipPath"
	// MethodMycielski is the canonical name for the Mycielski constructor.
	MethodMycielski = "Mycielski"
	// MethodRandomSimple is the canonical name for the RandomSimple constructor.
	MethodRandomSimple = "RandomSimple"
)

//-----------------------------------------------------------------------------
// Parameter Bounds
//-----------------------------------------------------------------------------

// MinPartitionSize is the smallest side of a complete bipartite graph.
const MinPartitionSize = 1

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a valid ring without loops or multi-edges.
const MinCycleNodes = 3

// MinCompleteNodes is the smallest complete graph (K_1, no edges).
const MinCompleteNodes = 1

// MinPathNodes is the smallest path; P_1 is a single vertex with no edges.
const MinPathNodes = 1

// MinStarNodes is the smallest star; a lone center is allowed.
const MinStarNodes = 1

// MinTreeNodes is the smallest binary-heap tree (the root alone).
const MinTreeNodes = 1

// MinSkipPathNodes is the smallest skip path.
const MinSkipPathNodes = 1

// MinMycielskiOrder is the base level of the Mycielski family: a single edge.
const MinMycielskiOrder = 2

// MaxMycielskiOrder bounds the Mycielski level. Order 14 already has
// 12287 vertices and 1847756 edges; each level roughly triples the edges.
const MaxMycielskiOrder = 14

// MaxVertices and MaxEdges bound every constructor. Graphs are materialized
// in memory before they are written, and K 4096 (8386560 edges) is the
// largest complete graph that fits under MaxEdges.
const (
	MaxVertices = 1 << 23
	MaxEdges    = 1 << 23
)

// MinRandomVertices is the smallest vertex count for RandomSimple.
const MinRandomVertices = 1

// MinRandomEdges is the smallest edge count for RandomSimple.
const MinRandomEdges = 0
