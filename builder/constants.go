// Package builder defines the method tags and minimum sizes shared by
// topology constructors.
package builder

// Method tags prefix constructor errors.
const (
	methodEdge              = "Edge"
	methodIsolated          = "Isolated"
	methodPath              = "Path"
	methodCycle             = "Cycle"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	methodRandomSparse      = "RandomSparse"
	methodRandomOutDegree   = "RandomOutDegree"
)

// Minimum sizes per topology.
const (
	// MinIsolatedNodes is the smallest edgeless block.
	MinIsolatedNodes = 1
	// MinPathNodes is the smallest path with an edge.
	MinPathNodes = 2
	// MinCycleNodes is the smallest ring without loops or multi-edges.
	MinCycleNodes = 3
	// MinStarNodes is one center plus one leaf.
	MinStarNodes = 2
	// MinWheelNodes is a hub plus a 3-cycle rim.
	MinWheelNodes = 4
	// MinCompleteNodes is K_1.
	MinCompleteNodes = 1
	// MinPartition is the smallest side of K_{a,b}.
	MinPartition = 1
	// MinGridDim is the smallest row or column count.
	MinGridDim = 1
	// MinRandomNodes is the smallest random block.
	MinRandomNodes = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
