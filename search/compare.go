package search

// Comparison relates two search results for the same pair, typically from
// different algorithms.
type Comparison struct {
	A, B      Result
	BothFound bool
	Same      bool // identical node sequences
	NodeDelta int  // len(A.Path) - len(B.Path); 0 unless both found
}

// Compare relates two results, e.g. a DFS and a BFS answer for the same
// origin and destination.
func Compare(a, b Result) Comparison {
	c := Comparison{A: a, B: b, BothFound: a.Found && b.Found}
	if !c.BothFound {
		return c
	}
	c.NodeDelta = len(a.Path) - len(b.Path)
	c.Same = len(a.Path) == len(b.Path)
	if c.Same {
		for i := range a.Path {
			if a.Path[i] != b.Path[i] {
				c.Same = false
				break
			}
		}
	}
	return c
}
