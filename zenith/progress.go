package zenith

import "github.com/hugr-lab/zenith-scan/formula"

// DecodedNode records one tuple node visited while decoding.
type DecodedNode struct {
	// TupleNodeType is the tag found in element 0 of the tuple.
	TupleNodeType string
	// TupleNodeDepth is the nesting depth; the root tuple has depth 0.
	TupleNodeDepth int
	// NodeTypeID is the decoded node type. Only meaningful when Resolved.
	NodeTypeID formula.NodeTypeID
	// Resolved is set once the tuple decoded successfully.
	Resolved bool
}

// DecodeProgress is the diagnostic trail of a single decode call.
// It never influences the decode result.
type DecodeProgress struct {
	tupleNodeCount int
	tupleNodeDepth int
	decodedNodes   []DecodedNode
}

// TupleNodeCount returns the number of tuple nodes entered.
func (p *DecodeProgress) TupleNodeCount() int { return p.tupleNodeCount }

// TupleNodeDepth returns the current depth. After a successful decode it is 0;
// after a failure it is the depth at which decoding stopped.
func (p *DecodeProgress) TupleNodeDepth() int { return p.tupleNodeDepth }

// DecodedNodes returns the visited tuple nodes in traversal order.
func (p *DecodeProgress) DecodedNodes() []DecodedNode { return p.decodedNodes }

// Failed returns the innermost tuple node that did not resolve.
// It returns false when every entered node resolved.
func (p *DecodeProgress) Failed() (DecodedNode, bool) {
	for i := len(p.decodedNodes) - 1; i >= 0; i-- {
		if !p.decodedNodes[i].Resolved {
			return p.decodedNodes[i], true
		}
	}
	return DecodedNode{}, false
}

// enterTupleNode records a tuple node and returns its index in the trail.
func (p *DecodeProgress) enterTupleNode(tupleNodeType string) int {
	p.decodedNodes = append(p.decodedNodes, DecodedNode{
		TupleNodeType:  tupleNodeType,
		TupleNodeDepth: p.tupleNodeDepth,
	})
	p.tupleNodeCount++
	p.tupleNodeDepth++
	return len(p.decodedNodes) - 1
}

func (p *DecodeProgress) exitTupleNode(index int, nodeTypeID formula.NodeTypeID) {
	p.decodedNodes[index].NodeTypeID = nodeTypeID
	p.decodedNodes[index].Resolved = true
	p.tupleNodeDepth--
}
