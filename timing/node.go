// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timing

import "time"

// Node is a single elapsed-time measurement.  Nodes are created by the attach methods of
// Scope and Group, which return the node so that callers can hang pre-built children off it.
//
// The short field names keep encoded trees compact enough to travel in HTTP headers.  For
// the same reason, Name should contain only ASCII characters.
type Node struct {
	// Name identifies the checkpoint
	Name string `codec:"N" json:"N"`

	// Value is the elapsed time in whole milliseconds
	Value int64 `codec:"V" json:"V"`

	// Children are optional nested measurements.  This field is nil unless a caller adds children.
	Children []*Node `codec:"C" json:"C,omitempty"`
}

// Add appends children to this node and returns the node
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Duration returns Value as a time.Duration
func (n *Node) Duration() time.Duration {
	return time.Duration(n.Value) * time.Millisecond
}

// Total sums the values of the given nodes.  Children are not included, since they
// normally describe a breakdown of their parent's value.
func Total(nodes []*Node) (total int64) {
	for _, n := range nodes {
		if n != nil {
			total += n.Value
		}
	}

	return
}
