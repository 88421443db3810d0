// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timingcodec

import (
	"errors"

	"github.com/yongfa365/perflog/timing"
)

// ErrCyclicReference is returned when a node tree contains a node that is its own ancestor
// and the Codec is not cyclic tolerant.
var ErrCyclicReference = errors.New("cyclic reference in timing node tree")

// prepare checks node trees for cycles.  When tolerant, the returned value is a copy of the
// tree with every repeated ancestor dropped.  Values that are not node trees pass through as is.
func prepare(v interface{}, tolerant bool) (interface{}, error) {
	switch t := v.(type) {
	case *timing.Node:
		if t == nil {
			return v, nil
		}

		pruned, err := prune([]*timing.Node{t}, make(map[*timing.Node]bool), tolerant)
		if err != nil {
			return nil, err
		}

		return pruned[0], nil

	case timing.Node:
		return prepare(&t, tolerant)

	case []*timing.Node:
		return prune(t, make(map[*timing.Node]bool), tolerant)

	default:
		return v, nil
	}
}

func prune(nodes []*timing.Node, ancestors map[*timing.Node]bool, tolerant bool) ([]*timing.Node, error) {
	if nodes == nil {
		return nil, nil
	}

	output := make([]*timing.Node, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			output = append(output, nil)
			continue
		}

		if ancestors[n] {
			if tolerant {
				continue
			}

			return nil, ErrCyclicReference
		}

		ancestors[n] = true
		children, err := prune(n.Children, ancestors, tolerant)
		delete(ancestors, n)
		if err != nil {
			return nil, err
		}

		output = append(output, &timing.Node{
			Name:     n.Name,
			Value:    n.Value,
			Children: children,
		})
	}

	if len(output) == 0 && len(nodes) > 0 {
		// every child repeated an ancestor, so the node has no children left
		return nil, nil
	}

	return output, nil
}
