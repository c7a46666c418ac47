package syntax

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/pterm/pterm"
)

// LeveledList flattens trees into a pterm.LeveledList for rendering with
// pterm.DefaultTree. Used by the --dump-syntax mode.
func LeveledList(a *Arena, roots []NodeID) pterm.LeveledList {
	var ll pterm.LeveledList
	for _, id := range roots {
		ll = leveledNode(a, id, ll, 0)
	}
	return ll
}

func leveledNode(a *Arena, id NodeID, ll pterm.LeveledList, level int) pterm.LeveledList {
	n := a.Node(id)
	if n.List {
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  fmt.Sprintf("%s…%s %s", n.Open, n.Close, n.Span),
		})
		for _, child := range n.Children {
			ll = leveledNode(a, child, ll, level+1)
		}
		return ll
	}
	label := fmt.Sprintf("%q %s", n.Text, n.Span)
	if n.Kind != Normal {
		label = fmt.Sprintf("%q %s %s", n.Text, n.Kind, n.Span)
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: label})
	return ll
}
