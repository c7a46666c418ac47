package lang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/sunlin7/difft"
	"github.com/sunlin7/difft/syntax"
)

// Lower tokenizes one side and builds its atom/list tree in the arena.
// Opening and closing delimiters become list boundaries; an unmatched
// closing delimiter degrades to a plain atom, an unmatched opening
// delimiter is reopened as a plain atom with its children spliced into
// the surrounding level.
//
// When ignoreComments is set, comments never reach the tree; their byte
// ranges are returned instead so the caller can emit them as ignored
// positions.
func Lower(a *syntax.Arena, sp *Spec, src string, ignoreComments bool) (roots []syntax.NodeID, comments []difft.Span, err error) {
	tokens, err := sp.Tokenize(src)
	if err != nil {
		return nil, nil, err
	}

	type openList struct {
		open     Token
		children []syntax.NodeID
	}
	var stack []openList
	emit := func(id syntax.NodeID) {
		if len(stack) == 0 {
			roots = append(roots, id)
			return
		}
		top := &stack[len(stack)-1]
		top.children = append(top.children, id)
	}

	for _, tok := range tokens {
		switch tok.Cat {
		case CatOpen:
			stack = append(stack, openList{open: tok})
		case CatClose:
			if len(stack) > 0 && sp.closeFor(stack[len(stack)-1].open.Lexeme) == tok.Lexeme {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				emit(a.List(top.open.Lexeme, top.open.Span, top.children, tok.Lexeme, tok.Span))
			} else {
				emit(a.Atom(syntax.Normal, tok.Lexeme, tok.Span))
			}
		case CatComment:
			if ignoreComments {
				comments = append(comments, tok.Span)
			} else {
				emit(a.Atom(syntax.Comment, tok.Lexeme, tok.Span))
			}
		case CatString:
			emit(a.Atom(syntax.String, tok.Lexeme, tok.Span))
		case CatKeyword:
			emit(a.Atom(syntax.Keyword, tok.Lexeme, tok.Span))
		default:
			emit(a.Atom(syntax.Normal, tok.Lexeme, tok.Span))
		}
	}

	// Unwind unclosed lists, innermost first.
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		orphans := append([]syntax.NodeID{a.Atom(syntax.Normal, top.open.Lexeme, top.open.Span)}, top.children...)
		if len(stack) == 0 {
			roots = append(roots, orphans...)
		} else {
			parent := &stack[len(stack)-1]
			parent.children = append(parent.children, orphans...)
		}
	}
	return roots, comments, nil
}
