package main

import (
	"github.com/expr-lang/expr/ast"
	"gridCore/contracts"
)

type cellRef struct {
	name    string
	address string
}

// FindCellRefsVisitor collects `R{row}C{col}` identifiers in order of appearance, without duplicates
type FindCellRefsVisitor struct {
	canonicalizer contracts.Canonicalizer
	refs          []cellRef
	seen          map[string]bool
}

func (v *FindCellRefsVisitor) Visit(node *ast.Node) {
	identifierNode, ok := (*node).(*ast.IdentifierNode)
	if !ok {
		return
	}

	address, ok := v.canonicalizer.RefToAddress(identifierNode.Value)
	if !ok {
		return
	}

	if v.seen == nil {
		v.seen = map[string]bool{}
	}
	if v.seen[identifierNode.Value] {
		return
	}
	v.seen[identifierNode.Value] = true

	v.refs = append(v.refs, cellRef{name: identifierNode.Value, address: address})
}
