package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Roberson-Andrade/own-kata-machine/Trees"
	"github.com/pterm/pterm"
)

// shapeOf returns the layout of tree for pterm. Inserting the pre-order of a binary search tree
// into an empty one rebuilds the same shape, which gives node access for any Trees.Tree.
// The second return value is false when the tree is empty.
func shapeOf(tree Trees.Tree[int]) (pterm.TreeNode, bool) {
	b := Trees.New[int]()
	for _, v := range tree.PreOrder() {
		b.Insert(v)
	}
	if b.Root() == nil {
		return pterm.TreeNode{}, false
	}
	return shapeNode(b.Root(), ""), true
}

func shapeNode(n *Trees.Node[int], side string) pterm.TreeNode {
	tn := pterm.TreeNode{Text: side + strconv.Itoa(n.Value())}
	if l := n.Left(); l != nil {
		tn.Children = append(tn.Children, shapeNode(l, "L: "))
	}
	if r := n.Right(); r != nil {
		tn.Children = append(tn.Children, shapeNode(r, "R: "))
	}
	return tn
}

func join(vs []int) string {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, " ")
}

func optional(v int, has bool) string {
	if !has {
		return "none"
	}
	return strconv.Itoa(v)
}

// report is the table of all queries of tree, with a header row.
func report(tree Trees.Tree[int]) pterm.TableData {
	data := pterm.TableData{{"query", "result"}}
	for o := Trees.InOrder; o <= Trees.LevelOrder; o++ {
		var vs []int
		tree.Walk(o, func(v int) bool {
			vs = append(vs, v)
			return true
		})
		data = append(data, []string{o.String(), join(vs)})
	}
	return append(data,
		[]string{"minimum", optional(tree.Minimum())},
		[]string{"maximum", optional(tree.Maximum())},
		[]string{"height", strconv.Itoa(tree.Height())},
		[]string{"balanced", strconv.FormatBool(tree.Balanced())},
		[]string{"size", strconv.FormatUint(uint64(tree.Size()), 10)},
	)
}

func renderShape(w io.Writer, tree Trees.Tree[int]) error {
	root, ok := shapeOf(tree)
	if !ok {
		return nil
	}
	s, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, s)
	return err
}

func render(w io.Writer, tree Trees.Tree[int], shape bool) error {
	if shape {
		if err := renderShape(w, tree); err != nil {
			return err
		}
	}
	s, err := pterm.DefaultTable.WithHasHeader().WithData(report(tree)).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}
