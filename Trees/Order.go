package Trees

import "strconv"

// Order of visiting the nodes of a tree.
type Order uint8

const (
	// InOrder visits left subtree, node, right subtree. The values come out ascending.
	InOrder Order = iota
	// PreOrder visits node, left subtree, right subtree.
	PreOrder
	// PostOrder visits left subtree, right subtree, node.
	PostOrder
	// LevelOrder visits the nodes breadth first.
	LevelOrder
)

var orderNames = [...]string{"in-order", "pre-order", "post-order", "level-order"}

func (o Order) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return "Order(" + strconv.Itoa(int(o)) + ")"
}

// ParseOrder is the inverse of Order.String.
func ParseOrder(s string) (Order, bool) {
	for i, n := range orderNames {
		if n == s {
			return Order(i), true
		}
	}
	return 0, false
}
