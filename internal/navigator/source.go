package navigator

// Node is one entry of a browsable tree.
type Node interface {
	ID() string
	DisplayName() string
	IsContainer() bool
}

// Source feeds a navigator: it knows the tree, the navigator knows the
// cursor.
type Source[T Node] interface {
	// Root is the node listed first.
	Root() T

	// Children lists a container in display order. Leaves have none.
	Children(parent T) ([]T, error)

	// Parent returns nil at the top of the tree.
	Parent(node T) *T

	// DisplayPath is the header text for node.
	DisplayPath(node T) string

	// NodeFromID rebuilds a node from an ID returned by ID().
	NodeFromID(id string) (T, bool)
}

// HiddenToggler is implemented by sources that can show or hide dotfiles.
type HiddenToggler interface {
	ToggleHidden() bool
}
