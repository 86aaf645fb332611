package menu

import (
	"github.com/jewfaith/organizer/internal/document"
	textfmt "github.com/jewfaith/organizer/internal/format/text"
)

// Node represents a level definition within the registry tree.
type Node struct {
	ID       string
	Title    string
	Loader   Loader
	Children map[string]*Node
}

// Registry exposes lookup utilities for level definitions.
type Registry struct {
	root  *Node
	nodes map[string]*Node
}

// BuildRegistry constructs the theme list node and one verse node per theme
// of doc.
func BuildRegistry(doc *document.Document) *Registry {
	root := &Node{
		ID:       RootID,
		Title:    "themes",
		Loader:   ThemeItems,
		Children: make(map[string]*Node, doc.Len()),
	}
	nodes := map[string]*Node{RootID: root}
	for _, name := range doc.Names() {
		name := name
		node := &Node{
			ID:    ThemeID(name),
			Title: textfmt.Capitalize(name),
			Loader: func(ctx Context) ([]Item, error) {
				return VerseItems(ctx, name)
			},
		}
		nodes[node.ID] = node
		root.Children[node.ID] = node
	}
	return &Registry{root: root, nodes: nodes}
}

// Root returns the registry root node.
func (r *Registry) Root() *Node {
	return r.root
}

// Find locates a node by ID.
func (r *Registry) Find(id string) (*Node, bool) {
	node, ok := r.nodes[id]
	return node, ok
}

// Child resolves a child node under the given parent for the provided key.
func (r *Registry) Child(parentID, key string) (*Node, bool) {
	parent, ok := r.nodes[parentID]
	if !ok {
		return nil, false
	}
	node, ok := parent.Children[key]
	return node, ok
}
