package archive

import (
	"strings"
)

// Node is a folder or file in a virtual archive tree.
// Children keep insertion order, which is the order entries are packaged in.
type Node struct {
	Name    string
	Dir     bool
	Content []byte

	children []*Node
	index    map[string]int
}

// Tree is an in-memory nested structure of named folders and files,
// not yet serialized.
type Tree struct {
	Root *Node
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{Root: newDir("")}
}

func newDir(name string) *Node {
	return &Node{Name: name, Dir: true, index: make(map[string]int)}
}

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// Has reports whether a child with the given name exists.
func (n *Node) Has(name string) bool {
	_, ok := n.index[name]
	return ok
}

// Folder returns the child folder with the given name, creating it if needed.
// An existing folder is reused, so same-named siblings merge; a file with
// that name is replaced by the new folder at the same position.
func (n *Node) Folder(name string) *Node {
	if i, ok := n.index[name]; ok {
		if existing := n.children[i]; existing.Dir {
			return existing
		}
		dir := newDir(name)
		n.children[i] = dir
		return dir
	}
	dir := newDir(name)
	n.index[name] = len(n.children)
	n.children = append(n.children, dir)
	return dir
}

// File adds a file. If the name is already taken the old entry is replaced
// in place and File reports true.
func (n *Node) File(name string, content []byte) (replaced bool) {
	file := &Node{Name: name, Content: content}
	if i, ok := n.index[name]; ok {
		n.children[i] = file
		return true
	}
	n.index[name] = len(n.children)
	n.children = append(n.children, file)
	return false
}

// WalkFunc is called for every node below the root. path uses "/" separators
// and has no trailing slash.
type WalkFunc func(path string, node *Node) error

// Walk visits nodes depth-first in insertion order, parents before children.
func (t *Tree) Walk(fn WalkFunc) error {
	return walk("", t.Root, fn)
}

func walk(prefix string, dir *Node, fn WalkFunc) error {
	for _, child := range dir.children {
		path := child.Name
		if prefix != "" {
			path = prefix + "/" + child.Name
		}
		if err := fn(path, child); err != nil {
			return err
		}
		if child.Dir {
			if err := walk(path, child, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Lookup finds the node at a "/"-separated path, or nil.
func (t *Tree) Lookup(path string) *Node {
	node := t.Root
	for _, part := range strings.Split(strings.Trim(path, "/"), "/") {
		if !node.Dir {
			return nil
		}
		i, ok := node.index[part]
		if !ok {
			return nil
		}
		node = node.children[i]
	}
	return node
}

// Stats counts files and folders in the tree.
func (t *Tree) Stats() (files, folders int) {
	_ = t.Walk(func(_ string, node *Node) error {
		if node.Dir {
			folders++
		} else {
			files++
		}
		return nil
	})
	return files, folders
}
