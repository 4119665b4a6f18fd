package hierarchy

import (
	"Launchbox/internal/models"
	"sort"
)

// ProjectNode is a node of the materialized project tree. It is rebuilt from
// the flat project list on every structural change and never persisted.
type ProjectNode struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Label      string          `json:"label"`
	IsFolder   bool            `json:"is_folder"`
	OrderIndex int             `json:"order_index"`
	Parent     *ProjectNode    `json:"-"`
	Children   []*ProjectNode  `json:"children,omitempty"`
	Project    *models.Project `json:"-"`
}

// FolderMarker prefixes folder labels in the rendered tree.
const FolderMarker = "📁 "

// RootLabel names the implicit root level in computed folder paths.
const RootLabel = "Root"

// PathSeparator joins ancestor folder names in computed folder paths.
const PathSeparator = " / "

// Forest is the result of a Build: the root nodes plus an id index over
// every node.
type Forest struct {
	Roots []*ProjectNode
	index map[string]*ProjectNode
}

// Build constructs the forest from the flat project list. Each project
// becomes exactly one node; a ParentID that names no known project (or the
// project itself) is treated as "no parent" and the node becomes a root.
// Sibling lists are sorted by OrderIndex.
func Build(projects []models.Project) *Forest {
	forest := &Forest{index: make(map[string]*ProjectNode, len(projects))}

	for i := range projects {
		p := &projects[i]
		node := &ProjectNode{
			ID:         p.ID,
			Name:       p.Name,
			Label:      p.Name,
			IsFolder:   p.IsFolder,
			OrderIndex: p.OrderIndex,
		}
		if p.IsFolder {
			node.Label = FolderMarker + p.Name
		} else {
			node.Project = p
		}
		forest.index[p.ID] = node
	}

	for i := range projects {
		p := &projects[i]
		node := forest.index[p.ID]
		if p.ParentID != nil && *p.ParentID != p.ID {
			if parent, ok := forest.index[*p.ParentID]; ok {
				node.Parent = parent
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		forest.Roots = append(forest.Roots, node)
	}

	// A parent cycle (A -> B -> A) leaves every member unreachable from the
	// roots. Cut one parent link per cycle and promote that node, so the
	// forest always covers every project.
	reached := make(map[string]bool, len(projects))
	var mark func(nodes []*ProjectNode)
	mark = func(nodes []*ProjectNode) {
		for _, n := range nodes {
			if reached[n.ID] {
				continue
			}
			reached[n.ID] = true
			mark(n.Children)
		}
	}
	mark(forest.Roots)
	for i := range projects {
		node := forest.index[projects[i].ID]
		if reached[node.ID] {
			continue
		}
		detach(node)
		forest.Roots = append(forest.Roots, node)
		mark([]*ProjectNode{node})
	}

	sortChildren(forest.Roots)
	for _, node := range forest.index {
		sortChildren(node.Children)
	}
	return forest
}

func detach(node *ProjectNode) {
	parent := node.Parent
	if parent == nil {
		return
	}
	for i, child := range parent.Children {
		if child == node {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			break
		}
	}
	node.Parent = nil
}

func sortChildren(nodes []*ProjectNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].OrderIndex < nodes[j].OrderIndex
	})
}

// Find returns the node for a project id, or nil if the id is unknown.
func (f *Forest) Find(id string) *ProjectNode {
	return f.index[id]
}

// Len reports the total node count.
func (f *Forest) Len() int {
	return len(f.index)
}

// Walk visits every node depth-first in sibling order.
func (f *Forest) Walk(visit func(node *ProjectNode)) {
	var walk func(nodes []*ProjectNode)
	walk = func(nodes []*ProjectNode) {
		for _, node := range nodes {
			visit(node)
			walk(node.Children)
		}
	}
	walk(f.Roots)
}

// Descendants collects every non-folder project in the subtree rooted at
// node, depth-first in sibling order. The node itself is included when it is
// not a folder.
func Descendants(node *ProjectNode) []*models.Project {
	if node == nil {
		return nil
	}
	var projects []*models.Project
	var walk func(n *ProjectNode)
	walk = func(n *ProjectNode) {
		if !n.IsFolder && n.Project != nil {
			projects = append(projects, n.Project)
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(node)
	return projects
}

// FolderPath renders the ancestor folder chain of a node, outermost first.
// A root-level node yields RootLabel.
func FolderPath(node *ProjectNode) string {
	if node == nil {
		return RootLabel
	}
	var names []string
	for p := node.Parent; p != nil; p = p.Parent {
		names = append([]string{p.Name}, names...)
	}
	if len(names) == 0 {
		return RootLabel
	}
	path := names[0]
	for _, name := range names[1:] {
		path += PathSeparator + name
	}
	return path
}

// WouldCreateCycle reports whether reparenting project id under newParentID
// would make the project its own ancestor. Used to reject the edit before it
// reaches storage; Build itself tolerates bad parents by promoting to root.
func WouldCreateCycle(projects []models.Project, id string, newParentID *string) bool {
	if newParentID == nil {
		return false
	}
	if *newParentID == id {
		return true
	}
	parents := make(map[string]*string, len(projects))
	for i := range projects {
		parents[projects[i].ID] = projects[i].ParentID
	}
	seen := make(map[string]bool)
	for cur := newParentID; cur != nil; {
		if *cur == id {
			return true
		}
		if seen[*cur] {
			return false
		}
		seen[*cur] = true
		next, ok := parents[*cur]
		if !ok {
			return false
		}
		cur = next
	}
	return false
}
