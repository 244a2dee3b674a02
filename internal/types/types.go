// Package types defines the data structures shared across the projtree commands.
package types

// Node kinds recorded on TreeNode values.
const (
	// NodeKindRoot identifies the node representing the scanned root directory.
	NodeKindRoot = "root"
	// NodeKindDirectory identifies a directory entry.
	NodeKindDirectory = "directory"
	// NodeKindFile identifies a regular file entry.
	NodeKindFile = "file"
	// NodeKindPermissionError identifies a leaf recording a directory whose
	// entries could not be listed.
	NodeKindPermissionError = "permission_error"
)

// TreeNode represents one visitable filesystem entry in a scanned tree.
// Label carries the bare entry name for directory and file nodes, the
// scanned path for the root node, and the denied path for permission-error
// leaves. Children preserve ascending lexicographic name order and stay
// empty for file and permission-error nodes.
type TreeNode struct {
	Label    string      `json:"label"`
	Kind     string      `json:"kind"`
	Children []*TreeNode `json:"children,omitempty"`
}
