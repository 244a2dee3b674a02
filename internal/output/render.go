// Package output renders scanned trees for terminal display.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/xlab/treeprint"

	"github.com/projtree/projtree/internal/types"
)

const (
	directoryGlyph = "📂"
	fileGlyph      = "📄"
	warningGlyph   = "⚠️"

	// rootLabelFormat renders the scanned root path.
	rootLabelFormat = "%s/"
	// directoryLabelFormat renders directory entries with a trailing slash.
	directoryLabelFormat = "%s %s/"
	// fileLabelFormat renders plain file entries.
	fileLabelFormat = "%s %s"
	// permissionDeniedFormat annotates directories that could not be listed.
	permissionDeniedFormat = "Permission denied: %s"
)

// Label styles degrade to plain text when the writer is not a terminal.
var (
	rootLabelStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	directoryLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	permissionLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// RenderTree returns the terminal rendering of the scanned tree rooted at rootNode.
func RenderTree(rootNode *types.TreeNode) string {
	printedTree := treeprint.NewWithRoot(nodeLabel(rootNode))
	appendChildren(printedTree, rootNode)
	return printedTree.String()
}

// WriteTree writes the terminal rendering of rootNode to writer.
func WriteTree(writer io.Writer, rootNode *types.TreeNode) error {
	_, writeError := io.WriteString(writer, RenderTree(rootNode))
	return writeError
}

// appendChildren mirrors the node's children onto the printed tree, branching
// on directories and attaching leaves for files and permission errors.
func appendChildren(printedBranch treeprint.Tree, node *types.TreeNode) {
	for _, childNode := range node.Children {
		if childNode.Kind == types.NodeKindDirectory {
			childBranch := printedBranch.AddBranch(nodeLabel(childNode))
			appendChildren(childBranch, childNode)
			continue
		}
		printedBranch.AddNode(nodeLabel(childNode))
	}
}

// nodeLabel formats the display label for a node according to its kind.
func nodeLabel(node *types.TreeNode) string {
	switch node.Kind {
	case types.NodeKindRoot:
		return rootLabelStyle.Render(fmt.Sprintf(rootLabelFormat, node.Label))
	case types.NodeKindDirectory:
		return directoryLabelStyle.Render(fmt.Sprintf(directoryLabelFormat, directoryGlyph, node.Label))
	case types.NodeKindPermissionError:
		return warningGlyph + " " + permissionLabelStyle.Render(fmt.Sprintf(permissionDeniedFormat, node.Label))
	default:
		return fmt.Sprintf(fileLabelFormat, fileGlyph, node.Label)
	}
}
