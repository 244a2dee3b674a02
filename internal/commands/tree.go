// Package commands contains the core traversal logic behind the projtree commands.
package commands

import (
	"os"
	"path/filepath"

	"github.com/projtree/projtree/internal/config"
	"github.com/projtree/projtree/internal/types"
)

// TreeBuilder walks a directory tree and assembles TreeNode structures,
// honoring the exclusion configuration it was constructed with.
type TreeBuilder struct {
	exclusions config.ExclusionConfig
}

// NewTreeBuilder returns a TreeBuilder bound to the provided exclusion configuration.
func NewTreeBuilder(exclusions config.ExclusionConfig) *TreeBuilder {
	return &TreeBuilder{exclusions: exclusions}
}

// BuildTree scans rootDirectoryPath depth-first and returns the root node of
// the visual tree. The scan never modifies the filesystem and is
// deterministic for an unchanged filesystem and configuration. The caller is
// responsible for validating that rootDirectoryPath names a readable
// directory. A directory whose entries cannot be listed is recorded as a
// permission-error leaf instead of failing the scan. Symbolic links and
// special files are omitted entirely and never followed; that is a known
// limitation of the classifier, not a defect.
func (treeBuilder *TreeBuilder) BuildTree(rootDirectoryPath string) *types.TreeNode {
	rootNode := &types.TreeNode{
		Label: rootDirectoryPath,
		Kind:  types.NodeKindRoot,
	}
	treeBuilder.buildInto(rootDirectoryPath, rootNode)
	return rootNode
}

// buildInto appends the visitable entries of directoryPath to parentNode,
// recursing into subdirectories that are not excluded.
func (treeBuilder *TreeBuilder) buildInto(directoryPath string, parentNode *types.TreeNode) {
	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		// The failure stays local: the denied path becomes a leaf and the
		// traversal of siblings above this frame continues.
		parentNode.Children = append(parentNode.Children, &types.TreeNode{
			Label: directoryPath,
			Kind:  types.NodeKindPermissionError,
		})
		return
	}

	// os.ReadDir returns entries sorted by file name, which fixes sibling order.
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		switch {
		case directoryEntry.IsDir():
			if treeBuilder.exclusions.ExcludesDirectory(entryName) {
				// Pruned: excluded directories are never descended into.
				continue
			}
			directoryNode := &types.TreeNode{
				Label: entryName,
				Kind:  types.NodeKindDirectory,
			}
			parentNode.Children = append(parentNode.Children, directoryNode)
			treeBuilder.buildInto(filepath.Join(directoryPath, entryName), directoryNode)
		case directoryEntry.Type().IsRegular():
			if treeBuilder.exclusions.ExcludesFile(entryName) {
				continue
			}
			parentNode.Children = append(parentNode.Children, &types.TreeNode{
				Label: entryName,
				Kind:  types.NodeKindFile,
			})
		default:
			// Symbolic links and special files are neither classified nor followed.
		}
	}
}
