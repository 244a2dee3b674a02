package output_test

import (
	"bytes"
	"testing"

	"github.com/projtree/projtree/internal/output"
	"github.com/projtree/projtree/internal/types"
)

const scannedRootPath = "/work/demo"

// renderedProjectExpected is the plain rendering of a small project tree.
// Styles collapse to plain text because test output is not a terminal.
const renderedProjectExpected = scannedRootPath + "/\n" +
	"├── 📂 src/\n" +
	"│   └── 📄 a.py\n" +
	"└── 📄 readme.md\n"

// renderedPermissionExpected is the plain rendering of a tree holding one
// unreadable directory next to a readable one.
const renderedPermissionExpected = scannedRootPath + "/\n" +
	"├── 📂 locked/\n" +
	"│   └── ⚠️ Permission denied: " + scannedRootPath + "/locked\n" +
	"└── 📂 open/\n" +
	"    └── 📄 visible.txt\n"

// renderedEmptyExpected is the rendering of a childless root.
const renderedEmptyExpected = scannedRootPath + "/\n"

// projectTree builds the tree behind renderedProjectExpected.
func projectTree() *types.TreeNode {
	return &types.TreeNode{
		Label: scannedRootPath,
		Kind:  types.NodeKindRoot,
		Children: []*types.TreeNode{
			{
				Label: "src",
				Kind:  types.NodeKindDirectory,
				Children: []*types.TreeNode{
					{Label: "a.py", Kind: types.NodeKindFile},
				},
			},
			{Label: "readme.md", Kind: types.NodeKindFile},
		},
	}
}

// TestRenderTreeProjectLayout verifies connector layout and per-kind glyphs.
func TestRenderTreeProjectLayout(testingInstance *testing.T) {
	renderedTree := output.RenderTree(projectTree())
	if renderedTree != renderedProjectExpected {
		testingInstance.Errorf("unexpected rendering:\n%q\nwant:\n%q", renderedTree, renderedProjectExpected)
	}
}

// TestRenderTreePermissionLeaf verifies the denied-path annotation sits in
// place of the unreadable directory's children.
func TestRenderTreePermissionLeaf(testingInstance *testing.T) {
	scannedTree := &types.TreeNode{
		Label: scannedRootPath,
		Kind:  types.NodeKindRoot,
		Children: []*types.TreeNode{
			{
				Label: "locked",
				Kind:  types.NodeKindDirectory,
				Children: []*types.TreeNode{
					{Label: scannedRootPath + "/locked", Kind: types.NodeKindPermissionError},
				},
			},
			{
				Label: "open",
				Kind:  types.NodeKindDirectory,
				Children: []*types.TreeNode{
					{Label: "visible.txt", Kind: types.NodeKindFile},
				},
			},
		},
	}

	renderedTree := output.RenderTree(scannedTree)
	if renderedTree != renderedPermissionExpected {
		testingInstance.Errorf("unexpected rendering:\n%q\nwant:\n%q", renderedTree, renderedPermissionExpected)
	}
}

// TestRenderTreeEmptyRoot verifies a childless root renders as a single line.
func TestRenderTreeEmptyRoot(testingInstance *testing.T) {
	renderedTree := output.RenderTree(&types.TreeNode{Label: scannedRootPath, Kind: types.NodeKindRoot})
	if renderedTree != renderedEmptyExpected {
		testingInstance.Errorf("unexpected rendering: %q", renderedTree)
	}
}

// TestWriteTreeMatchesRendering verifies the writer path emits the same bytes.
func TestWriteTreeMatchesRendering(testingInstance *testing.T) {
	var renderedBuffer bytes.Buffer
	if writeError := output.WriteTree(&renderedBuffer, projectTree()); writeError != nil {
		testingInstance.Fatalf("write error: %v", writeError)
	}
	if renderedBuffer.String() != renderedProjectExpected {
		testingInstance.Errorf("unexpected rendering:\n%q\nwant:\n%q", renderedBuffer.String(), renderedProjectExpected)
	}
}
