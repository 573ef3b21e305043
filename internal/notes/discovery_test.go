package notes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSourceFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("# "+rel+"\n"), 0o644))
}

func TestWalk_FlatSection_ListsSortedFilesWithoutIndex(t *testing.T) {
	root := t.TempDir()
	writeSourceFile(t, root, "terraform/chapter-02-state.md")
	writeSourceFile(t, root, "terraform/chapter-01-basics.md")
	writeSourceFile(t, root, "terraform/index.md")

	dirs, err := NewWalker(root, []string{".git"}, nil).Walk()
	require.NoError(t, err)
	require.Len(t, dirs, 2)

	require.Equal(t, "", dirs[0].RelPath)
	require.Empty(t, dirs[0].Files)
	require.True(t, dirs[0].HasMarkdownDirs)

	require.Equal(t, "terraform", dirs[1].RelPath)
	require.Equal(t, 1, dirs[1].Depth)
	require.Equal(t, []string{"chapter-01-basics.md", "chapter-02-state.md"}, dirs[1].Files)
	require.False(t, dirs[1].HasMarkdownDirs)
}

func TestWalk_ExcludedDirs_SkippedAtAnyLevel(t *testing.T) {
	root := t.TempDir()
	writeSourceFile(t, root, "terraform/notes.md")
	writeSourceFile(t, root, "docs/terraform/notes.md")
	writeSourceFile(t, root, "terraform/.git/objects/readme.md")

	dirs, err := NewWalker(root, []string{"docs", ".git"}, nil).Walk()
	require.NoError(t, err)

	for _, dir := range dirs {
		require.NotContains(t, dir.RelPath, "docs")
		require.NotContains(t, dir.RelPath, ".git")
	}
}

func TestWalk_DirectoriesWithoutMarkdown_ProduceNothing(t *testing.T) {
	root := t.TempDir()
	writeSourceFile(t, root, "terraform/notes.md")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty", "deeper"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "empty", "data.json"), []byte("{}"), 0o644))

	dirs, err := NewWalker(root, nil, nil).Walk()
	require.NoError(t, err)
	require.Len(t, dirs, 2) // root + terraform
}

func TestWalk_IndexOnlyDirectory_NotMarkdownBearing(t *testing.T) {
	root := t.TempDir()
	writeSourceFile(t, root, "terraform/notes.md")
	writeSourceFile(t, root, "terraform/stubs/index.md")

	dirs, err := NewWalker(root, nil, nil).Walk()
	require.NoError(t, err)

	for _, dir := range dirs {
		require.NotEqual(t, "terraform/stubs", dir.RelPath)
		if dir.RelPath == "terraform" {
			require.False(t, dir.HasMarkdownDirs)
		}
	}
}

func TestWalk_MarkdownDescendants_FlaggedTransitively(t *testing.T) {
	root := t.TempDir()
	writeSourceFile(t, root, "aws/overview.md")
	writeSourceFile(t, root, "aws/networking/vpc/peering.md")

	dirs, err := NewWalker(root, nil, nil).Walk()
	require.NoError(t, err)

	byPath := map[string]Directory{}
	for _, dir := range dirs {
		byPath[dir.RelPath] = dir
	}

	require.True(t, byPath["aws"].HasMarkdownDirs)
	require.True(t, byPath["aws/networking"].HasMarkdownDirs)
	require.False(t, byPath["aws/networking/vpc"].HasMarkdownDirs)
	require.Empty(t, byPath["aws/networking"].Files)
}

func TestWalk_ParentsPrecedeChildren(t *testing.T) {
	root := t.TempDir()
	writeSourceFile(t, root, "aws/networking/vpc/peering.md")

	dirs, err := NewWalker(root, nil, nil).Walk()
	require.NoError(t, err)

	seen := map[string]bool{"": false}
	order := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		order = append(order, dir.RelPath)
		seen[dir.RelPath] = true
	}
	require.Equal(t, []string{"", "aws", "aws/networking", "aws/networking/vpc"}, order)
	require.True(t, seen["aws"])
}

func TestWalk_IgnorePatterns_SkipFilesAndDirectories(t *testing.T) {
	root := t.TempDir()
	writeSourceFile(t, root, "meta/keep.md")
	writeSourceFile(t, root, "meta/drafts/wip.md")
	writeSourceFile(t, root, "meta/scratch.md")

	dirs, err := NewWalker(root, nil, []string{"**/drafts", "meta/scratch.md"}).Walk()
	require.NoError(t, err)

	byPath := map[string]Directory{}
	for _, dir := range dirs {
		byPath[dir.RelPath] = dir
	}
	require.Equal(t, []string{"keep.md"}, byPath["meta"].Files)
	require.False(t, byPath["meta"].HasMarkdownDirs)
	require.NotContains(t, byPath, "meta/drafts")
}

func TestReadClean_LeadingBOM_Stripped(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "bom.md")
	require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBF# Title\n"), 0o644))

	content, err := ReadClean(path)
	require.NoError(t, err)
	require.Equal(t, []byte("# Title\n"), content)
}

func TestReadClean_MissingFile_ReturnsError(t *testing.T) {
	_, err := ReadClean(filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrFileReadFailed)
}

func TestIsMarkdownFile_CaseInsensitiveExtension(t *testing.T) {
	require.True(t, IsMarkdownFile("a.md"))
	require.True(t, IsMarkdownFile("a.MD"))
	require.False(t, IsMarkdownFile("a.markdown.txt"))
	require.False(t, IsMarkdownFile("md"))
}
