package resolve

// The navigation rules form a small decision table over (depth,
// has-markdown-descendant): root files are always visible, top-level section
// files hide once the section grows markdown-bearing subdirectories, and
// deeper files surface only through their directory's generated listing.

// Hidden reports whether files at the given directory depth are excluded from
// the rendered navigation sidebar.
func Hidden(depth int, hasMarkdownDirs bool) bool {
	switch {
	case depth == 0:
		return false
	case depth == 1:
		return hasMarkdownDirs
	default:
		return true
	}
}

// ManualTOC reports whether a directory receives an injected table of
// contents. Only leaf content folders at or below minDepth qualify; everything
// else relies on the renderer's own child-page listing.
func ManualTOC(depth, minDepth int, hasMarkdownDirs bool) bool {
	return depth >= minDepth && !hasMarkdownDirs
}
