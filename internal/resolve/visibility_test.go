package resolve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHidden_RootFiles_NeverHidden(t *testing.T) {
	require.False(t, Hidden(0, false))
	require.False(t, Hidden(0, true))
}

func TestHidden_TopLevelSection_HiddenOnlyWithMarkdownSubdirs(t *testing.T) {
	require.False(t, Hidden(1, false))
	require.True(t, Hidden(1, true))
}

func TestHidden_DepthTwoOrDeeper_AlwaysHidden(t *testing.T) {
	require.True(t, Hidden(2, false))
	require.True(t, Hidden(2, true))
	require.True(t, Hidden(5, false))
}

func TestManualTOC_LeafFolderAtMinDepth_Injected(t *testing.T) {
	require.True(t, ManualTOC(2, 2, false))
	require.True(t, ManualTOC(3, 2, false))
}

func TestManualTOC_ShallowOrNonLeaf_NotInjected(t *testing.T) {
	require.False(t, ManualTOC(1, 2, false))
	require.False(t, ManualTOC(2, 2, true))
}

func TestManualTOC_ZeroMinDepth_LegacyAlwaysInject(t *testing.T) {
	require.True(t, ManualTOC(1, 0, false))
	require.False(t, ManualTOC(1, 0, true))
}
