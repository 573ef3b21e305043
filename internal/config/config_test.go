package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile_ReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "notesync.yaml"))
	require.NoError(t, err)
	require.Equal(t, ".", cfg.SourceDir)
	require.Equal(t, "docs", cfg.OutputDir)
	require.Equal(t, ".sync_hashes.json", cfg.HashFile)
	require.Contains(t, cfg.ExcludeDirs, ".git")
	require.Equal(t, Section{Title: "Terraform", NavOrder: 20}, cfg.Sections["terraform"])
	require.Equal(t, 2, cfg.ManualTOCMinDepth())
}

func TestLoad_PartialFile_AppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notesync.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: site\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "site", cfg.OutputDir)
	require.Equal(t, ".sync_hashes.json", cfg.HashFile)
	require.NotEmpty(t, cfg.Sections)
}

func TestLoad_ManualTOCDepthZero_Honored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notesync.yaml")
	require.NoError(t, os.WriteFile(path, []byte("index:\n  manual_toc_depth: 0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 0, cfg.ManualTOCMinDepth())
}

func TestValidate_OutputDirOutsideSourceRoot_Rejected(t *testing.T) {
	cfg := Default()
	cfg.OutputDir = "../elsewhere"
	require.Error(t, cfg.Validate())

	cfg.OutputDir = "nested/docs"
	require.Error(t, cfg.Validate())
}

func TestValidate_InvalidIgnorePattern_Rejected(t *testing.T) {
	cfg := Default()
	cfg.Ignore = []string{"[unclosed"}
	require.Error(t, cfg.Validate())
}

func TestLoad_EnvExpansion_AppliesProcessEnvironment(t *testing.T) {
	t.Setenv("NOTESYNC_TEST_OUTPUT", "docs")
	path := filepath.Join(t.TempDir(), "notesync.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: ${NOTESYNC_TEST_OUTPUT}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "docs", cfg.OutputDir)
}

func TestInit_ExistingFileWithoutForce_Fails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notesync.yaml")
	require.NoError(t, Init(path, false))
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))
}

func TestInit_WrittenFile_LoadsCleanly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notesync.yaml")
	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
}
