package root

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteTranscriptFilename(t *testing.T) {
	// Note: These tests change working directory so they cannot run in parallel

	tests := []struct {
		name            string
		setup           func(t *testing.T, dir string)
		toComplete      string
		wantCompletions []string
		wantNoSpace     bool
	}{
		{
			name: "completes transcripts with prefix",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				writeFile(t, dir, "session.json")
				writeFile(t, dir, "session2.yaml")
				writeFile(t, dir, "other.json")
				writeFile(t, dir, "session.md")
			},
			toComplete:      "./sess",
			wantCompletions: []string{"./session.json", "./session2.yaml"},
		},
		{
			name: "completes yml files",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				writeFile(t, dir, "run.yml")
			},
			toComplete:      "./r",
			wantCompletions: []string{"./run.yml"},
		},
		{
			name: "single directory completion sets NoSpace",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				require.NoError(t, os.Mkdir(filepath.Join(dir, "runs"), 0o755))
			},
			toComplete:      "./ru",
			wantCompletions: []string{"./runs/"},
			wantNoSpace:     true,
		},
		{
			name: "completes both files and directories",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				writeFile(t, dir, "runs.json")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "runs"), 0o755))
			},
			toComplete:      "./run",
			wantCompletions: []string{"./runs.json", "./runs/"},
		},
		{
			name: "handles case-insensitive extensions",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				writeFile(t, dir, "A.JSON")
				writeFile(t, dir, "B.YML")
			},
			toComplete:      "",
			wantCompletions: []string{"A.JSON", "B.YML"},
		},
		{
			name: "lists directory contents with trailing slash",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				subdir := filepath.Join(dir, "runs")
				require.NoError(t, os.Mkdir(subdir, 0o755))
				writeFile(t, subdir, "one.json")
				writeFile(t, subdir, "two.txt")
			},
			toComplete:      "./runs/",
			wantCompletions: []string{"./runs/one.json"},
		},
		{
			name:            "returns empty for non-existent directory",
			setup:           func(t *testing.T, _ string) { t.Helper() },
			toComplete:      "./nonexistent/s",
			wantCompletions: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			tt.setup(t, tmpDir)
			t.Chdir(tmpDir)

			completions, directive := completeTranscriptFilename(tt.toComplete)

			assert.ElementsMatch(t, tt.wantCompletions, completions)
			assert.NotEqual(t, cobra.ShellCompDirective(0), directive&cobra.ShellCompDirectiveNoFileComp)
			if tt.wantNoSpace {
				assert.NotEqual(t, cobra.ShellCompDirective(0), directive&cobra.ShellCompDirectiveNoSpace)
			} else {
				assert.Equal(t, cobra.ShellCompDirective(0), directive&cobra.ShellCompDirectiveNoSpace)
			}
		})
	}
}

func TestCompleteTranscriptFile_OnlyFirstArg(t *testing.T) {
	t.Parallel()

	completions, directive := completeTranscriptFile(nil, []string{"session.json"}, "")
	assert.Nil(t, completions)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(""), 0o644))
}
