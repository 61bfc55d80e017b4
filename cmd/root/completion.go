package root

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

var transcriptExtensions = []string{".json", ".yaml", ".yml"}

func completeTranscriptFile(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeTranscriptFilename(toComplete)
}

func completeTranscriptFilename(toComplete string) ([]string, cobra.ShellCompDirective) {
	dirPrefix, base := filepath.Split(toComplete)

	dirToRead := dirPrefix
	if dirToRead == "" {
		dirToRead = "."
	}

	entries, err := os.ReadDir(dirToRead)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var out []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}

		switch {
		case e.IsDir():
			out = append(out, dirPrefix+name+string(filepath.Separator))
		case slices.Contains(transcriptExtensions, strings.ToLower(filepath.Ext(name))):
			out = append(out, dirPrefix+name)
		}
	}

	// Don't add space after single directory completion
	if len(out) == 1 && strings.HasSuffix(out[0], string(filepath.Separator)) {
		return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	}

	return out, cobra.ShellCompDirectiveNoFileComp
}
