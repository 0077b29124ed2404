package cli

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/githubnext/agentlint/pkg/fileutil"
	"github.com/githubnext/agentlint/pkg/logger"
)

var discoveryLog = logger.New("cli:discovery")

// DefaultAgentsDir is the conventional location of agent definition files.
const DefaultAgentsDir = ".github/agents"

// CollectAgentFiles resolves the set of files to validate. Explicit file
// arguments are used as-is; otherwise the root directory is walked for
// markdown files. The returned list is sorted for stable output.
func CollectAgentFiles(args []string, root string) ([]string, error) {
	if len(args) > 0 {
		files := make([]string, 0, len(args))
		for _, arg := range args {
			if !strings.HasSuffix(arg, ".md") {
				return nil, fmt.Errorf("%s is not a markdown file", arg)
			}
			files = append(files, arg)
		}
		sort.Strings(files)
		return files, nil
	}

	if root == "" {
		root = DefaultAgentsDir
	}
	discoveryLog.Printf("Scanning %s for agent definitions", root)

	if !fileutil.DirExists(root) {
		return nil, fmt.Errorf("agents directory %s does not exist", root)
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".md") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	sort.Strings(files)
	discoveryLog.Printf("Found %d agent definition files", len(files))
	return files, nil
}
