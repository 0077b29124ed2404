// Command agentlint validates agent definition files: markdown documents
// with a YAML frontmatter header describing an agent for an agentic tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/githubnext/agentlint/pkg/cli"
	"github.com/githubnext/agentlint/pkg/console"
	"github.com/githubnext/agentlint/pkg/constants"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     constants.CLICommandName,
		Short:   "Lint agent definition files",
		Version: version,
		Long: constants.CLICommandName + ` validates agent definition files (YAML frontmatter plus a
markdown body) against the recognized field schema, reporting categorized
errors and warnings so broken definitions are caught before merge.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(cli.NewValidateCommand())

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, cli.ErrValidationFailed) {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		}
		os.Exit(1)
	}
}
