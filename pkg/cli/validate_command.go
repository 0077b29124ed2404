package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/githubnext/agentlint/pkg/constants"
	"github.com/githubnext/agentlint/pkg/envutil"
	"github.com/githubnext/agentlint/pkg/logger"
	"github.com/githubnext/agentlint/pkg/validation"
)

var validateLog = logger.New("cli:validate_command")

// ValidateConfig carries the resolved configuration for one validation run.
type ValidateConfig struct {
	Files           []string
	Dir             string
	Strict          bool
	IgnoreRules     []string
	CheckReferences bool
	JSONOutput      bool
	Parallel        bool
	Watch           bool
	Verbose         bool
}

// ErrValidationFailed signals that validation completed and found blocking
// issues; the command exits non-zero without an extra error report.
var ErrValidationFailed = fmt.Errorf("validation failed")

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]...",
		Short: "Validate agent definition files",
		Long: `Validate one or more agent definition files (YAML frontmatter plus markdown
body) against the recognized field schema, reporting errors and warnings per
file.

If no files are specified, all markdown files under the agents directory
(default: ` + DefaultAgentsDir + `) are validated.

Flags fall back to AGENTLINT_* environment variables when unset, so the same
configuration works from CI.

Examples:
  ` + constants.CLICommandName + ` validate                      # Validate all agent files
  ` + constants.CLICommandName + ` validate reviewer.agent.md    # Validate a specific file
  ` + constants.CLICommandName + ` validate --dir custom/agents  # Validate from a custom directory
  ` + constants.CLICommandName + ` validate --strict             # Treat warnings as failures
  ` + constants.CLICommandName + ` validate --ignore body-empty  # Suppress specific rules
  ` + constants.CLICommandName + ` validate --check-refs         # Verify relative links exist
  ` + constants.CLICommandName + ` validate --json               # Machine-readable output
  ` + constants.CLICommandName + ` validate --watch              # Re-validate on file changes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := resolveValidateConfig(cmd, args)
			if err != nil {
				return err
			}
			validateLog.Printf("Running validate: files=%v, dir=%s, strict=%v", config.Files, config.Dir, config.Strict)

			if config.Watch {
				return RunValidateWatch(cmd.Context(), config)
			}
			return RunValidate(config)
		},
	}

	cmd.Flags().StringP("dir", "d", "", "Agents directory (default: "+DefaultAgentsDir+")")
	cmd.Flags().Bool("strict", false, "Treat warnings as failures")
	cmd.Flags().String("ignore", "", "Comma-separated rule IDs to suppress")
	cmd.Flags().Bool("check-refs", false, "Verify that relative markdown links resolve to existing files")
	cmd.Flags().BoolP("json", "j", false, "Output results in JSON format")
	cmd.Flags().Bool("parallel", false, "Validate files concurrently")
	cmd.Flags().BoolP("watch", "w", false, "Watch for changes and re-validate")
	cmd.Flags().BoolP("verbose", "v", false, "Show per-file progress")

	return cmd
}

// resolveValidateConfig merges command flags with AGENTLINT_* environment
// fallbacks and discovers the file set.
func resolveValidateConfig(cmd *cobra.Command, args []string) (ValidateConfig, error) {
	config := ValidateConfig{}

	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = envutil.GetString("AGENTLINT_DIR", "")
	}
	config.Dir = dir

	config.Strict = flagOrEnv(cmd, "strict", "AGENTLINT_STRICT")
	config.CheckReferences = flagOrEnv(cmd, "check-refs", "AGENTLINT_CHECK_REFS")
	config.JSONOutput, _ = cmd.Flags().GetBool("json")
	config.Parallel = flagOrEnv(cmd, "parallel", "AGENTLINT_PARALLEL")
	config.Watch, _ = cmd.Flags().GetBool("watch")
	config.Verbose, _ = cmd.Flags().GetBool("verbose")

	if ignore, _ := cmd.Flags().GetString("ignore"); ignore != "" {
		config.IgnoreRules = splitRuleList(ignore)
	} else {
		config.IgnoreRules = envutil.GetList("AGENTLINT_IGNORE")
	}

	files, err := CollectAgentFiles(args, config.Dir)
	if err != nil {
		return config, err
	}
	config.Files = files
	return config, nil
}

// flagOrEnv reads a boolean flag, falling back to the environment variable
// when the flag was not set on the command line.
func flagOrEnv(cmd *cobra.Command, flag, envVar string) bool {
	if cmd.Flags().Changed(flag) {
		value, _ := cmd.Flags().GetBool(flag)
		return value
	}
	return envutil.GetBool(envVar, false)
}

// RunValidate executes one validation pass and renders the results. It
// returns ErrValidationFailed when the run fails under the configured
// policy.
func RunValidate(config ValidateConfig) error {
	run := runValidation(config)
	if err := RenderRunResult(os.Stdout, run, config); err != nil {
		return err
	}
	if !run.Valid(config.Strict) {
		return ErrValidationFailed
	}
	return nil
}

func runValidation(config ValidateConfig) validation.RunResult {
	opts := validation.Options{
		IgnoreRules:     config.IgnoreRules,
		CheckReferences: config.CheckReferences,
	}
	if config.Parallel {
		return validation.ValidateFilesParallel(config.Files, opts)
	}
	return validation.ValidateFiles(config.Files, opts)
}

func splitRuleList(value string) []string {
	var rules []string
	for _, rule := range strings.Split(value, ",") {
		rule = strings.TrimSpace(rule)
		if rule != "" {
			rules = append(rules, rule)
		}
	}
	return rules
}
