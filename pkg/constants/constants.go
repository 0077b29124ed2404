// Package constants provides shared constants used across the agentlint
// validation engine and CLI.
package constants

// FrontmatterDelimiter is the marker line that opens and closes the YAML
// frontmatter block at the top of an agent definition file.
const FrontmatterDelimiter = "---"

// AgentFileExtension is the preferred extension for agent definition files.
const AgentFileExtension = ".agent.md"

// MaxAgentFileSize is the maximum size in bytes of an agent definition file.
// Files larger than this are rejected before parsing.
const MaxAgentFileSize = 512 * 1024 // 512 KiB

// MaxBodyLines is the maximum number of lines allowed in the markdown body
// before the body-too-long warning is emitted.
const MaxBodyLines = 1000

// MinDescriptionLength is the minimum length of the description field before
// the description-quality warning is emitted.
const MinDescriptionLength = 50

// AgentsWildcard is the literal value accepted for the agents field meaning
// "all agents".
const AgentsWildcard = "*"

// KnownAgentFields lists every recognized frontmatter field, in the order
// validators run. Any top-level key outside this set triggers the
// unknown-field warning.
var KnownAgentFields = []string{
	"description",
	"name",
	"argument-hint",
	"tools",
	"agents",
	"model",
	"user-invokable",
	"disable-model-invocation",
	"infer",
	"target",
	"mcp-servers",
	"handoffs",
}

// ValidTargets lists the recognized deployment targets for the target field.
var ValidTargets = []string{"vscode", "github-copilot"}

// CLICommandName is the executable name shown in help and examples.
const CLICommandName = "agentlint"
