// Package cmd implements the sub-commands of the toolbridge command-line
// interface.  Each file registers a single sub-command (list-tools, tool,
// exec, check, explain); the plumbing shared between commands, such as
// configuration loading and session initialisation, lives in shared.go.
package cmd
