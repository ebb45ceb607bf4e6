// Package cli implements the command-line interface for ffpoints.
//
// The root command loads the league configuration, builds every position
// table and prints the scored tables as text, JSON or Markdown. The rules
// subcommand prints the effective scoring weights.
package cli
