// Package cli defines the Cobra command tree for the cref CLI. Each file in
// this package registers one top-level command with the root command. Command
// implementations delegate to internal packages for the comparison logic and
// only handle flag parsing and output formatting.
package cli
