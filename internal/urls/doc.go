// Package urls centralizes external URLs referenced by the CLI.
package urls
