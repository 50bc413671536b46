// Package agents holds the registry of supported coding-assistant
// integrations.
//
// The registry is embedded as YAML and parsed once on first use. Each
// agent maps a CLI key to its display name, the project folder its
// template configures, and whether a companion CLI tool is required.
package agents
