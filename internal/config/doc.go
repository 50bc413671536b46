// Package config manages the forgeloop user preferences file.
//
// Preferences live in the OS-appropriate config directory (for example
// ~/.config/forgeloop/config.yaml on Linux) and hold defaults for future
// runs: the preferred agent, script type, and template repository. API
// tokens are never stored; they come from flags or the environment only.
package config
