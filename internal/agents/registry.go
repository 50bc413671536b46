package agents

import (
	_ "embed"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed agents.yaml
var agentsYAML []byte

// Agent describes one supported coding-assistant integration.
type Agent struct {
	Key         string `yaml:"key"`          // CLI identifier (e.g., "claude")
	Name        string `yaml:"name"`         // Display name (e.g., "Claude Code")
	Folder      string `yaml:"folder"`       // Directory the template configures (e.g., ".claude/")
	InstallURL  string `yaml:"install_url"`  // Where to install the companion CLI, if any
	RequiresCLI bool   `yaml:"requires_cli"` // Companion CLI tool must be installed
}

// registryDoc is the embedded YAML document shape.
type registryDoc struct {
	Agents []Agent `yaml:"agents"`
}

var (
	registry     []Agent
	registryOnce sync.Once
	registryErr  error
)

// load parses the embedded registry exactly once.
func load() ([]Agent, error) {
	registryOnce.Do(func() {
		var doc registryDoc
		if err := yaml.Unmarshal(agentsYAML, &doc); err != nil {
			registryErr = fmt.Errorf("parsing embedded agent registry: %w", err)
			return
		}
		registry = doc.Agents
	})
	return registry, registryErr
}

// All returns every supported agent in display order.
func All() ([]Agent, error) {
	return load()
}

// Lookup returns the agent with the given key.
func Lookup(key string) (Agent, error) {
	all, err := load()
	if err != nil {
		return Agent{}, err
	}
	for _, agent := range all {
		if agent.Key == key {
			return agent, nil
		}
	}
	return Agent{}, fmt.Errorf("unknown agent %q (valid: %s)", key, strings.Join(Keys(), ", "))
}

// Keys returns every agent key in display order.
func Keys() []string {
	all, err := load()
	if err != nil {
		return nil
	}
	keys := make([]string, len(all))
	for i, agent := range all {
		keys[i] = agent.Key
	}
	return keys
}

// Script types for the generated helper scripts.
const (
	ScriptShell      = "sh" // POSIX Shell (bash/zsh)
	ScriptPowerShell = "ps" // PowerShell
)

// ScriptTypes maps script type keys to their display descriptions.
func ScriptTypes() map[string]string {
	return map[string]string{
		ScriptShell:      "POSIX Shell (bash/zsh)",
		ScriptPowerShell: "PowerShell",
	}
}

// ValidScriptType reports whether the given script type is supported.
func ValidScriptType(script string) bool {
	_, ok := ScriptTypes()[script]
	return ok
}

// ScriptTypeKeys returns the supported script type keys, sorted.
func ScriptTypeKeys() []string {
	types := ScriptTypes()
	keys := make([]string, 0, len(types))
	for key := range types {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// DefaultScriptType returns the script type matching the current platform.
func DefaultScriptType() string {
	if runtime.GOOS == "windows" {
		return ScriptPowerShell
	}
	return ScriptShell
}
