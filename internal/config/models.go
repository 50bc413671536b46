package config

// Preferences represents the user configuration file. Only defaults that
// shape future runs are stored; tokens are never written here.
type Preferences struct {
	Version       int    `yaml:"version"`
	DefaultAgent  string `yaml:"default_agent,omitempty"`  // Agent used when --agent is omitted
	DefaultScript string `yaml:"default_script,omitempty"` // Script type used when --script is omitted
	TemplateRepo  string `yaml:"template_repo,omitempty"`  // Override for the template release repository
	SkipGit       bool   `yaml:"skip_git,omitempty"`       // Never initialize git in scaffolded projects
}

// CurrentVersion is the preferences file schema version.
const CurrentVersion = 1

// DefaultPreferences returns the preferences used when no file exists.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Version: CurrentVersion,
	}
}
