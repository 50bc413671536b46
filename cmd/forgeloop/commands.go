package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Soft-wa-re/forge-loop/internal/agents"
	"github.com/Soft-wa-re/forge-loop/internal/config"
	"github.com/Soft-wa-re/forge-loop/internal/github"
	"github.com/Soft-wa-re/forge-loop/internal/scaffold"
	"github.com/Soft-wa-re/forge-loop/internal/tracker"
	"github.com/Soft-wa-re/forge-loop/internal/ui"
	"github.com/Soft-wa-re/forge-loop/internal/urls"
)

// init command flags
var (
	initHere   bool
	initAgent  string
	initScript string
	initToken  string
	initTag    string
	initRepo   string
	initNoGit  bool
	initForce  bool
	initNoLive bool
)

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)

	initCmd.Flags().BoolVar(&initHere, "here", false, "Scaffold into the current directory")
	initCmd.Flags().StringVar(&initAgent, "agent", "", "Agent integration (e.g., claude, copilot, gemini)")
	initCmd.Flags().StringVar(&initScript, "script", "", "Script type: sh or ps (default: platform)")
	initCmd.Flags().StringVar(&initToken, "github-token", "", "GitHub token for higher API rate limits")
	initCmd.Flags().StringVar(&initTag, "template-tag", "", "Template release tag (default: latest)")
	initCmd.Flags().StringVar(&initRepo, "template-repo", "", "Template repository as owner/repo")
	initCmd.Flags().BoolVar(&initNoGit, "no-git", false, "Skip git initialization")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Scaffold into a non-empty directory without confirmation")
	initCmd.Flags().BoolVar(&initNoLive, "no-live", false, "Disable the live display (plain output)")

	configCmd.Flags().String("agent", "", "Default agent for future runs")
	configCmd.Flags().String("script", "", "Default script type for future runs")
	configCmd.Flags().String("template-repo", "", "Default template repository")
}

var initCmd = &cobra.Command{
	Use:   "init [project-name]",
	Short: "Scaffold a new ForgeLoop project",
	Long: `Scaffold a new ForgeLoop project from a template release.

Fetches the template bundle matching the chosen agent and script type,
extracts it into the target directory, and initializes a git repository.

An optional GitHub token raises the API rate limit from 60 to 5,000
requests per hour. The token is taken from --github-token, or the
GH_TOKEN or GITHUB_TOKEN environment variable, in that order.`,
	Example: `  # Scaffold into a new directory
  forgeloop init my-project --agent claude

  # Scaffold into the current directory
  forgeloop init --here --agent copilot

  # Use a specific template release and a token
  forgeloop init my-project --agent gemini --template-tag v0.4.0 --github-token ghp_...`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	prefs, err := config.Load()
	if err != nil {
		return err
	}

	projectDir, projectName, err := resolveProjectDir(args)
	if err != nil {
		return err
	}

	agentKey := firstNonEmpty(initAgent, prefs.DefaultAgent)
	if agentKey == "" {
		return fmt.Errorf("no agent selected: pass --agent (valid: %s)", strings.Join(agents.Keys(), ", "))
	}
	agent, err := agents.Lookup(agentKey)
	if err != nil {
		return err
	}

	script := firstNonEmpty(initScript, prefs.DefaultScript, agents.DefaultScriptType())
	if !agents.ValidScriptType(script) {
		return fmt.Errorf("unknown script type %q (valid: %s)", script, strings.Join(agents.ScriptTypeKeys(), ", "))
	}

	repo := firstNonEmpty(initRepo, prefs.TemplateRepo, urls.DefaultTemplateRepo)

	if !initForce {
		if conflicts := existingEntries(projectDir); len(conflicts) > 0 {
			if !ui.IsTerminal() {
				return fmt.Errorf("%s is not empty (pass --force to scaffold anyway)", projectDir)
			}
			if !ui.ConfirmOverwrite(projectDir, conflicts) {
				return fmt.Errorf("aborted")
			}
		}
	}

	client, err := github.NewClient(initToken)
	if err != nil {
		return err
	}

	header := ui.NewHeader("Project Initialization", "forgeloop init "+projectName, map[string]string{
		"Agent":    agent.Name,
		"Script":   script,
		"Target":   projectDir,
		"Template": repo,
	})
	fmt.Println(header.Render())
	fmt.Println()

	trk := tracker.New(fmt.Sprintf("Initialize %s", projectName))
	scaffold.RegisterSteps(trk)

	opts := scaffold.Options{
		ProjectDir: projectDir,
		Agent:      agent,
		Script:     script,
		Repo:       repo,
		Tag:        initTag,
		NoGit:      initNoGit || prefs.SkipGit,
	}

	start := time.Now()
	var result *scaffold.Result
	var runErr error

	if initNoLive || !ui.IsTerminal() {
		// Plain mode: run on this goroutine and print the final tree.
		result, runErr = scaffold.Run(cmd.Context(), client, trk, opts)
		fmt.Println(trk.Render())
	} else {
		liveErr := ui.RunLive(trk.Render, func(notify func()) {
			trk.AttachRefresh(notify)
			result, runErr = scaffold.Run(cmd.Context(), client, trk, opts)
			trk.AttachRefresh(nil)
		})
		if liveErr != nil && runErr == nil {
			runErr = liveErr
		}
	}
	duration := time.Since(start)

	printer := ui.NewPrinter(nil)
	if runErr != nil {
		printInitFailure(printer, runErr)
		return fmt.Errorf("initialization failed")
	}

	printer.PrintSuccess("Project ready", map[string]string{
		"Project":  result.ProjectDir,
		"Release":  result.ReleaseTag,
		"Files":    fmt.Sprintf("%d", result.FilesExtracted),
		"Duration": duration.Round(time.Millisecond).String(),
	})
	printNextSteps(agent, projectDir)
	return nil
}

// printInitFailure renders a failure box. A StatusError from the API layer
// carries its own classified diagnostic, which is shown inside the box.
func printInitFailure(printer *ui.Printer, runErr error) {
	var statusErr *github.StatusError
	diagnostic := ""
	troubleshooting := []string{
		"Check your network connection",
		"Re-run with FORGELOOP_LOG_LEVEL=debug for request logging",
	}

	if errors.As(runErr, &statusErr) {
		diagnostic = statusErr.Diagnostic
		troubleshooting = []string{
			"A GitHub token raises the rate limit from 60 to 5,000 requests/hour",
			"Create a token: " + urls.TokenDocs,
			"See " + urls.RateLimitDocs,
		}
	}

	printer.PrintFailure("Initialization failed", runErr, diagnostic, troubleshooting)
}

// printNextSteps prints follow-up guidance after a successful scaffold.
func printNextSteps(agent agents.Agent, projectDir string) {
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  1. cd %s\n", projectDir)
	if agent.RequiresCLI {
		fmt.Printf("  2. Make sure the %s CLI is installed", agent.Name)
		if agent.InstallURL != "" {
			fmt.Printf(" (%s)", agent.InstallURL)
		}
		fmt.Println()
		fmt.Println("  3. Open the project with your agent to get started")
	} else {
		fmt.Println("  2. Open the project with your agent to get started")
	}
	fmt.Println()
	fmt.Println("Docs: " + urls.ProjectDocs)
}

// resolveProjectDir determines the target directory from the positional
// argument and the --here flag.
func resolveProjectDir(args []string) (dir string, name string, err error) {
	if initHere || (len(args) == 1 && args[0] == ".") {
		cwd, err := os.Getwd()
		if err != nil {
			return "", "", fmt.Errorf("determining working directory: %w", err)
		}
		return cwd, filepath.Base(cwd), nil
	}
	if len(args) == 0 {
		return "", "", fmt.Errorf("missing project name (or pass --here to use the current directory)")
	}
	name = args[0]
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", "", fmt.Errorf("resolving project path: %w", err)
	}
	return abs, filepath.Base(abs), nil
}

// existingEntries lists up to a handful of entries already present in the
// target directory, for the overwrite confirmation.
func existingEntries(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	const maxShown = 8
	var names []string
	for _, entry := range entries {
		if len(names) == maxShown {
			names = append(names, "...")
			break
		}
		names = append(names, entry.Name())
	}
	return names
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check for required agent CLI tools",
	Long: `Check which agent companion CLI tools are installed.

Agents whose integration requires a companion CLI (claude, gemini, qwen,
and others) are checked via PATH lookup. Agents that work without a CLI
are listed as skipped.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	all, err := agents.All()
	if err != nil {
		return err
	}

	trk := tracker.New("Agent CLI tools")
	for _, agent := range all {
		trk.Add(agent.Key, agent.Name)
	}

	checked := 0
	var missing []string
	for _, agent := range all {
		if !agent.RequiresCLI {
			trk.Skip(agent.Key, "no CLI required")
			continue
		}
		checked++
		trk.Start(agent.Key, "")
		if path, found := scaffold.LookupTool(agent.Key); found {
			trk.Complete(agent.Key, path)
			continue
		}
		missing = append(missing, agent.Key)
		if agent.InstallURL != "" {
			trk.Error(agent.Key, "not found – install: "+agent.InstallURL)
		} else {
			trk.Error(agent.Key, "not found")
		}
	}

	fmt.Println(trk.Render())

	if len(missing) > 0 {
		printer := ui.NewPrinter(nil)
		printCheckWarning(printer, missing, checked)
	}
	return nil
}

// printCheckWarning summarizes missing agent CLIs in a warning box.
func printCheckWarning(printer *ui.Printer, missing []string, checked int) {
	warn := ui.NewWarningResult("Missing agent CLI tools", nil)
	warn.AddDetail("Missing", strings.Join(missing, ", "))
	warn.AddDetail("Found", fmt.Sprintf("%d of %d", checked-len(missing), checked))
	warn.SetWidth(printer.Width())
	printer.Newline()
	printer.Println(warn.Render())
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Set defaults for future runs",
	Long: `Store default agent, script type, and template repository in the
user preferences file. Values set here are used by init when the matching
flag is omitted. Tokens are never stored.`,
	Example: `  forgeloop config --agent claude --script sh`,
	RunE:    runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	prefs, err := config.Load()
	if err != nil {
		return err
	}

	changed := false
	if agentKey, _ := cmd.Flags().GetString("agent"); agentKey != "" {
		if _, err := agents.Lookup(agentKey); err != nil {
			return err
		}
		prefs.DefaultAgent = agentKey
		changed = true
	}
	if script, _ := cmd.Flags().GetString("script"); script != "" {
		if !agents.ValidScriptType(script) {
			return fmt.Errorf("unknown script type %q (valid: %s)", script, strings.Join(agents.ScriptTypeKeys(), ", "))
		}
		prefs.DefaultScript = script
		changed = true
	}
	if repo, _ := cmd.Flags().GetString("template-repo"); repo != "" {
		prefs.TemplateRepo = repo
		changed = true
	}

	if !changed {
		path, _ := config.GetConfigPath()
		fmt.Printf("Preferences file: %s\n", path)
		fmt.Printf("  default_agent:  %s\n", valueOrUnset(prefs.DefaultAgent))
		fmt.Printf("  default_script: %s\n", valueOrUnset(prefs.DefaultScript))
		fmt.Printf("  template_repo:  %s\n", valueOrUnset(prefs.TemplateRepo))
		return nil
	}

	if err := config.Save(prefs); err != nil {
		return err
	}
	fmt.Println("Preferences saved")
	return nil
}

func valueOrUnset(v string) string {
	if v == "" {
		return "(unset)"
	}
	return v
}
