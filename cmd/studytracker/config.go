package main

import (
	"fmt"
	"os"

	"github.com/fmizzell/studytracker/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configGlobal bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long:  `Write a commented default config into the workspace (or the global location with --global).`,
	Args:  cobra.NoArgs,
	Run:   initConfig,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	Run:   showConfig,
}

func init() {
	configInitCmd.Flags().BoolVar(&configGlobal, "global", false, "Write the global config instead of the workspace one")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func initConfig(cmd *cobra.Command, args []string) {
	path := config.GlobalConfigPath()
	if !configGlobal {
		workspaceDir, err := getWorkspaceDir()
		if err != nil {
			fatal("Failed to get workspace directory: %v", err)
		}
		path = config.WorkspaceConfigPath(workspaceDir)
	}
	if path == "" {
		fatal("Cannot determine the home directory for the global config")
	}

	if err := config.WriteDefault(path); err != nil {
		fatal("%v", err)
	}
	fmt.Printf("✓ Config written: %s\n", path)
}

func showConfig(cmd *cobra.Command, args []string) {
	workspaceDir, err := getWorkspaceDir()
	if err != nil {
		fatal("Failed to get workspace directory: %v", err)
	}

	cfg, err := loadConfig(workspaceDir)
	if err != nil {
		fatal("%v", err)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fatal("Failed to encode config: %v", err)
	}
	os.Stdout.Write(out)
}
