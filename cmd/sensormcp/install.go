package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frostlab/sensormcp/internal/clientcfg"
)

var (
	installClientConfig string
	installEntryName    string
	installCommand      string
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Register this server with an MCP client",
	Long: `Add a server entry to an MCP client configuration file, by default
Claude Desktop's claude_desktop_config.json for this platform. Existing
entries for other servers and unrelated client settings are preserved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveClientConfig()
		if err != nil {
			return err
		}

		command := installCommand
		if command == "" {
			command, err = os.Executable()
			if err != nil {
				return fmt.Errorf("failed to resolve own executable path: %w", err)
			}
		}

		entry := clientcfg.ServerConfig{
			Command: command,
			Args:    []string{"serve", "--config", configPath},
		}
		if err := clientcfg.Install(path, installEntryName, entry); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Installed %q into %s\n", installEntryName, path)
		return nil
	},
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove this server from an MCP client",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveClientConfig()
		if err != nil {
			return err
		}
		if err := clientcfg.Uninstall(path, installEntryName); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %q from %s\n", installEntryName, path)
		return nil
	},
}

func resolveClientConfig() (string, error) {
	if installClientConfig != "" {
		return installClientConfig, nil
	}
	return clientcfg.ClaudeDesktopConfigPath()
}

func init() {
	for _, c := range []*cobra.Command{installCmd, uninstallCmd} {
		c.Flags().StringVar(&installClientConfig, "client-config", "",
			"Client configuration file (default: Claude Desktop's)")
		c.Flags().StringVar(&installEntryName, "name", clientcfg.DefaultEntryName,
			"Entry name under mcpServers")
	}
	installCmd.Flags().StringVar(&installCommand, "command", "",
		"Server command to register (default: this executable)")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
}
