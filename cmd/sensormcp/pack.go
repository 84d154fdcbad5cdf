package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frostlab/sensormcp/internal/dxt"
)

var (
	packDir    string
	packOutput string

	packInitName    string
	packInitVersion string
	packInitForce   bool
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Build a desktop extension archive",
	Long: `Build a .dxt desktop extension archive from an extension directory. The
directory must contain a manifest.json (see "pack init") plus whatever the
extension ships, typically the sensormcp binary itself.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := dxt.Pack(packDir, packOutput)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var packInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter extension manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := dxt.Init(packDir, packInitName, packInitVersion, packInitForce)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	packCmd.PersistentFlags().StringVarP(&packDir, "dir", "d", ".", "Extension directory")
	packCmd.Flags().StringVarP(&packOutput, "output", "o", "", "Archive path (default <name>-<version>.dxt)")

	packInitCmd.Flags().StringVar(&packInitName, "name", "sensormcp", "Extension name")
	packInitCmd.Flags().StringVar(&packInitVersion, "extension-version", "1.0.0", "Extension version")
	packInitCmd.Flags().BoolVarP(&packInitForce, "force", "f", false, "Overwrite an existing manifest")

	packCmd.AddCommand(packInitCmd)
	rootCmd.AddCommand(packCmd)
}
