package cli

import (
	"fmt"
	"os"

	"growth-tracker/internal/config"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create and check scenario configs",
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigValidateCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		outPath string
		force   bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config with the default scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(outPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
			}
			if err := config.Default().SaveToFile(outPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "scenario.yaml", "Output path")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func newConfigValidateCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load a config the way simulate does and report problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				return fmt.Errorf("-f is required")
			}
			c, err := config.Load(path)
			if err != nil {
				return err
			}
			p := c.Scenario.ToModelParams()
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %q, %d trading days\n", c.Scenario.Name, p.HorizonDays)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "Config file to validate")
	return cmd
}
