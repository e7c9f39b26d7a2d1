package cmd

import (
	"github.com/spf13/cobra"

	"github.com/moboufenzi-dev/rapport-stage-generator/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the editor configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the report editor and generates a .rapport.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
