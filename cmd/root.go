package cmd

import (
	"github.com/spf13/cobra"

	"github.com/moboufenzi-dev/rapport-stage-generator/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "rapport",
	Short: "Éditeur de rapport de stage avec aperçu en direct",
	Long: `Rapport est l'éditeur web de rapport de stage : structure du document,
glossaire, liste des figures, planning et page de garde, avec aperçu en
direct et génération DOCX/PDF via le service de rendu.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
}
