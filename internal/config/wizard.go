package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .rapport.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Bienvenue ! Configurons l'éditeur de rapport de stage.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Listen port.
	portPrompt := promptui.Prompt{
		Label:   "Port d'écoute du serveur",
		Default: strconv.Itoa(defaults.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("port invalide")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port selection: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 2. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Répertoire de données (base SQLite)",
		Default: defaults.DataDir,
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// 3. Generator backend URL.
	genPrompt := promptui.Prompt{
		Label:   "URL du service de génération DOCX/PDF",
		Default: defaults.GeneratorURL,
	}
	generatorURL, err := genPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("generator url: %w", err)
	}

	// 4. Outline depth.
	depthPrompt := promptui.Select{
		Label: "Profondeur maximale du plan",
		Items: []string{
			"2 — chapitres et sections",
			"3 — chapitres, sections et sous-sections",
		},
	}
	depthIdx, _, err := depthPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("outline depth: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Port = port
	cfg.DataDir = dataDir
	cfg.GeneratorURL = generatorURL
	cfg.MaxChapterLevel = depthIdx + 2

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(DefaultPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration enregistrée dans %s\n", DefaultPath)
	return cfg, nil
}
