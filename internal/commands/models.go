package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/promptrelay/internal/config"
	"github.com/diogo/promptrelay/internal/models"
)

// modelsCmd lists the known model identifiers
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available models",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.LoadConfig()

		for _, m := range models.AllModels() {
			marker := " "
			if m.Name == cfg.DefaultModel {
				marker = "*"
			}
			fmt.Printf("%s %-24s %s\n", marker, m.Name, m.Description)
		}
		return nil
	},
}
