package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-hunt/internal/config"
	"github.com/vovakirdan/arcade-hunt/internal/registry"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List all game variants",
	Long:  `Shows the game variants with embedded defaults and the rule policies a config can select.`,
	Run:   runVariants,
}

func runVariants(cmd *cobra.Command, args []string) {
	fmt.Println(titleStyle.Render("Available variants"))
	fmt.Println()

	fmt.Printf("  %-10s  %-6s  %-6s  %s\n", "ID", "Lives", "Food", "Extra life at")
	fmt.Printf("  %-10s  %-6s  %-6s  %s\n", "--", "-----", "----", "-------------")
	for _, v := range config.Variants() {
		cfg, err := config.Default(v)
		if err != nil {
			fmt.Printf("  %-10s  %s\n", v, errorStyle.Render(err.Error()))
			continue
		}
		fmt.Printf("  %-10s  %-6d  %-6d  %v\n", v, cfg.Lives, countFood(cfg.Maze), cfg.ExtraLifeThresholds)
	}

	fmt.Println()
	fmt.Println(labelStyle.Render("Collision rules:  "), registry.CollisionNames())
	fmt.Println(labelStyle.Render("Demo safety:      "), registry.DemoSafetyNames())
	fmt.Println()
	fmt.Println(helpStyle.Render("Run 'hunt run --variant <id>' to play a variant."))
}

func countFood(layout []string) int {
	n := 0
	for _, row := range layout {
		for _, ch := range row {
			if ch == '.' || ch == 'o' {
				n++
			}
		}
	}
	return n
}
