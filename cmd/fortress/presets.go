package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fortress-run/internal/preset"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List registered loadout presets",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range preset.List() {
			fmt.Printf("%-12s %s\n", p.ID, p.Description)
		}
	},
}
