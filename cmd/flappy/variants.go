package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the available variants",
	Long:  `Shows every variant accepted by --variant.`,
	Args:  cobra.NoArgs,
	Run:   runVariants,
}

func runVariants(_ *cobra.Command, _ []string) {
	items := tui.DefaultMenuItems()

	maxLen := len("Variant")
	for _, item := range items {
		maxLen = max(maxLen, len(item.Variant))
	}

	fmt.Println("Available variants:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxLen, "Variant", "Description")
	fmt.Printf("  %-*s  %s\n", maxLen, "-------", "-----------")
	for _, item := range items {
		fmt.Printf("  %-*s  %s\n", maxLen, item.Variant, item.Description)
	}

	fmt.Println()
	fmt.Println("Run 'flappy play --variant <name>' to play a variant.")
}
