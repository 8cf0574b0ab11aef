package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hamster-dodge/internal/assets"
)

var toysCmd = &cobra.Command{
	Use:   "toys",
	Short: "List the squeaky toys",
	Long:  `Shows every squeaky toy that can fly at the hamster.`,
	Args:  cobra.NoArgs,
	Run:   runToys,
}

func runToys(_ *cobra.Command, _ []string) {
	palette := assets.Palette()

	if len(palette) == 0 {
		fmt.Println("No toys registered.")
		return
	}

	fmt.Println("Squeaky toys:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, s := range palette {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "ID", "Glyph", "Name")
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "--", "-----", "----")

	for _, s := range palette {
		fmt.Printf("  %-*s  %-5c  %s\n", maxIDLen, s.ID, s.Glyph, s.Name)
	}

	fmt.Println()
	fmt.Printf("Total: %d toys\n", len(palette))
}
