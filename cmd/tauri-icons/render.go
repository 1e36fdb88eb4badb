package main

import (
	"fmt"

	"github.com/cobriensr/deepseekr1-tauri/internal/icon"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a single icon of the given size",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().IntP("size", "s", 0, "Icon width and height in pixels")
	renderCmd.Flags().StringP("output", "o", "", "Output PNG file")
	renderCmd.MarkFlagRequired("size")
	renderCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	size, _ := cmd.Flags().GetInt("size")
	outputPath, _ := cmd.Flags().GetString("output")

	if err := icon.Create(size, outputPath); err != nil {
		return err
	}

	fmt.Printf("Created %dx%d → %s\n", size, size, outputPath)
	return nil
}
