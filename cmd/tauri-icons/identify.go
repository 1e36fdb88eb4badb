package main

import (
	"fmt"
	"os"

	"github.com/cobriensr/deepseekr1-tauri/internal/color"
	"github.com/cobriensr/deepseekr1-tauri/internal/ir"
	"github.com/cobriensr/deepseekr1-tauri/internal/png"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect a PNG icon's header and sample pixels",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := png.GetInfo(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	fmt.Printf("File:       %s\n", path)
	fmt.Printf("Dimensions: %d x %d\n", info.Width, info.Height)
	fmt.Printf("Color type: %s (%d channels, %d-bit)\n", info.ColorType, info.NumChannels, info.BitDepth)
	fmt.Printf("Interlaced: %t\n", info.Interlaced)
	fmt.Printf("File size:  %d bytes\n", len(data))

	if info.Width != info.Height {
		fmt.Println("Samples:    skipped (not square)")
		return nil
	}

	img, err := png.DecodeRGBA(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	fmt.Println("Samples:")
	for _, p := range ir.Corners(info.Width) {
		fmt.Printf("  corner %-9s %s\n", p.String(), color.Name(img.RGBAAt(p.X, p.Y)))
	}
	c := ir.Center(info.Width)
	fmt.Printf("  center %-9s %s\n", c.String(), color.Name(img.RGBAAt(c.X, c.Y)))
	return nil
}
