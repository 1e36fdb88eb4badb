package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cobriensr/deepseekr1-tauri/internal/icon"
	"github.com/cobriensr/deepseekr1-tauri/internal/pipeline"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tauri-icons",
	Short: "Generate the Tauri app icons (32x32, 128x128, 256x256 PNG)",
	Long: `Generate the application icons into src-tauri/icons relative to the
working directory. The directory must already exist; existing icons are
overwritten.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runGenerate,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		icon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	results, err := pipeline.Run("", icon.DefaultTargets)
	for _, r := range results {
		fmt.Printf("Created %dx%d → %s (%d bytes)\n", r.Target.Size, r.Target.Size, r.Path, r.Bytes)
	}
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
