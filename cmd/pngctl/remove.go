package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/pkg/png"
)

var (
	removeOutput string
	removeBackup bool
)

func init() {
	cmd := newRemoveCmd()
	cmd.Flags().StringVarP(&removeOutput, "output", "o", "", "Write to this file instead of replacing the input")
	cmd.Flags().BoolVar(&removeBackup, "backup", false, "Keep a .bak copy when replacing the input")
	rootCmd.AddCommand(cmd)
}

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <png> <chunk-type>",
		Short: "Remove the first chunk of a type",
		Long: `The remove command deletes the first chunk with the given type and
prints the data it held.

Example:
  pngctl remove image.png ruSt
  pngctl remove image.png ruSt -o clean.png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args)
		},
	}
	return cmd
}

func runRemove(args []string) error {
	pngPath, chunkType := args[0], args[1]

	limits, err := resolveLimits()
	if err != nil {
		return err
	}
	printVerbose("Removing %s chunk from %s\n", chunkType, pngPath)

	opts := &png.WriteOptions{Limits: &limits, Output: removeOutput, CreateBackup: removeBackup}
	removed, err := png.Remove(pngPath, chunkType, opts)
	if err != nil {
		return fmt.Errorf("failed to remove: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    pngPath,
			"type":    chunkType,
			"removed": string(removed),
		})
	}
	printInfo("Removed %s (%d bytes): %s\n", chunkType, len(removed), removed)
	return nil
}
