package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/pkg/png"
)

func init() {
	rootCmd.AddCommand(newDecodeCmd())
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <png> <chunk-type>",
		Short: "Print the message stored in a chunk",
		Long: `The decode command prints the data of the first chunk with the given type.

Example:
  pngctl decode image.png ruSt
  pngctl decode image.png ruSt --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args)
		},
	}
	return cmd
}

func runDecode(args []string) error {
	pngPath, chunkType := args[0], args[1]

	limits, err := resolveLimits()
	if err != nil {
		return err
	}
	printVerbose("Reading %s chunk from %s\n", chunkType, pngPath)

	msg, err := png.Decode(pngPath, chunkType, &png.ReadOptions{Limits: &limits})
	if err != nil {
		return fmt.Errorf("failed to decode: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    pngPath,
			"type":    chunkType,
			"message": string(msg),
		})
	}
	printInfo("%s\n", msg)
	return nil
}
