package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/pkg/png"
)

var (
	encodeOutput  string
	encodeKeyword string
	encodeBackup  bool
)

func init() {
	cmd := newEncodeCmd()
	cmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "Write to this file instead of replacing the input")
	cmd.Flags().StringVar(&encodeKeyword, "keyword", "", "Store a tEXt chunk with this keyword instead of a custom chunk")
	cmd.Flags().BoolVar(&encodeBackup, "backup", false, "Keep a .bak copy when replacing the input")
	rootCmd.AddCommand(cmd)
}

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <png> <chunk-type> <message>",
		Short: "Hide a message in a new chunk",
		Long: `The encode command inserts a chunk holding message just before IEND.
The chunk type must be four ASCII letters with an uppercase third letter.
Lowercase first and second letters (ancillary, private) keep the image
readable by every decoder.

With --keyword the message is stored as a standard tEXt chunk instead and
the chunk type argument is omitted.

Example:
  pngctl encode image.png ruSt "meet at noon"
  pngctl encode image.png ruSt "meet at noon" -o out.png
  pngctl encode image.png --keyword Comment "hello"`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args)
		},
	}
	return cmd
}

func runEncode(args []string) error {
	pngPath := args[0]

	limits, err := resolveLimits()
	if err != nil {
		return err
	}
	opts := &png.WriteOptions{Limits: &limits, Output: encodeOutput, CreateBackup: encodeBackup}

	var chunkType, message string
	switch {
	case encodeKeyword != "" && len(args) == 2:
		chunkType, message = "tEXt", args[1]
		printVerbose("Writing tEXt %q to %s\n", encodeKeyword, pngPath)
		err = png.EncodeText(pngPath, encodeKeyword, message, opts)
	case encodeKeyword == "" && len(args) == 3:
		chunkType, message = args[1], args[2]
		printVerbose("Writing %s chunk to %s\n", chunkType, pngPath)
		err = png.Encode(pngPath, chunkType, message, opts)
	default:
		return fmt.Errorf("expected <png> <chunk-type> <message>, or <png> <message> with --keyword")
	}
	if err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}

	dst := encodeOutput
	if dst == "" {
		dst = pngPath
	}
	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":   dst,
			"type":   chunkType,
			"length": len(message),
		})
	}
	printInfo("Encoded %d bytes as %s into %s\n", len(message), chunkType, dst)
	return nil
}
