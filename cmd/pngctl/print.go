package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/pkg/png"
)

func init() {
	rootCmd.AddCommand(newPrintCmd())
}

func newPrintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print <png>",
		Short: "Print the chunk layout of a file",
		Long: `The print command lists every chunk with its offset, length, CRC and
the properties encoded in its type code. tEXt chunks also show their
keyword and text.

Example:
  pngctl print image.png
  pngctl print image.png --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(args)
		},
	}
	return cmd
}

func runPrint(args []string) error {
	pngPath := args[0]

	limits, err := resolveLimits()
	if err != nil {
		return err
	}
	printVerbose("Opening %s\n", pngPath)

	f, err := png.Open(pngPath, limits)
	if err != nil {
		return fmt.Errorf("failed to open: %w", err)
	}
	defer f.Close()
	chunks := f.Chunks()

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":   pngPath,
			"size":   f.Size(),
			"chunks": chunks,
		})
	}

	printInfo("File: %s\n", filepath.Base(pngPath))
	printInfo("Size: %d bytes\n", f.Size())
	printInfo("Chunks: %d\n", len(chunks))
	if n := f.TrailingBytes(); n > 0 {
		printInfo("Trailing: %d bytes after IEND\n", n)
	}
	printInfo("\n")
	printInfo("%8s  %-4s  %8s  %-10s  %s\n", "Offset", "Type", "Length", "CRC", "Properties")
	for _, c := range chunks {
		printInfo("%8d  %-4s  %8d  0x%08x  %s\n", c.Offset, c.Type, c.Length, c.CRC, properties(c))
		if c.Keyword != "" {
			printInfo("%8s  %s: %s\n", "", c.Keyword, c.Text)
		}
	}
	return nil
}

func properties(c png.ChunkInfo) string {
	props := make([]string, 0, 4)
	if c.Critical {
		props = append(props, "critical")
	} else {
		props = append(props, "ancillary")
	}
	if c.Public {
		props = append(props, "public")
	} else {
		props = append(props, "private")
	}
	if c.SafeToCopy {
		props = append(props, "safe-to-copy")
	} else {
		props = append(props, "unsafe-to-copy")
	}
	if !c.Valid {
		props = append(props, "reserved")
	}
	return strings.Join(props, " ")
}
