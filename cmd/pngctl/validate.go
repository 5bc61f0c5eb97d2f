package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/pkg/png"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <png>",
		Short: "Validate PNG structure and limits",
		Long: `The validate command checks a PNG file's signature, chunk framing and
CRCs, that IHDR comes first and IEND last, and that the file stays within
the selected limits.

Limits presets:
  default - Ordinary images
  strict  - Untrusted input; also rejects chunk types with the reserved bit set
  relaxed - Very large images

Example:
  pngctl validate image.png
  pngctl validate image.png --limits strict
  pngctl validate image.png --limits-file limits.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

func runValidate(args []string) error {
	pngPath := args[0]

	printVerbose("Validating png: %s\n", pngPath)

	limits, err := resolveLimits()
	if err != nil {
		return err
	}
	preset := limitsPreset
	if limitsFile != "" {
		preset = limitsFile
	}

	err = png.Validate(pngPath, limits)

	if jsonOut {
		result := map[string]interface{}{
			"file":   pngPath,
			"limits": preset,
			"valid":  err == nil,
		}
		if err != nil {
			result["error"] = err.Error()
		}
		if jsonErr := printJSON(result); jsonErr != nil {
			return jsonErr
		}
		return err
	}

	printInfo("Validating %s (limits: %s)\n", pngPath, preset)
	if err != nil {
		printInfo("  ✗ %v\n", err)
		printInfo("\nResult: ✗ INVALID\n")
		return err
	}
	printInfo("  ✓ Signature and chunk CRCs valid\n")
	printInfo("  ✓ IHDR first, IEND last\n")
	printInfo("  ✓ All limits satisfied\n")
	printInfo("\nResult: ✓ VALID\n")
	return nil
}
