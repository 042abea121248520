// Command img2ascii converts an image file to colorized ASCII art and
// prints it to the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kwren/img2ascii"
)

func newRootCmd() *cobra.Command {
	var (
		width int
		mode  string
	)

	cmd := &cobra.Command{
		Use:           "img2ascii IMAGE",
		Short:         "Convert images to colorized ASCII art in the terminal",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			userWidth := 0
			if cmd.Flags().Changed("width") {
				if width <= 0 {
					return fmt.Errorf("target width must be greater than zero: %w",
						img2ascii.ErrInvalidDimensions)
				}
				userWidth = width
			}
			return run(cmd, args[0], userWidth, mode)
		},
	}

	cmd.Flags().IntVar(&width, "width", 0,
		"override the output width in characters")
	cmd.Flags().StringVar(&mode, "mode", "standard",
		`rendering mode: "standard" or "edge"`)

	return cmd
}

func run(cmd *cobra.Command, path string, userWidth int, modeName string) error {
	mode, err := img2ascii.ParseMode(modeName)
	if err != nil {
		return err
	}

	resolution := img2ascii.ResolveOutputWidth(userWidth)
	emitWidthMessages(cmd, resolution)

	img, err := img2ascii.LoadImage(path)
	if err != nil {
		return err
	}

	processed, err := img2ascii.PrepareImage(img, resolution.Width)
	if err != nil {
		return err
	}

	grid, err := img2ascii.Convert(processed.Gray, mode)
	if err != nil {
		return err
	}

	return img2ascii.RenderColored(cmd.OutOrStdout(), grid, processed.Color)
}

// emitWidthMessages reports width provenance before the art is drawn.
// An explicit user override stays silent; detection results and the
// fallback are announced, with the fallback additionally warned on the
// error stream.
func emitWidthMessages(cmd *cobra.Command, resolution img2ascii.WidthResolution) {
	switch resolution.Source {
	case img2ascii.WidthSourceAutoDetected:
		fmt.Fprintf(cmd.OutOrStdout(),
			"Using auto-detected width: %d characters\n", resolution.Width)
	case img2ascii.WidthSourceFallback:
		fmt.Fprintf(cmd.ErrOrStderr(),
			"Warning: unable to detect terminal size; defaulting to %d characters.\n",
			resolution.Width)
		fmt.Fprintf(cmd.OutOrStdout(),
			"Using fallback width: %d characters\n", resolution.Width)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
