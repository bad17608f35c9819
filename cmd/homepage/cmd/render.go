package cmd

import (
	"fmt"

	"github.com/nfrund/homepage/internal/export"
	"github.com/nfrund/homepage/internal/rendering"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// renderFs is swapped for an in-memory filesystem in tests.
var renderFs afero.Fs = afero.NewOsFs()

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write a static snapshot of the initial page",
	Long: `Renders the home page as it looks on first load (Like (0)) without
mounting an instance. The like button in the snapshot is inert.
Writes to stdout unless --out is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		x := export.New(renderFs, rendering.NewUniversalRenderer())

		if renderOut == "" {
			_, err := x.Stream(cmd.Context(), cmd.OutOrStdout())
			return err
		}

		n, err := x.WriteFile(cmd.Context(), renderOut)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d bytes to %s\n", n, renderOut)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "file to write the snapshot to")
	rootCmd.AddCommand(renderCmd)
}
