package compress

import (
	"fmt"
	"statichuff/cmd/internal/cliio"
	"statichuff/pkg"

	"github.com/spf13/cobra"
)

func NewCommand(codec *pkg.Codec) *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:          "compress [input]",
		Short:        "Compress a packet with the static Huffman table",
		Long:         "Compress a file, or stdin when no input or \"-\" is given. The compressed bytes are written raw, as hex or as a comma-separated list.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := cliio.ParseFormat(format)
			if err != nil {
				return err
			}

			var in string
			if len(args) > 0 {
				in = args[0]
			}
			data, err := cliio.ReadInput(in, cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			comp := codec.Compress(data)
			if err := cliio.WriteOutput(output, cmd.OutOrStdout(), f.Render(comp)); err != nil {
				return fmt.Errorf("writing output %s: %w", output, err)
			}

			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				cmd.PrintErrf("compressed %d bytes to %d bytes\n", len(data), len(comp))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "O", "", "Output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", string(cliio.Raw), "Output format: raw|hex|list")
	return cmd
}
