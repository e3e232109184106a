package decompress

import (
	"errors"
	"fmt"
	"statichuff/cmd/internal/cliio"
	"statichuff/pkg"

	"github.com/spf13/cobra"
)

func NewCommand(codec *pkg.Codec) *cobra.Command {
	var (
		output  string
		format  string
		partial bool
	)

	cmd := &cobra.Command{
		Use:          "decompress [input]",
		Short:        "Decompress a packet compressed with the static Huffman table",
		Long:         "Decompress a file, or stdin when no input or \"-\" is given. The input is read raw, as hex or as a comma-separated list of byte values.",
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
			raw, err := cliio.ReadInput(in, cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			data, err := cliio.Parse(raw, f)
			if err != nil {
				return err
			}

			out, err := codec.Decompress(data)
			if err != nil {
				var decErr *pkg.DecodeError
				if !partial || !errors.As(err, &decErr) {
					return fmt.Errorf("decompressing: %w", err)
				}
				cmd.PrintErrf("warning: %s\n", err)
				out = decErr.Partial
			}

			if err := cliio.WriteOutput(output, cmd.OutOrStdout(), out); err != nil {
				return fmt.Errorf("writing output %s: %w", output, err)
			}

			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				cmd.PrintErrf("decompressed %d bytes to %d bytes\n", len(data), len(out))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "O", "", "Output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", string(cliio.Raw), "Input format: raw|hex|list")
	cmd.Flags().BoolVarP(&partial, "partial", "p", false, "Write the bytes decoded before a truncated stream instead of failing")
	return cmd
}
