package inspect

import (
	"fmt"
	"statichuff/pkg"
	"strconv"

	"github.com/spf13/cobra"
)

func NewCommand(codec *pkg.Codec) *cobra.Command {
	var (
		quiet  bool
		symbol string
	)

	cmd := &cobra.Command{
		Use:          "inspect",
		Short:        "View the static code table",
		Long:         "Print the frequency, code length and code bits of every symbol. Code bits are shown in transmission order, first bit on the left.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			codes := codec.Symbols()
			if symbol != "" {
				sym, err := strconv.ParseUint(symbol, 0, 16)
				if err != nil || sym > pkg.EOFSymbol {
					return fmt.Errorf("invalid symbol %q: must be 0-%d", symbol, pkg.EOFSymbol)
				}
				codes = codes[sym : sym+1]
			}

			out := cmd.OutOrStdout()
			for _, c := range codes {
				if quiet {
					fmt.Fprintf(out, "%s: %d\n", symbolName(c.Symbol), c.Length)
					continue
				}
				fmt.Fprintf(out, "=====================\n%s:\n\tFrequency: %d\n\tLength: %d\n\tCode: %s\n",
					symbolName(c.Symbol), c.Frequency, c.Length, bitString(c.Code, c.Length))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "Q", false, "Only print code lengths")
	cmd.Flags().StringVarP(&symbol, "symbol", "s", "", "Only print this symbol (0-256)")
	return cmd
}

func symbolName(sym int) string {
	if sym == pkg.EOFSymbol {
		return "EOF"
	}
	return strconv.Itoa(sym)
}

// bitString lists code bits in the order they are written, lowest first.
func bitString(code uint32, length int) string {
	b := make([]byte, length)
	for i := range length {
		b[i] = '0' + byte(code>>i&1)
	}
	return string(b)
}
