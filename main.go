package main

import (
	"os"

	compress "statichuff/cmd/compress"
	decompress "statichuff/cmd/decompress"
	inspect "statichuff/cmd/inspect"
	version "statichuff/cmd/version"
	"statichuff/pkg"

	"github.com/spf13/cobra"
)

func newRootCmd(codec *pkg.Codec) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "statichuff",
		Short: "Static Huffman packet codec",
		Long:  "statichuff compresses and decompresses packets with a fixed, pre-agreed Huffman table. No table is stored in the output.",
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print size statistics to stderr")

	rootCmd.AddCommand(compress.NewCommand(codec))
	rootCmd.AddCommand(decompress.NewCommand(codec))
	rootCmd.AddCommand(inspect.NewCommand(codec))
	rootCmd.AddCommand(version.VersionCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd(pkg.NewCodec()).Execute(); err != nil {
		os.Exit(1)
	}
}
