// Command textcodec transcodes a file between text encodings.
//
// Usage:
//
//	textcodec --from utf-8 --to utf-16-le --in input.txt --out output.bin
//
// The source encoding may be "auto" to detect the encoding from a byte order
// mark. With --pack, the output is wrapped in a compressed, checksummed
// container; --unpack reverses it before transcoding.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/textcodec/codec"
	"github.com/arloliu/textcodec/format"
	"github.com/arloliu/textcodec/textbuf"
)

var (
	fromName string
	toName   string
	inPath   string
	outPath  string
	packName string
	unpack   bool

	log *zap.Logger

	rootCmd = &cobra.Command{
		Use:   "textcodec",
		Short: "Transcode a file between text encodings",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) (err error) {
			if log, err = zap.NewProduction(); err != nil {
				return err
			}

			return nil
		},
		RunE: run,
		PostRun: func(cmd *cobra.Command, args []string) {
			_ = log.Sync()
		},
	}
)

func init() {
	rootCmd.Flags().StringVar(&fromName, "from", "auto", "source encoding, or 'auto' to detect from a BOM")
	rootCmd.Flags().StringVar(&toName, "to", "utf-8", "target encoding")
	rootCmd.Flags().StringVar(&inPath, "in", "", "input file path")
	rootCmd.Flags().StringVar(&outPath, "out", "", "output file path")
	rootCmd.Flags().StringVar(&packName, "pack", "", "pack the output with the given compression (none, zstd, s2, lz4)")
	rootCmd.Flags().BoolVar(&unpack, "unpack", false, "treat the input as a packed container")

	_ = rootCmd.MarkFlagRequired("in")
	_ = rootCmd.MarkFlagRequired("out")
}

func run(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	buf := textbuf.FromBytes(data)
	if unpack {
		if buf, err = textbuf.Unpack(data); err != nil {
			return err
		}
	}

	src, err := sourceEncoding(buf.Bytes())
	if err != nil {
		return err
	}

	dst, err := format.ParseEncoding(toName)
	if err != nil {
		return err
	}

	out, err := buf.Transcode(src, dst)
	if err != nil {
		return err
	}

	log.Info("transcoded",
		zap.Stringer("from", src),
		zap.Stringer("to", dst),
		zap.Int("input_bytes", buf.Len()),
		zap.Int("output_bytes", out.Len()),
		zap.Uint64("fingerprint", out.Fingerprint()),
	)

	payload := out.Bytes()
	if packName != "" {
		compression, err := format.ParseCompression(packName)
		if err != nil {
			return err
		}

		if payload, err = out.Pack(compression); err != nil {
			return err
		}

		log.Info("packed",
			zap.Stringer("compression", compression),
			zap.Int("packed_bytes", len(payload)),
		)
	}

	return os.WriteFile(outPath, payload, 0o644)
}

func sourceEncoding(data []byte) (format.Encoding, error) {
	if fromName != "auto" {
		return format.ParseEncoding(fromName)
	}

	enc, ok := codec.Detect(data)
	if !ok {
		return 0, errors.New("no byte order mark found, pass --from explicitly")
	}

	return enc, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
