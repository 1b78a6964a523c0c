package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vanirdb/vanir/pkg/coding"
	"github.com/vanirdb/vanir/pkg/span"
	"github.com/vanirdb/vanir/pkg/status"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <format> <value>",
	Short: "Encode a value into its wire-format bytes",
	Long: `Encode a value and print the resulting bytes as hex.

Formats:
  varint32, varint64   variable-length unsigned integer
  fixed32, fixed64     little-endian fixed-width unsigned integer
  string               length-prefixed byte string (varint32 length + raw bytes)

Example:
  vanir encode varint64 300
  vanir encode string user:123`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, value := args[0], args[1]

		buf, st := encodeValue(format, value)
		if !st.OK() {
			return fmt.Errorf("%s", st.String())
		}

		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf))
		return nil
	},
}

func encodeValue(format, value string) ([]byte, status.Status) {
	if format == "string" {
		return coding.PutLengthPrefixedSlice(nil, span.FromString(value)), status.OK()
	}

	bits := 64
	if format == "varint32" || format == "fixed32" {
		bits = 32
	}
	v, err := strconv.ParseUint(value, 10, bits)
	if err != nil {
		return nil, status.InvalidArgument(span.FromString(format), span.FromString(value))
	}

	switch format {
	case "varint32":
		return coding.PutVarint32(nil, uint32(v)), status.OK()
	case "varint64":
		return coding.PutVarint64(nil, v), status.OK()
	case "fixed32":
		return coding.PutFixed32(nil, uint32(v)), status.OK()
	case "fixed64":
		return coding.PutFixed64(nil, v), status.OK()
	}
	return nil, status.InvalidArgument(span.FromString("unknown format"), span.FromString(format))
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
