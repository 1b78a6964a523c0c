package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vanirdb/vanir/pkg/coding"
	"github.com/vanirdb/vanir/pkg/span"
	"github.com/vanirdb/vanir/pkg/status"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <format> <hex>",
	Short: "Decode wire-format bytes",
	Long: `Decode hex-encoded bytes and print the value plus the number of
bytes consumed. Trailing bytes after the decoded value are allowed and
reported.

Formats:
  varint32, varint64   variable-length unsigned integer
  fixed32, fixed64     little-endian fixed-width unsigned integer
  string               length-prefixed byte string (varint32 length + raw bytes)

Example:
  vanir decode varint64 ac02
  vanir decode string 08757365723a313233`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, input := args[0], args[1]

		raw, err := hex.DecodeString(input)
		if err != nil {
			st := status.InvalidArgument(span.FromString("not valid hex"), span.FromString(input))
			return fmt.Errorf("%s", st.String())
		}

		rendered, consumed, st := decodeValue(format, raw)
		if !st.OK() {
			return fmt.Errorf("%s", st.String())
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", rendered)
		fmt.Fprintf(cmd.OutOrStdout(), "consumed %d of %d bytes\n", consumed, len(raw))
		return nil
	},
}

// decodeValue translates decode failures into Corruption, the same mapping
// storage layers apply when a packed buffer fails to parse.
func decodeValue(format string, raw []byte) (string, int, status.Status) {
	in := span.New(raw)

	switch format {
	case "varint32":
		v, ok := coding.GetVarint32(&in)
		if !ok {
			return "", 0, status.Corruption(span.FromString("bad varint32"), span.Span{})
		}
		return fmt.Sprintf("%d", v), len(raw) - in.Size(), status.OK()
	case "varint64":
		v, ok := coding.GetVarint64(&in)
		if !ok {
			return "", 0, status.Corruption(span.FromString("bad varint64"), span.Span{})
		}
		return fmt.Sprintf("%d", v), len(raw) - in.Size(), status.OK()
	case "fixed32":
		if in.Size() < 4 {
			return "", 0, status.Corruption(span.FromString("fixed32 needs 4 bytes"), span.Span{})
		}
		return fmt.Sprintf("%d", coding.DecodeFixed32(in.Data())), 4, status.OK()
	case "fixed64":
		if in.Size() < 8 {
			return "", 0, status.Corruption(span.FromString("fixed64 needs 8 bytes"), span.Span{})
		}
		return fmt.Sprintf("%d", coding.DecodeFixed64(in.Data())), 8, status.OK()
	case "string":
		s, ok := coding.GetLengthPrefixedSlice(&in)
		if !ok {
			return "", 0, status.Corruption(span.FromString("bad length-prefixed string"), span.Span{})
		}
		return fmt.Sprintf("%q", s.String()), len(raw) - in.Size(), status.OK()
	}
	return "", 0, status.InvalidArgument(span.FromString("unknown format"), span.FromString(format))
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
