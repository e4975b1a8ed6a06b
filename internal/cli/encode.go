package cli

import (
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/cobra"
)

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <repr> <value>",
		Short: "Encode a value through every bridge",
		Long: `Parse value as an identifier of the given representation and print
its text, JSON, YAML and CUE encodings.

Representations: int8 int16 int32 int64 int128 uint8 uint16 uint32 uint64
uint128 float32 float64 string.

Example:
  tagid encode int64 42
  tagid encode uint128 340282366920938463463374607431768211455 --format json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(rootOpts, args[0], args[1], cmd)
		},
	}
	return cmd
}

func runEncode(opts *RootOptions, repr, value string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	_, ops, err := lookupRepr(repr)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeUsage, "unknown representation", err)
	}

	enc, err := ops.encode(cuecontext.New(), value)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeDecode, "cannot encode "+repr, err)
	}
	return formatter.Success(enc)
}
