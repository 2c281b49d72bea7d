package cmd

import (
	"reflect"

	"github.com/spf13/cobra"
)

func newRoundtripCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip <dir> <out>",
		Short: "Assemble a scan, serialize it, then deserialize and verify equality",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := opts.reader()
			sc, err := r.ParseScan(args[0])
			if err != nil {
				return err
			}
			if _, err := r.SerializeScan(args[1], sc); err != nil {
				return err
			}
			got, err := r.DeserializeScan(args[1])
			if err != nil {
				return err
			}
			cmd.Printf("round-trip equal: %v\n", reflect.DeepEqual(sc, got))
			return nil
		},
	}
}
