package cmd

import (
	"github.com/spf13/cobra"
)

func newScanCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <dir>",
		Short: "Assemble a scan from a directory of DICOM files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := opts.reader().ParseScan(args[0])
			if err != nil {
				return err
			}
			cmd.Printf("slices=%d rows=%d cols=%d planes=%d\n",
				len(sc.Slices), sc.Image.Rows, sc.Image.Cols, sc.Image.Planes)
			return nil
		},
	}
}
