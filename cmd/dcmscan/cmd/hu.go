package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dicomscan/dicomscan/pkg/dicom/scan"
)

func newHUCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hu <dir>",
		Short: "Assemble a scan and report Hounsfield Unit statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := opts.reader().ParseScan(args[0])
			if err != nil {
				return err
			}
			hu := scan.GetPixelsHU(sc)
			if len(hu) == 0 {
				cmd.Println("no pixel data")
				return nil
			}
			min, max := hu[0], hu[0]
			var sum int64
			for _, v := range hu {
				if v < min {
					min = v
				}
				if v > max {
					max = v
				}
				sum += int64(v)
			}
			mean := float64(sum) / float64(len(hu))
			cmd.Printf("min=%d max=%d mean=%.2f samples=%d\n", min, max, mean, len(hu))
			return nil
		},
	}
}
