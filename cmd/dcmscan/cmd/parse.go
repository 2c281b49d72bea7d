package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dicomscan/dicomscan/pkg/dicom/element"
)

func newParseCmd(opts *rootOptions) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse one DICOM file and print its decoded elements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.reader().Parse(args[0])
			if err != nil {
				return err
			}
			if format == "json" {
				out, err := json.MarshalIndent(summarizeForJSON(s.Elements()), "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(out))
				return nil
			}
			for _, e := range s.Elements() {
				cmd.Println(describeElement(e))
			}
			return nil
		},
	}
	c.Flags().StringVar(&format, "format", "text", "output format: text or json")
	return c
}

func describeElement(e element.Element) string {
	return fmt.Sprintf("%s %s %v", e.Tag.String(), e.Value.Kind, summarizeValue(e.Value))
}

func summarizeValue(v element.Value) any {
	switch v.Kind {
	case element.KindString:
		return v.Str
	case element.KindFloat64s:
		return v.Float64s
	case element.KindInt16s:
		return v.Int16s
	case element.KindUInt16s:
		return v.UInt16s
	case element.KindInt32s:
		return v.Int32s
	case element.KindUInt32s:
		return v.UInt32s
	case element.KindFloat32s:
		return v.Float32s
	case element.KindBytes:
		return fmt.Sprintf("<%d bytes>", len(v.Bytes))
	case element.KindImage16:
		return fmt.Sprintf("<image16 %dx%dx%d>", v.Image16.Rows, v.Image16.Cols, v.Image16.Planes)
	case element.KindImage8:
		return fmt.Sprintf("<image8 %dx%dx%d>", v.Image8.Rows, v.Image8.Cols, v.Image8.Planes)
	case element.KindSeq:
		return fmt.Sprintf("<%d items>", len(v.Seq))
	default:
		return nil
	}
}

type elementSummary struct {
	Tag   string `json:"tag"`
	Kind  string `json:"kind"`
	Value any    `json:"value"`
}

func summarizeForJSON(elems []element.Element) []elementSummary {
	out := make([]elementSummary, len(elems))
	for i, e := range elems {
		out[i] = elementSummary{Tag: e.Tag.String(), Kind: e.Value.Kind.String(), Value: summarizeValue(e.Value)}
	}
	return out
}
