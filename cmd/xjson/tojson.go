package main

import (
	"bytes"
	"encoding/json"

	"charm.land/log/v2"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kynexlabs/xjson"
)

func newToJSONCommand(cfg *Config, logger *log.Logger) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tojson [file]",
		Short: "Parse an XML document and print the equivalent JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqID := uuid.New().String()
			log := logger.With("request_id", reqID, "command", "tojson")

			input := argOrStdin(args)
			data, err := readInput(input)
			if err != nil {
				return err
			}

			val, err := xjson.Parse(bytes.NewReader(data), xjson.NewConfig(cfg.Options()...))
			if err != nil {
				log.Error("parse failed", "error", err)
				return err
			}

			out, err := xjson.MarshalJSON(val)
			if err != nil {
				return errors.Wrap(ErrWriteOutput, err.Error())
			}
			if cfg.Indent > 0 {
				var buf bytes.Buffer
				if err := json.Indent(&buf, out, "", spaces(cfg.Indent)); err != nil {
					return errors.Wrap(ErrWriteOutput, err.Error())
				}
				out = buf.Bytes()
			}
			out = append(out, '\n')

			log.Info("parsed document", "input", input, "bytes", humanize.Bytes(uint64(len(data))))
			return writeOutput(output, out)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file path (- for stdout)")
	return cmd
}

func argOrStdin(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
