package main

import (
	"bytes"

	"charm.land/log/v2"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kynexlabs/xjson"
)

func newToXMLCommand(cfg *Config, logger *log.Logger) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "toxml [file]",
		Short: "Parse a JSON document and print the equivalent XML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqID := uuid.New().String()
			log := logger.With("request_id", reqID, "command", "toxml")

			input := argOrStdin(args)
			data, err := readInput(input)
			if err != nil {
				return err
			}

			val, err := xjson.DecodeJSON(bytes.NewReader(data))
			if err != nil {
				log.Error("decode failed", "error", err)
				return err
			}

			xmlCfg := xjson.NewConfig(cfg.Options()...)
			out := xjson.Serialize(val, cfg.Root, xmlCfg, 0)
			out += "\n"

			log.Info("serialized document", "input", input, "bytes", humanize.Bytes(uint64(len(out))))
			return writeOutput(output, []byte(out))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file path (- for stdout)")
	return cmd
}
