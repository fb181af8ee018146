package main

import (
	"bytes"

	"charm.land/log/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kynexlabs/xjson"
)

// newFmtCommand re-indents an XML document: parse to the JSON value model
// and serialize straight back out, so the command doubles as a structural
// validator for the input.
func newFmtCommand(cfg *Config, logger *log.Logger) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Re-indent an XML document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqID := uuid.New().String()
			log := logger.With("request_id", reqID, "command", "fmt")

			input := argOrStdin(args)
			data, err := readInput(input)
			if err != nil {
				return err
			}

			root := cfg.Root
			xmlCfg := xjson.NewConfig(cfg.Options()...)
			val, err := xjson.Parse(bytes.NewReader(data), xmlCfg)
			if err != nil {
				log.Error("parse failed", "error", err)
				return err
			}

			// Parse wraps the document under its own root tag name
			// (e.g. {"book": {...}}); unwrap that before re-serializing
			// under root, or the tag nests inside itself.
			inner := val
			actualRoot := root
			if obj, ok := val.(*xjson.Object); ok && obj.Len() == 1 {
				keys := obj.Keys()
				actualRoot = keys[0]
				inner = obj.Get(actualRoot)
			}
			if root == "" {
				root = actualRoot
			}

			out := xjson.Serialize(inner, root, xmlCfg, 0)
			out += "\n"

			log.Info("reformatted document", "input", input, "root", root)
			return writeOutput(output, []byte(out))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file path (- for stdout)")
	return cmd
}
