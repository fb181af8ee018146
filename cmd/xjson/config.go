package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kynexlabs/xjson"
)

// Flags holds CLI flag names for codec configuration, so subcommands can
// share one registration path while keeping flag names overridable.
type Flags struct {
	Root          string
	Indent        string
	CloseEmptyTag string
	KeepStrings   string
	CDataTagName  string
	MaxDepth      string
	Config        string
}

// Config holds the resolved CLI flag values shared by the tojson, toxml,
// and fmt subcommands.
//
// Create instances with [NewConfig], register flags with
// [Config.RegisterFlags], then apply an optional TOML defaults file with
// [Config.LoadFile] before [cobra.Command.Execute] runs. Use [Config.Options]
// to build the resulting [xjson.Option] slice.
type Config struct {
	Flags Flags

	Root          string
	Indent        int
	CloseEmptyTag bool
	KeepStrings   bool
	CDataTagName  string
	MaxDepth      int
	ConfigFile    string
}

// fileConfig mirrors Config's user-settable fields for TOML decoding.
type fileConfig struct {
	Root          string `toml:"root"`
	Indent        int    `toml:"indent"`
	CloseEmptyTag bool   `toml:"close_empty_tag"`
	KeepStrings   bool   `toml:"keep_strings"`
	CDataTagName  string `toml:"cdata_tag_name"`
	MaxDepth      int    `toml:"max_depth"`
}

// NewConfig returns a new [Config] with default flag names and codec
// defaults matching [xjson.NewConfig]'s own defaults, except Indent, which
// defaults to 2 so CLI output is pretty-printed.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{
			Root:          "root",
			Indent:        "indent",
			CloseEmptyTag: "close-empty-tag",
			KeepStrings:   "keep-strings",
			CDataTagName:  "cdata-tag-name",
			MaxDepth:      "max-depth",
			Config:        "config",
		},
		Indent:       2,
		CDataTagName: "content",
		MaxDepth:     512,
	}
}

// RegisterFlags adds the shared codec flags to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Root, c.Flags.Root, c.Root,
		"root element name for toxml/fmt output (defaults per value shape)")
	flags.IntVar(&c.Indent, c.Flags.Indent, c.Indent,
		"indent width in spaces (0 disables pretty-printing)")
	flags.BoolVar(&c.CloseEmptyTag, c.Flags.CloseEmptyTag, c.CloseEmptyTag,
		"render empty string scalars as <tag></tag> instead of <tag/>")
	flags.BoolVar(&c.KeepStrings, c.Flags.KeepStrings, c.KeepStrings,
		"disable primitive coercion, keep all text and attribute values as strings")
	flags.StringVar(&c.CDataTagName, c.Flags.CDataTagName, c.CDataTagName,
		"key name used for an element's own text alongside attributes or children")
	flags.IntVar(&c.MaxDepth, c.Flags.MaxDepth, c.MaxDepth,
		"maximum element nesting depth before aborting with a parse error")
	flags.StringVar(&c.ConfigFile, c.Flags.Config, c.ConfigFile,
		"path to a TOML file of default flag values, overridden by any flag set explicitly")
}

// RegisterCompletions registers shell completions for the shared flags.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{c.Flags.Root, c.Flags.Indent, c.Flags.CDataTagName, c.Flags.MaxDepth} {
		if err := cmd.RegisterFlagCompletionFunc(flag, noFileComp); err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// LoadFile applies TOML defaults from c.ConfigFile to any flag the caller
// did not set explicitly on the command line. It is a no-op when
// c.ConfigFile is empty.
func (c *Config) LoadFile(flags *pflag.FlagSet) error {
	if c.ConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		return errors.Wrapf(ErrInvalidConfig, "reading %s: %v", c.ConfigFile, err)
	}

	var fc fileConfig
	fc.Indent = c.Indent
	fc.CDataTagName = c.CDataTagName
	fc.MaxDepth = c.MaxDepth

	if err := toml.Unmarshal(data, &fc); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "parsing %s: %v", c.ConfigFile, err)
	}

	if !flags.Changed(c.Flags.Root) {
		c.Root = fc.Root
	}
	if !flags.Changed(c.Flags.Indent) {
		c.Indent = fc.Indent
	}
	if !flags.Changed(c.Flags.CloseEmptyTag) {
		c.CloseEmptyTag = fc.CloseEmptyTag
	}
	if !flags.Changed(c.Flags.KeepStrings) {
		c.KeepStrings = fc.KeepStrings
	}
	if !flags.Changed(c.Flags.CDataTagName) {
		c.CDataTagName = fc.CDataTagName
	}
	if !flags.Changed(c.Flags.MaxDepth) {
		c.MaxDepth = fc.MaxDepth
	}

	return nil
}

// Validate rejects flag combinations the codec cannot act on sensibly.
func (c *Config) Validate() error {
	if c.Indent < 0 {
		return errors.Wrapf(ErrInvalidIndent, "%d is negative", c.Indent)
	}
	if c.Root != "" {
		for _, r := range c.Root {
			if r == '<' || r == '>' || r == '&' || r == ' ' || r == '\t' || r == '\n' {
				return errors.Wrapf(ErrInvalidRoot, "%q contains %q", c.Root, r)
			}
		}
	}
	return nil
}

// Options builds the [xjson.Option] slice implied by the resolved flags.
func (c *Config) Options() []xjson.Option {
	opts := []xjson.Option{
		xjson.CDataTagName(c.CDataTagName),
		xjson.MaxNestingDepth(c.MaxDepth),
		xjson.CloseEmptyTag(c.CloseEmptyTag),
		xjson.IndentFactor(c.Indent),
	}
	if c.KeepStrings {
		opts = append(opts, xjson.KeepStrings(true))
	}
	return opts
}
