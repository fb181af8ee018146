package xjson

// Converter transforms an element's raw text under a recognized xsi:type
// value into a Value; the xsi:type attribute itself is then dropped.
type Converter func(string) Value

// Config is an immutable set of options consumed by both Parse and
// Serialize. Build one with NewConfig; values are copied in and the
// resulting Config is safe to share across goroutines.
type Config struct {
	keepStrings      bool
	cdataTagName     string
	convertNilToNull bool
	xsiTypeMap       map[string]Converter
	forceList        map[string]struct{}
	maxNestingDepth  int
	closeEmptyTag    bool
	indentFactor     int
}

// Option configures a Config under construction.
type Option func(*Config)

// KeepStrings disables the Primitive Coercer: every leaf becomes a string.
func KeepStrings(v bool) Option {
	return func(c *Config) { c.keepStrings = v }
}

// CDataTagName sets the synthetic key used for mixed text and standalone
// CDATA accumulation. Default "content".
func CDataTagName(name string) Option {
	return func(c *Config) { c.cdataTagName = name }
}

// ConvertNilToNull makes an element carrying xsi:nil="true" project to
// JSON null, dropping the attribute, instead of keeping it as a regular
// attribute.
func ConvertNilToNull(v bool) Option {
	return func(c *Config) { c.convertNilToNull = v }
}

// XSIType registers a converter for a recognized xsi:type attribute value.
func XSIType(typeName string, fn Converter) Option {
	return func(c *Config) { c.xsiTypeMap[typeName] = fn }
}

// ForceList marks element names that always project as arrays, even when
// they occur exactly once.
func ForceList(names ...string) Option {
	return func(c *Config) {
		for _, n := range names {
			c.forceList[n] = struct{}{}
		}
	}
}

// MaxNestingDepth bounds the number of simultaneously open element frames.
// -1 means unbounded. Default 512.
func MaxNestingDepth(n int) Option {
	return func(c *Config) { c.maxNestingDepth = n }
}

// CloseEmptyTag controls whether the Serializer emits <t></t> (true) or
// <t/> (false, default) for empty-valued string children.
func CloseEmptyTag(v bool) Option {
	return func(c *Config) { c.closeEmptyTag = v }
}

// IndentFactor sets the number of spaces per nesting level added during
// serialization. 0 (default) means no indentation or trailing newlines.
func IndentFactor(n int) Option {
	return func(c *Config) { c.indentFactor = n }
}

// NewConfig builds an immutable Config from the given options, applied
// over the documented defaults.
func NewConfig(opts ...Option) *Config {
	c := &Config{
		cdataTagName:    "content",
		xsiTypeMap:      make(map[string]Converter),
		forceList:       make(map[string]struct{}),
		maxNestingDepth: 512,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Config) isForceList(name string) bool {
	_, ok := c.forceList[name]
	return ok
}

func (c *Config) xsiConverter(typeName string) (Converter, bool) {
	fn, ok := c.xsiTypeMap[typeName]
	return fn, ok
}
