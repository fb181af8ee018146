package xjson

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Serialize renders v as XML text. v must be nil, a scalar, an Array, or
// an *Object. root names the wrapping element; an empty root emits an
// Object's keys as top-level siblings (so parse(Serialize(j, "", cfg, 0))
// round-trips j for documents with a single root key), and defaults a
// top-level Array's synthetic tag to "array". indent is the starting
// nesting depth, normally 0; cfg.IndentFactor controls spacing per level.
func Serialize(v Value, root string, cfg *Config, indent int) string {
	if cfg == nil {
		cfg = NewConfig()
	}
	if v == nil {
		return `"null"`
	}

	var b strings.Builder
	switch val := v.(type) {
	case *Object:
		if root == "" {
			writeObjectBody(&b, val, cfg, indent)
		} else {
			writeElement(&b, root, val, cfg, indent)
		}
	case Array:
		tag := root
		if tag == "" {
			tag = "array"
		}
		writeArrayFanout(&b, tag, val, cfg, indent)
	default:
		text := stringifyScalar(val)
		if root == "" {
			b.WriteString(Escape(text))
		} else {
			writeElement(&b, root, val, cfg, indent)
		}
	}
	return b.String()
}

func writeObjectBody(b *strings.Builder, obj *Object, cfg *Config, depth int) {
	obj.ForEach(func(key string, val Value) {
		if key == cfg.cdataTagName {
			writeCDataKey(b, val, cfg, depth)
			return
		}
		if arr, ok := val.(Array); ok {
			writeArrayFanout(b, key, arr, cfg, depth)
			return
		}
		writeElement(b, key, val, cfg, depth)
	})
}

// writeElement writes exactly one <tag>...</tag> element (or its
// self-closing / close_empty_tag variant) for a non-array value.
func writeElement(b *strings.Builder, tag string, val Value, cfg *Config, depth int) {
	writeIndent(b, cfg, depth)
	if obj, ok := val.(*Object); ok {
		b.WriteString("<" + tag + ">")
		if obj.Len() == 0 {
			b.WriteString("</" + tag + ">")
			return
		}
		writeObjectBody(b, obj, cfg, depth+1)
		writeIndent(b, cfg, depth)
		b.WriteString("</" + tag + ">")
		return
	}
	writeScalarBody(b, tag, stringifyScalar(val), cfg)
}

func writeScalarBody(b *strings.Builder, tag, text string, cfg *Config) {
	if text == "" {
		if cfg.closeEmptyTag {
			b.WriteString("<" + tag + "></" + tag + ">")
		} else {
			b.WriteString("<" + tag + "/>")
		}
		return
	}
	b.WriteString("<" + tag + ">")
	b.WriteString(Escape(text))
	b.WriteString("</" + tag + ">")
}

// writeArrayFanout implements "array value ⇒ one <key>...</key> per
// element" (§4.6), including the nested-array synthetic-<array>-wrapper
// rule and the unconditional empty-array collapse (§9 design note: an
// empty array never respects close_empty_tag, since that option only
// governs genuinely empty string scalars).
func writeArrayFanout(b *strings.Builder, tag string, arr Array, cfg *Config, depth int) {
	for _, el := range arr {
		nested, isArray := el.(Array)
		if !isArray {
			writeElement(b, tag, el, cfg, depth)
			continue
		}
		if len(nested) == 0 {
			writeIndent(b, cfg, depth)
			b.WriteString("<" + tag + "></" + tag + ">")
			continue
		}
		writeIndent(b, cfg, depth)
		b.WriteString("<" + tag + ">")
		writeArrayFanout(b, "array", nested, cfg, depth+1)
		writeIndent(b, cfg, depth)
		b.WriteString("</" + tag + ">")
	}
}

// writeCDataKey renders the cdata_tag_name key as raw text with no
// surrounding tag, joining array values with literal newlines (§4.6).
func writeCDataKey(b *strings.Builder, val Value, cfg *Config, depth int) {
	writeIndent(b, cfg, depth)
	if arr, ok := val.(Array); ok {
		parts := make([]string, len(arr))
		for i, el := range arr {
			parts[i] = Escape(stringifyScalar(el))
		}
		b.WriteString(strings.Join(parts, "\n"))
		return
	}
	b.WriteString(Escape(stringifyScalar(val)))
}

func writeIndent(b *strings.Builder, cfg *Config, depth int) {
	if cfg.indentFactor <= 0 {
		return
	}
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat(" ", cfg.indentFactor*depth))
}

func stringifyScalar(v Value) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		if t {
			return "true"
		}
		return "false"
	case string:
		return t
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case *big.Int:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
