package xjson

import (
	"io"
	"strings"
)

// frame is the per-element state held by the Projection Engine. One frame
// exists per currently open element; the root frame is synthetic and
// carries no tag name.
type frame struct {
	tag   string
	obj   *Object
	texts []string
	isNil bool
}

// Parse drives the Tokenizer and builds a JSON value tree according to
// the Projection Engine's structural rules. A nil reader is a programmer
// error; an empty document yields an empty Object.
func Parse(r io.Reader, cfg *Config) (Value, error) {
	if r == nil {
		return nil, errNullInput()
	}
	if cfg == nil {
		cfg = NewConfig()
	}

	tz := newTokenizer(newSource(r))
	root := &frame{obj: NewObject()}
	stack := []*frame{root}

	for {
		tok, err := tz.Next()
		if err != nil {
			return nil, err
		}

		switch tok.kind {
		case tokEOF:
			return finishRoot(root, cfg)

		case tokStart:
			if err := checkDepth(len(stack), cfg); err != nil {
				return nil, err
			}
			f := &frame{tag: tok.name, obj: NewObject()}
			applyAttributes(f, tok.attrs, cfg)
			stack = append(stack, f)

		case tokEmpty:
			if err := checkDepth(len(stack), cfg); err != nil {
				return nil, err
			}
			f := &frame{tag: tok.name, obj: NewObject()}
			applyAttributes(f, tok.attrs, cfg)
			val := finalizeElement(f, cfg)
			mergeChild(stack[len(stack)-1], f.tag, val, cfg)

		case tokEnd:
			if len(stack) <= 1 {
				return nil, &ParseError{Message: "Unmatched end tag: </" + tok.name + ">"}
			}
			top := stack[len(stack)-1]
			if top.tag != tok.name {
				return nil, &ParseError{Message: "Mismatched end tag: expected </" + top.tag + "> got </" + tok.name + ">"}
			}
			stack = stack[:len(stack)-1]
			val := finalizeElement(top, cfg)
			mergeChild(stack[len(stack)-1], top.tag, val, cfg)

		case tokText:
			if strings.TrimSpace(tok.text) == "" {
				continue
			}
			cur := stack[len(stack)-1]
			cur.texts = append(cur.texts, tok.text)

		case tokCData:
			cur := stack[len(stack)-1]
			cur.texts = append(cur.texts, tok.text)
		}
	}
}

func checkDepth(openFrames int, cfg *Config) error {
	if cfg.maxNestingDepth >= 0 && openFrames > cfg.maxNestingDepth {
		return errMaxNestingDepth(cfg.maxNestingDepth)
	}
	return nil
}

func applyAttributes(f *frame, attrs []attribute, cfg *Config) {
	nilMarked := cfg.convertNilToNull && isXSINilTrue(attrs)
	if nilMarked {
		f.isNil = true
	}
	for _, a := range attrs {
		if nilMarked && a.Name == xsiNilAttr {
			continue
		}
		f.obj.Put(a.Name, coerceMaybe(a.Value, cfg))
	}
}

// mergeInto implements the array-promotion merge rule used both for
// attaching a finished element's value to its parent and for the
// cdata_tag_name collision case (§9 design note): a key either holds a
// single value or an array of two-or-more, never a singleton array.
func mergeInto(obj *Object, key string, val Value) {
	if !obj.Has(key) {
		obj.Put(key, val)
		return
	}
	existing := obj.Get(key)
	if arr, ok := existing.(Array); ok {
		obj.Put(key, append(arr, val))
		return
	}
	obj.Put(key, Array{existing, val})
}

func mergeChild(parent *frame, name string, val Value, cfg *Config) {
	if !parent.obj.Has(name) && cfg.isForceList(name) {
		parent.obj.Put(name, Array{val})
		return
	}
	mergeInto(parent.obj, name, val)
}

func coerceTexts(t []string, cfg *Config) Array {
	arr := make(Array, len(t))
	for i, s := range t {
		arr[i] = coerceMaybe(s, cfg)
	}
	return arr
}

// computeValue implements the six-case table of §4.3 given an element's
// (or the synthetic root's) attribute/child object A and staged text
// segments T.
func computeValue(a *Object, t []string, cfg *Config) Value {
	switch {
	case a.Len() == 0 && len(t) == 0:
		return ""
	case a.Len() == 0 && len(t) == 1:
		return coerceMaybe(t[0], cfg)
	case a.Len() == 0:
		return coerceTexts(t, cfg)
	case len(t) == 0:
		return a
	case len(t) == 1:
		mergeInto(a, cfg.cdataTagName, coerceMaybe(t[0], cfg))
		return a
	default:
		mergeInto(a, cfg.cdataTagName, coerceTexts(t, cfg))
		return a
	}
}

func finalizeElement(f *frame, cfg *Config) Value {
	if f.isNil {
		return nil
	}
	val := computeValue(f.obj, f.texts, cfg)
	return applyXSIType(f.obj, val, f.texts, cfg)
}

// applyXSIType interprets a recognized xsi:type attribute per §4.3 and the
// design-note resolution of what "stringified original" means once the
// attribute has been folded into the element's object during
// applyAttributes: the converter always runs against the raw, uncoerced
// source text, never a round-tripped coerced value.
func applyXSIType(a *Object, val Value, texts []string, cfg *Config) Value {
	if !a.Has(xsiTypeAttr) {
		return val
	}
	typeName, _ := a.Get(xsiTypeAttr).(string)
	conv, ok := cfg.xsiConverter(typeName)
	if !ok {
		return val
	}
	a.Remove(xsiTypeAttr)

	raw := ""
	if len(texts) == 1 {
		raw = texts[0]
	}

	if a.Len() == 0 {
		return conv(raw)
	}
	if len(texts) == 1 && a.Len() == 1 && a.Has(cfg.cdataTagName) {
		a.Put(cfg.cdataTagName, conv(raw))
		return a
	}
	return val
}

// finishRoot applies the same structural rules to the synthetic root
// frame as finalizeElement applies to a real element, with two
// root-specific cases: a truly empty document yields an empty Object
// (§6), and standalone top-level text/CDATA with no element children at
// all promotes under cdata_tag_name rather than escaping as a bare
// scalar (§9 open question).
func finishRoot(root *frame, cfg *Config) (Value, error) {
	if root.obj.Len() == 0 && len(root.texts) == 0 {
		return NewObject(), nil
	}
	if root.obj.Len() == 0 {
		out := NewObject()
		if len(root.texts) == 1 {
			out.Put(cfg.cdataTagName, coerceMaybe(root.texts[0], cfg))
		} else {
			out.Put(cfg.cdataTagName, coerceTexts(root.texts, cfg))
		}
		return out, nil
	}
	return computeValue(root.obj, root.texts, cfg), nil
}
