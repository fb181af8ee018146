package xjson

// XML Schema Instance attribute names recognized by literal string match,
// without namespace-prefix resolution.
const (
	xsiNilAttr  = "xsi:nil"
	xsiTypeAttr = "xsi:type"
)

func isXSINilTrue(attrs []attribute) bool {
	for _, a := range attrs {
		if a.Name == xsiNilAttr && a.Value == "true" {
			return true
		}
	}
	return false
}
