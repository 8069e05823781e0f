package table

import "strconv"

// Props is the property bag a prop getter produces for one UI element
// (table, row, header, cell, resizer). Renderers decide how to apply it.
type Props map[string]any

// Style is the nested style object stored under the "style" key of Props.
// A nil value means "unset" and is skipped by renderers.
type Style map[string]any

// StyleKey is the Props key holding the element's Style.
const StyleKey = "style"

// Style returns the element style, or nil if none is set.
func (p Props) Style() Style {
	return asStyle(p[StyleKey])
}

// Clone returns a copy of p. The style map is copied as well so the
// clone can be patched without touching the original.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		if k == StyleKey {
			if s := asStyle(v); s != nil {
				out[k] = s.Clone()
				continue
			}
		}
		out[k] = v
	}
	return out
}

// Clone returns a copy of s.
func (s Style) Clone() Style {
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge returns base with patch applied on top. Top-level keys are
// replaced; the style key is merged one level deep with patch values
// winning. Neither argument is modified.
func Merge(base, patch Props) Props {
	out := base.Clone()
	for k, v := range patch {
		if k != StyleKey {
			out[k] = v
			continue
		}
		ps := asStyle(v)
		if ps == nil {
			// nil leaves the accumulated style alone
			if v != nil && !isNilStyle(v) {
				out[k] = v
			}
			continue
		}
		merged := out.Style()
		if merged == nil {
			merged = make(Style, len(ps))
		}
		for sk, sv := range ps {
			merged[sk] = sv
		}
		out[k] = merged
	}
	return out
}

// asStyle accepts both Style and plain map[string]any values so hosts
// can build props with map literals.
func asStyle(v any) Style {
	switch s := v.(type) {
	case Style:
		return s
	case map[string]any:
		return Style(s)
	default:
		return nil
	}
}

func isNilStyle(v any) bool {
	switch s := v.(type) {
	case Style:
		return s == nil
	case map[string]any:
		return s == nil
	}
	return false
}

// Px formats a pixel length the way CSS expects it: "150px", "62.5px".
func Px(v float64) string {
	return formatNumber(v) + "px"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
