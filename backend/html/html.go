// Package html renders a table instance as flexbox HTML with templ.
package html

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/a-h/templ"

	"github.com/go-theft-auto/table"
)

// Table renders the headers and rows of inst. Resizer handles carry
// data-column-id so client script can wire them to pointer events.
func Table(inst *table.Instance) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := open(w, inst.GetTableProps()); err != nil {
			return err
		}

		for depth, group := range inst.HeaderGroups() {
			if err := open(w, inst.GetHeaderGroupProps(depth)); err != nil {
				return err
			}
			for _, h := range group {
				if err := header(w, inst, h); err != nil {
					return err
				}
			}
			if err := closeTag(w); err != nil {
				return err
			}
		}

		if err := open(w, inst.GetTableBodyProps()); err != nil {
			return err
		}
		for _, row := range inst.Rows() {
			if err := open(w, inst.GetRowProps(row)); err != nil {
				return err
			}
			for _, cell := range row.Cells {
				if err := element(w, inst.GetCellProps(cell), fmt.Sprint(cell.Value)); err != nil {
					return err
				}
			}
			if err := closeTag(w); err != nil {
				return err
			}
		}
		if err := closeTag(w); err != nil {
			return err
		}

		return closeTag(w)
	})
}

func header(w io.Writer, inst *table.Instance, h *table.Header) error {
	if err := open(w, inst.GetHeaderProps(h)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, templ.EscapeString(h.Label)); err != nil {
		return err
	}
	if h.GetResizerProps != nil {
		props := h.GetResizerProps(table.Props{"data-column-id": h.ID})
		if err := open(w, props); err != nil {
			return err
		}
		if err := closeTag(w); err != nil {
			return err
		}
	}
	return closeTag(w)
}

// Portal renders the drag indicators mounted on doc. Place it at the end
// of <body>.
func Portal(doc *table.Document) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, el := range doc.Elements() {
			if err := element(w, el.Props(), ""); err != nil {
				return err
			}
		}
		return nil
	})
}

func open(w io.Writer, props table.Props) error {
	_, err := io.WriteString(w, "<div"+Attributes(props)+">")
	return err
}

func closeTag(w io.Writer) error {
	_, err := io.WriteString(w, "</div>")
	return err
}

func element(w io.Writer, props table.Props, text string) error {
	if err := open(w, props); err != nil {
		return err
	}
	if _, err := io.WriteString(w, templ.EscapeString(text)); err != nil {
		return err
	}
	return closeTag(w)
}

// Attributes renders props as HTML attributes, each with a leading space,
// in key order. Event handlers, children and nil values are skipped; the
// style key is rendered with StyleString.
func Attributes(props table.Props) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var sb strings.Builder
	for _, k := range keys {
		if k == "children" || strings.HasPrefix(k, "on") {
			continue
		}
		var value string
		if k == table.StyleKey {
			value = StyleString(props.Style())
			if value == "" {
				continue
			}
		} else {
			v, ok := attrValue(props[k])
			if !ok {
				continue
			}
			value = v
		}
		sb.WriteString(" ")
		sb.WriteString(k)
		sb.WriteString(`="`)
		sb.WriteString(templ.EscapeString(value))
		sb.WriteString(`"`)
	}
	return sb.String()
}

func attrValue(v any) (string, bool) {
	switch v := v.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// StyleString renders a style as CSS declarations in key order.
// Keys are converted from camelCase; nil values are omitted.
func StyleString(style table.Style) string {
	keys := make([]string, 0, len(style))
	for k, v := range style {
		if v != nil {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v, ok := attrValue(style[k])
		if !ok {
			continue
		}
		parts = append(parts, cssProperty(k)+":"+v)
	}
	return strings.Join(parts, ";")
}

// cssProperty converts a camelCase style key to its CSS name, including
// vendor prefixes: MozUserSelect -> -moz-user-select, msUserSelect ->
// -ms-user-select.
func cssProperty(key string) string {
	if len(key) > 2 && strings.HasPrefix(key, "ms") && unicode.IsUpper(rune(key[2])) {
		key = "Ms" + key[2:]
	}
	var sb strings.Builder
	for _, r := range key {
		if unicode.IsUpper(r) {
			sb.WriteByte('-')
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
