package recipe

import (
	"bytes"
	"encoding/json"
)

// Export renders the collection as two-space indented UTF-8 JSON. Non-ASCII
// text is written verbatim and HTML characters are not escaped.
func Export(c Collection) ([]byte, error) {
	if c == nil {
		c = Collection{}
	}
	return marshalIndent(c)
}

// ExportRecipe renders a single recipe the same way as Export.
func ExportRecipe(r Recipe) ([]byte, error) {
	return marshalIndent(r)
}

// ExportFileName is the download name for a single exported recipe.
func ExportFileName(r Recipe) string {
	return "recipe_" + r.ID + ".json"
}

func marshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// unescapeLineSeparators restores U+2028 and U+2029, which encoding/json
// always escapes, as raw characters. Escaped backslashes are skipped as pairs
// so a literal `\\u2028` in a string stays as written.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		if rest := data[i:]; bytes.HasPrefix(rest, []byte(`\u2028`)) || bytes.HasPrefix(rest, []byte(`\u2029`)) {
			if rest[5] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}
			i += 5
			continue
		}
		out = append(out, data[i], data[i+1])
		i++
	}
	return out
}

// Parse decodes raw as a collection without touching any store. It applies
// the same rules as Import.
func Parse(raw []byte) (Collection, error) {
	return decodeCollection(raw)
}
