package helper

import (
	"strconv"
	"strings"
	"time"
)

/* ====================== SUBMISSION PATH ACCESS ====================== */

// PathValue walks decoded JSON with a dotted path, with optional bracket
// indexes for repeating groups: "family.members[2].name". Returns false when
// any segment is missing — absent optional fields are normal in field data.
func PathValue(data map[string]interface{}, path string) (interface{}, bool) {
	var cur interface{} = data
	for _, seg := range strings.Split(path, ".") {
		name := seg
		idx := -1
		if open := strings.IndexByte(seg, '['); open >= 0 && strings.HasSuffix(seg, "]") {
			name = seg[:open]
			n, err := strconv.Atoi(seg[open+1 : len(seg)-1])
			if err != nil {
				return nil, false
			}
			idx = n
		}

		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = m[name]
		if !ok || cur == nil {
			return nil, false
		}

		if idx >= 0 {
			arr, ok := cur.([]interface{})
			if !ok || idx >= len(arr) {
				return nil, false
			}
			cur = arr[idx]
		}
	}
	return cur, cur != nil
}

// PathString returns "" for anything that is not a non-empty string.
func PathString(data map[string]interface{}, path string) string {
	v, ok := PathValue(data, path)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// PathInt handles both JSON numbers and numeric strings (ODK emits both).
func PathInt(data map[string]interface{}, path string) *int {
	v, ok := PathValue(data, path)
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case float64:
		i := int(n)
		return &i
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return &i
		}
	}
	return nil
}

func PathFloat(data map[string]interface{}, path string) *float64 {
	v, ok := PathValue(data, path)
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case float64:
		f := n
		return &f
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return &f
		}
	}
	return nil
}

// PathBool maps ODK yes/no selects onto booleans.
func PathBool(data map[string]interface{}, path string) *bool {
	v, ok := PathValue(data, path)
	if !ok {
		return nil
	}
	switch b := v.(type) {
	case bool:
		val := b
		return &val
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "yes", "true", "1":
			t := true
			return &t
		case "no", "false", "0":
			f := false
			return &f
		}
	}
	return nil
}

// PathTime parses RFC3339 or plain dates.
func PathTime(data map[string]interface{}, path string) *time.Time {
	s := PathString(data, path)
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// PathSlice returns a repeating group as object maps, skipping non-objects.
func PathSlice(data map[string]interface{}, path string) []map[string]interface{} {
	v, ok := PathValue(data, path)
	if !ok {
		return nil
	}
	arr, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(arr))
	for _, item := range arr {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

// PathMultiSelect splits an ODK space-separated multi-select value.
func PathMultiSelect(data map[string]interface{}, path string) []string {
	s := PathString(data, path)
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}
