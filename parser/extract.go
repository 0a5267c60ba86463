package parser

// Extract walks a decoded nested structure along the given path and returns
// the element it lands on, or nil if any step misses.
//
// Each path element indexes the current level: a string key for
// map[string]any levels, an int index for []any levels. An out-of-range
// index, a missing key, a mismatched key type, or a level that is neither a
// map nor a slice all yield nil — quietly. That is a design choice: this
// exists for probing outside payloads where "not there" is an ordinary
// answer, not an error.
//
//	payload, _ := parser.DecodeJSON[map[string]any](body)
//	name := parser.Extract(payload, "user", "addresses", 0, "city")
func Extract(obj any, path ...any) any {
	for _, step := range path {
		switch cur := obj.(type) {
		case []any:
			i, ok := step.(int)
			if !ok || i < 0 || i >= len(cur) {
				return nil
			}
			obj = cur[i]

		case map[string]any:
			k, ok := step.(string)
			if !ok {
				return nil
			}
			v, ok := cur[k]
			if !ok {
				return nil
			}
			obj = v

		default:
			// Scalar or unknown container mid-path; nothing to descend into.
			return nil
		}
	}

	return obj
}
