package parser

// Merge recursively merges src into dst and returns dst.
//
// Keys present in both maps are merged recursively when both values are
// maps; otherwise the src value replaces the dst value. dst is modified in
// place — clone it first (maps.Clone is shallow, so deep structures need a
// deep copy) if the original must survive.
func Merge(dst, src map[string]any) map[string]any {
	for k, sv := range src {
		dv, exists := dst[k]
		if !exists {
			dst[k] = sv
			continue
		}

		dm, dok := dv.(map[string]any)
		sm, sok := sv.(map[string]any)
		if dok && sok {
			dst[k] = Merge(dm, sm)
		} else {
			dst[k] = sv
		}
	}
	return dst
}
