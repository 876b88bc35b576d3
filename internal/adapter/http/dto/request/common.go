package request

// extraOf returns the attributes of a decoded payload that are not part of
// the typed schema. Extra attributes ride along to storage unchanged.
func extraOf(all map[string]any, known ...string) map[string]any {
	if len(all) == 0 {
		return nil
	}
	skip := make(map[string]struct{}, len(known))
	for _, k := range known {
		skip[k] = struct{}{}
	}

	var extra map[string]any
	for k, v := range all {
		if _, ok := skip[k]; ok {
			continue
		}
		if extra == nil {
			extra = map[string]any{}
		}
		extra[k] = v
	}
	return extra
}
