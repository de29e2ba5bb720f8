// Package matching implements the path patterns used by the engine's
// route table. Patterns are absolute paths whose {name} segments match
// exactly one path segment, e.g. "/api/v1/admin/nodes/{id}/kernels".
package matching

import "strings"

// Match reports whether path matches pattern and, when it does, returns
// the values captured by the pattern's {name} segments. Matching is
// anchored: the full path must be covered. Query strings and fragments
// must be stripped by the caller.
func Match(pattern, path string) (map[string]string, bool) {
	patternParts := split(pattern)
	pathParts := split(path)

	if len(patternParts) != len(pathParts) {
		return nil, false
	}

	var params map[string]string
	for i, part := range patternParts {
		if name, ok := paramName(part); ok {
			if params == nil {
				params = make(map[string]string)
			}
			params[name] = pathParts[i]
			continue
		}
		if part != pathParts[i] {
			return nil, false
		}
	}

	return params, true
}

// Params returns the values captured by pattern's {name} segments in
// declaration order, or nil when the path does not match.
func Params(pattern, path string) []string {
	patternParts := split(pattern)
	pathParts := split(path)

	if len(patternParts) != len(pathParts) {
		return nil
	}

	var values []string
	for i, part := range patternParts {
		if _, ok := paramName(part); ok {
			values = append(values, pathParts[i])
			continue
		}
		if part != pathParts[i] {
			return nil
		}
	}

	return values
}

func split(p string) []string {
	return strings.Split(strings.Trim(p, "/"), "/")
}

func paramName(segment string) (string, bool) {
	if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") && len(segment) > 2 {
		return segment[1 : len(segment)-1], true
	}
	return "", false
}
