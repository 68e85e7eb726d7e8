// Package templates serves the canonical test templates from the
// configured catalog, with the placeholder names swapped for the
// component under test.
package templates

import (
	"fmt"
	"sort"
	"strings"
)

// placeholderNames are the stand-in identifiers used inside the
// template bodies. All of them are replaced with the requested
// component name; each template only contains the ones relevant to
// its kind.
var placeholderNames = []string{
	"ComponentName",
	"useHookName",
	"functionName",
	"apiFunction",
}

// Types returns the available template types, sorted.
func Types(catalog map[string]string) []string {
	types := make([]string, 0, len(catalog))
	for k := range catalog {
		types = append(types, k)
	}
	sort.Strings(types)
	return types
}

// Render returns the template of the given type with placeholders
// substituted. componentName may be empty, in which case the
// placeholders are left for the caller to fill in.
func Render(catalog map[string]string, templateType, componentName string) (string, error) {
	body, ok := catalog[templateType]
	if !ok {
		return "", fmt.Errorf("unknown template type %q; available types: %s",
			templateType, strings.Join(Types(catalog), ", "))
	}

	if componentName != "" {
		for _, placeholder := range placeholderNames {
			body = strings.ReplaceAll(body, placeholder, componentName)
		}
	}

	return body, nil
}
