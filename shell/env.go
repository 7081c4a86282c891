package shell

import (
	"fmt"
	"regexp"
)

var envPlaceholder = regexp.MustCompile(`\$\{env:([^}]+)\}`)

// ExpandEnv substitutes every ${env:NAME} placeholder inside the values
// of vars using lookup. A NAME that lookup cannot resolve is replaced
// with the literal ${NAME} so the unresolved reference stays visible.
func ExpandEnv(vars map[string]string, lookup func(string) (string, bool)) {
	for key, value := range vars {
		vars[key] = envPlaceholder.ReplaceAllStringFunc(value, func(match string) string {
			name := envPlaceholder.FindStringSubmatch(match)[1]
			if resolved, ok := lookup(name); ok {
				return resolved
			}
			return fmt.Sprintf("${%s}", name)
		})
	}
}
