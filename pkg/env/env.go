// Package env resolves env(VAR_NAME) references inside configuration
// values, so tokens and other secrets stay out of the config file itself.
package env

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml/ast"
)

// envVarPattern matches env(VAR_NAME) patterns
var envVarPattern = regexp.MustCompile(`env\(([^)]+)\)`)

// SubstituteValues replaces env(VAR_NAME) patterns in YAML value nodes.
// Map keys are left untouched. Unset variables are left unresolved so that
// CheckResolved can report them with the field name later.
func SubstituteValues(node ast.Node) error {
	switch n := node.(type) {
	case nil:
		return nil
	case *ast.DocumentNode:
		return SubstituteValues(n.Body)
	case *ast.MappingNode:
		for _, value := range n.Values {
			if err := SubstituteValues(value); err != nil {
				return err
			}
		}
	case *ast.MappingValueNode:
		return SubstituteValues(n.Value)
	case *ast.SequenceNode:
		for _, value := range n.Values {
			if err := SubstituteValues(value); err != nil {
				return err
			}
		}
	case *ast.StringNode:
		replaced, err := replaceEnvVars(n.Value)
		if err != nil {
			return err
		}
		n.Value = replaced
	}
	return nil
}

// CheckResolved verifies that a config value contains no unresolved env(...)
// references, producing errors like:
// "release.github.token: environment variable GH_TOKEN is not set".
func CheckResolved(value, field string) error {
	matches := envVarPattern.FindAllStringSubmatch(value, -1)
	for _, m := range matches {
		return fmt.Errorf("%s: environment variable %s is not set", field, m[1])
	}
	return nil
}

func replaceEnvVars(input string) (string, error) {
	var err error
	result := envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		key := strings.TrimSuffix(strings.TrimPrefix(match, "env("), ")")
		value, ok := os.LookupEnv(key)
		if !ok {
			return match
		}
		if strings.ContainsAny(value, "\x00") {
			err = fmt.Errorf("environment variable %s contains disallowed control characters", key)
			return ""
		}
		return value
	})
	if err != nil {
		return "", err
	}
	return result, nil
}
