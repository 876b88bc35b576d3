package repository

import (
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// mergeExtra overlays schema-less extra attributes onto a marshaled item.
// Typed attributes always win over an extra of the same name.
func mergeExtra(av map[string]types.AttributeValue, extra map[string]any) (map[string]types.AttributeValue, error) {
	for k, v := range extra {
		if _, taken := av[k]; taken {
			continue
		}
		m, err := attributevalue.Marshal(v)
		if err != nil {
			return nil, err
		}
		av[k] = m
	}
	return av, nil
}

// extractExtra decodes the attributes of a stored item that are not part of
// the typed schema, preserving extra-fields passthrough on reads.
func extractExtra(av map[string]types.AttributeValue, known map[string]struct{}) map[string]any {
	var raw map[string]any
	if err := attributevalue.UnmarshalMap(av, &raw); err != nil {
		return nil
	}
	for k := range raw {
		if _, ok := known[k]; ok {
			delete(raw, k)
		}
	}
	if len(raw) == 0 {
		return nil
	}
	return raw
}

func knownSet(keys ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// buildSetExpression turns a merge-update field map into an UpdateExpression
// with placeholder names, so reserved words like "status" stay usable as
// attribute names.
func buildSetExpression(fields map[string]any) (string, map[string]types.AttributeValue, map[string]string, error) {
	if len(fields) == 0 {
		return "", nil, nil, fmt.Errorf("empty update")
	}

	parts := make([]string, 0, len(fields))
	values := make(map[string]types.AttributeValue, len(fields))
	names := make(map[string]string, len(fields))

	i := 0
	for k, v := range fields {
		name := fmt.Sprintf("#f%d", i)
		value := fmt.Sprintf(":v%d", i)
		av, err := attributevalue.Marshal(v)
		if err != nil {
			return "", nil, nil, err
		}
		parts = append(parts, name+" = "+value)
		names[name] = k
		values[value] = av
		i++
	}
	return "SET " + strings.Join(parts, ", "), values, names, nil
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
