package metadata

import "strings"

type enumValue[T ~string] struct {
	code    T
	name    string
	display string
}

func parse[T ~string](field, value string, values []enumValue[T]) (T, error) {
	key := normalize(value)
	if key == "" {
		return "", &InvalidValueError{Field: field, Valid: displayNames(values)}
	}

	for _, v := range values {
		if key == normalize(string(v.code)) || key == normalize(v.display) || key == normalize(v.name) {
			return v.code, nil
		}
	}

	return "", &InvalidValueError{Field: field, Value: value, Valid: displayNames(values)}
}

func lookup[T ~string](code T, values []enumValue[T]) (enumValue[T], bool) {
	for _, v := range values {
		if v.code == code {
			return v, true
		}
	}
	return enumValue[T]{}, false
}

func codes[T ~string](values []enumValue[T]) []T {
	out := make([]T, 0, len(values))
	for _, v := range values {
		out = append(out, v.code)
	}
	return out
}

func displayNames[T ~string](values []enumValue[T]) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.display)
	}
	return out
}

// normalize trims and case-folds. Inner spaces, underscores and hyphens are
// significant, so "In Use", "IN_USE" and "InUse" match but "i-n u_se" does not.
func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func joinValues(values []string) string {
	return strings.Join(values, ", ")
}
