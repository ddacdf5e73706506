package forms

// Errors collects validation failures keyed by form field. Checks append to
// it independently; a field can carry several messages and cross-field
// failures coexist with field-level ones.
type Errors map[string][]string

// Add appends a message to the given field's error list.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Has reports whether the field has at least one error.
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// Empty reports whether no check failed.
func (e Errors) Empty() bool {
	return len(e) == 0
}
