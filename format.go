package tagid

import "fmt"

// Format renders the ID exactly as fmt renders the wrapped value for the same
// verb, flags, width and precision.
func (id ID[Tag, R]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), id.v)
}

// String returns fmt.Sprint of the wrapped value.
func (id ID[Tag, R]) String() string {
	return fmt.Sprint(id.v)
}
