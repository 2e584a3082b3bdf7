package kernel

// Ordering is the result of comparing two ValidString values.
// The numeric values match the strings.Compare convention, so an Ordering
// can be obtained directly from a three-way comparison result.
type Ordering int

const (
	// Less indicates the receiver sorts before the argument.
	Less Ordering = iota - 1
	// Equal indicates both values are identical.
	Equal
	// Greater indicates the receiver sorts after the argument.
	Greater
)

// getOrderingStrings returns a map of Ordering values to their string representations.
func getOrderingStrings() map[Ordering]string {
	return map[Ordering]string{
		Less:    "Less",
		Equal:   "Equal",
		Greater: "Greater",
	}
}

// String returns the human-readable name of the ordering.
// Values outside the defined constants render as "Unknown".
func (o Ordering) String() string {
	if str, ok := getOrderingStrings()[o]; ok {
		return str
	}
	return "Unknown"
}
