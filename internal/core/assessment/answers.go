package assessment

// ToggleOption flips an option's membership in a multi-choice answer:
// absent options are appended, present ones removed. The list never holds
// duplicates and keeps insertion order.
func ToggleOption(selected []string, option string) []string {
	for i, v := range selected {
		if v == option {
			return append(selected[:i:i], selected[i+1:]...)
		}
	}
	return append(selected, option)
}
