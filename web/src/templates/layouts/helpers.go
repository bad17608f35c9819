package layouts

// CalculateTitle handles the conditional logic for the document title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - Home"
	}
	return "Home"
}
