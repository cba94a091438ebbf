package phrases

// Alphabet is the subset of cipher.Alphabet needed for filtering.
type Alphabet interface {
	Contains(s string) bool
}

// Filter keeps phrases made only of alphabet letters and spaces.
func Filter(list []string, alphabet Alphabet) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		if p == "" || !alphabet.Contains(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}
