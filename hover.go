package csscomplete

// HoverAt returns the description of the class-like word covering byte
// offset col in line. ok is false when there is no word or no description;
// that is a normal "no hover" result, not an error.
func (c *Catalog) HoverAt(line string, col int) (word, desc string, ok bool) {
	word = WordAt(line, col)
	if word == "" {
		return "", "", false
	}
	desc, ok = c.Describe(word)
	return word, desc, ok
}
