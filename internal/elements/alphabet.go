package elements

// GroupByInitial buckets elements by the first letter of their name,
// feeding the letter-matching game. Every letter A-Z gets a bucket even
// when empty (J and Q have no elements), so the game board stays complete.
func GroupByInitial(els []Element) map[string][]Element {
	groups := make(map[string][]Element, 26)
	for c := 'A'; c <= 'Z'; c++ {
		groups[string(c)] = []Element{}
	}
	for _, el := range els {
		if el.Name == "" {
			continue
		}
		initial := string(el.Name[0])
		if initial >= "a" && initial <= "z" {
			initial = string(el.Name[0] - 'a' + 'A')
		}
		if _, ok := groups[initial]; ok {
			groups[initial] = append(groups[initial], el)
		}
	}
	return groups
}
