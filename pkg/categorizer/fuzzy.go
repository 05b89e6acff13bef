package categorizer

// similarity is a normalized Levenshtein ratio in [0, 1]. The pattern is
// also slid over the description word-by-word so a short pattern can
// match inside a long bank descriptor.
func similarity(pattern, description string) float64 {
	if pattern == "" || description == "" {
		return 0
	}

	best := ratio(pattern, description)

	for _, word := range splitWords(description) {
		if r := ratio(pattern, word); r > best {
			best = r
		}
	}

	return best
}

func ratio(a, b string) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}

	if longest == 0 {
		return 1
	}

	return 1 - float64(levenshtein(a, b))/float64(longest)
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	prev := make([]int, len(rb)+1)
	current := make([]int, len(rb)+1)

	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		current[0] = i

		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			current[j] = min3(
				current[j-1]+1,
				prev[j]+1,
				prev[j-1]+cost,
			)
		}

		prev, current = current, prev
	}

	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func splitWords(s string) []string {
	var words []string
	start := -1

	for i, r := range s {
		isSep := r == ' ' || r == '*' || r == '-' || r == '/'

		if isSep {
			if start >= 0 {
				words = append(words, s[start:i])
				start = -1
			}
			continue
		}

		if start < 0 {
			start = i
		}
	}

	if start >= 0 {
		words = append(words, s[start:])
	}

	return words
}
