package subtle

// Permute returns a random ordering of the runes in alphabet.
//
// It runs a Fisher–Yates shuffle, so when src is uniform every one of the
// n! orderings is equally likely. The input is not modified.
//
// Thread safety: Permute itself holds no state; it is as safe for concurrent
// use as the Source passed to it.
func Permute(alphabet string, src Source) string {
	letters := []rune(alphabet)
	for i := len(letters) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		letters[i], letters[j] = letters[j], letters[i]
	}
	return string(letters)
}

// IsPermutation reports whether candidate contains exactly the runes of
// alphabet, each once, in any order. alphabet is assumed to hold no repeats.
func IsPermutation(candidate, alphabet string) bool {
	want := make(map[rune]bool, len(alphabet))
	for _, r := range alphabet {
		want[r] = false
	}

	n := 0
	for _, r := range candidate {
		seen, ok := want[r]
		if !ok || seen {
			return false
		}
		want[r] = true
		n++
	}
	return n == len(want)
}
