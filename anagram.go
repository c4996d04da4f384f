package dawg

import "fmt"

// Anagrams returns every accepted word of exactly wordLength letters such
// that each non-fixed position is satisfied by consuming one rack letter
// or one blank wildcard, and every fixed position equals its required
// letter without consuming a rack letter. Each rack letter or blank may
// be used at most once per returned word. A word entirely prescribed by
// fixed (wordLength == len(fixed)) is never returned.
//
// blank is the sentinel byte standing in for any letter; pass 0 to use
// DefaultBlank ('?').
//
// Anagrams returns an error only for malformed arguments (a non-positive
// wordLength, or a fixed position outside [0, wordLength)); a call with
// no matches returns a nil error and an empty, non-nil-vs-nil-irrelevant
// slice. There is no distinguished "no results" value.
func (g *Graph) Anagrams(rack []byte, wordLength int, fixed map[int]byte, blank byte) ([]string, error) {
	if wordLength <= 0 {
		return nil, fmt.Errorf("%w: word length must be positive, got %d", ErrInvalidArgument, wordLength)
	}
	for pos := range fixed {
		if pos < 0 || pos >= wordLength {
			return nil, fmt.Errorf("%w: fixed position %d outside [0,%d)", ErrInvalidArgument, pos, wordLength)
		}
	}
	if blank == 0 {
		blank = DefaultBlank
	}

	counts := make(map[byte]int, len(rack)+1)
	for _, l := range rack {
		counts[lowerByte(l)]++
	}

	remainingFixed := make(map[int]byte, len(fixed))
	for pos, letter := range fixed {
		remainingFixed[pos] = lowerByte(letter)
	}
	numFixed := len(remainingFixed)

	var results []string
	prefix := make([]byte, 0, wordLength)

	var search func(node int)
	search = func(node int) {
		p := len(prefix)

		if letter, ok := remainingFixed[p]; ok {
			child, ok := g.nodes[node].edges[letter]
			if !ok {
				return
			}
			delete(remainingFixed, p)
			prefix = append(prefix, letter)

			search(child)

			prefix = prefix[:len(prefix)-1]
			remainingFixed[p] = letter
			return
		}

		if p == wordLength {
			if g.nodes[node].final && len(remainingFixed) == 0 && p > numFixed {
				results = append(results, string(prefix))
			}
			return
		}

		for letter, child := range g.nodes[node].edges {
			switch {
			case counts[letter] > 0:
				counts[letter]--
				prefix = append(prefix, letter)
				search(child)
				prefix = prefix[:len(prefix)-1]
				counts[letter]++
			case counts[blank] > 0:
				counts[blank]--
				prefix = append(prefix, letter)
				search(child)
				prefix = prefix[:len(prefix)-1]
				counts[blank]++
			}
		}
	}

	search(rootIndex)

	return results, nil
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
