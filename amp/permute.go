package amp

import "github.com/jcorbin/gointcode"

// Permutations returns every ordering of words, in the order generated by
// Heap's algorithm, starting with words itself. Each ordering is a fresh
// slice.
func Permutations(words []intcode.Word) [][]intcode.Word {
	perm := append([]intcode.Word(nil), words...)
	perms := [][]intcode.Word{append([]intcode.Word(nil), perm...)}

	// c is the stack state of the recursive form, unrolled
	c := make([]int, len(perm))
	for i := 1; i < len(perm); {
		if c[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[c[i]], perm[i] = perm[i], perm[c[i]]
			}
			perms = append(perms, append([]intcode.Word(nil), perm...))
			c[i]++
			i = 1
		} else {
			c[i] = 0
			i++
		}
	}
	return perms
}
