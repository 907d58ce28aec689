package matcher

// SimilarChars counts the characters two strings have in common using
// Oliver's longest-common-substring recursion: take the longest common run
// (earliest in a, then earliest in b on ties), then recurse into the pieces
// left and right of it. Comparison is byte-wise.
func SimilarChars(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	posA, posB, n := longestCommon(a, b)
	if n == 0 {
		return 0
	}
	sum := n
	if posA > 0 && posB > 0 {
		sum += SimilarChars(a[:posA], b[:posB])
	}
	if posA+n < len(a) && posB+n < len(b) {
		sum += SimilarChars(a[posA+n:], b[posB+n:])
	}
	return sum
}

func longestCommon(a, b string) (posA, posB, n int) {
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			k := 0
			for i+k < len(a) && j+k < len(b) && a[i+k] == b[j+k] {
				k++
			}
			if k > n {
				posA, posB, n = i, j, k
			}
		}
	}
	return posA, posB, n
}

// similarityThreshold is the share of the shorter string's length that the
// common character count has to exceed.
const similarityThreshold = 0.6

// Similar reports whether a and b share more than 60% of the shorter string's
// length. Callers are expected to case-fold both sides first.
func Similar(a, b string) bool {
	shorter := min(len(a), len(b))
	return float64(SimilarChars(a, b)) > float64(shorter)*similarityThreshold
}
