package app

// closestMatch returns the candidate most similar to name, or "" when
// nothing scores at least 0.6. Similarity is the indel ratio: edits
// may only insert or delete, so a substitution costs two, and the
// score is the fraction of characters shared in order.
func closestMatch(name string, candidates []string) string {
	const cutoff = 0.6
	best := ""
	bestScore := cutoff
	for _, candidate := range candidates {
		score := indelRatio(name, candidate)
		if score >= bestScore {
			best = candidate
			bestScore = score
		}
	}
	return best
}

func indelRatio(a, b string) float64 {
	la, lb := len(a), len(b)
	if la+lb == 0 {
		return 1
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1]
			} else {
				del := prev[j] + 1
				ins := curr[j-1] + 1
				if del < ins {
					curr[j] = del
				} else {
					curr[j] = ins
				}
			}
		}
		prev, curr = curr, prev
	}
	distance := prev[lb]
	return float64(la+lb-distance) / float64(la+lb)
}
