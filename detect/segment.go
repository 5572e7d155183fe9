package detect

// anchors reduces ascending crossing indices to one representative per
// excursion. A crossing becomes an anchor when the gap to the next
// crossing exceeds minDiff samples, or when it is the last crossing
// overall, so each anchor marks the trailing edge of a run. Runs
// separated by gaps of minDiff or less merge into a single anchor.
func anchors(idx []int, minDiff int) []int {
	if len(idx) == 0 {
		return nil
	}

	out := make([]int, 0, len(idx))
	for i, v := range idx {
		if i == len(idx)-1 || idx[i+1]-v > minDiff {
			out = append(out, v)
		}
	}

	return out
}
