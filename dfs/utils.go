package dfs

import (
	"cmp"
	"strconv"
	"strings"
)

// reverse returns a new slice holding s back to front.
func reverse[T any](s []T) []T {
	out := make([]T, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// rotate returns a new slice holding s rotated to start at index k.
func rotate[T any](s []T, k int) []T {
	out := make([]T, 0, len(s))
	out = append(out, s[k:]...)

	return append(out, s[:k]...)
}

// minimalRotation implements Booth's algorithm and returns the start index
// of the lexicographically minimal rotation of s in O(n).
func minimalRotation[T cmp.Ordered](s []T) int {
	n := len(s)
	if n == 0 {
		return 0
	}
	doubled := append(append(make([]T, 0, 2*n), s...), s...)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	return k % n
}

// canonical rotates c to its minimal node rotation and returns the
// signature of that sequence and of its reversal.
func canonical(c Cycle) (Cycle, string, string) {
	k := minimalRotation(c.Nodes)
	out := Cycle{Nodes: rotate(c.Nodes, k), Regions: rotate(c.Regions, k)}

	// Reversed, the cycle keeps its first node and walks the rest backwards.
	back := append([]int{out.Nodes[0]}, reverse(out.Nodes[1:])...)

	return out, signature(out.Nodes), signature(back)
}

// signature joins ids with commas.
func signature(ids []int) string {
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(id))
	}

	return sb.String()
}
