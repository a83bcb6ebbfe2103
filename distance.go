// Copyright (c) 2026 Anselm Long. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package autocorrect

// DamerauLevenshtein calculates the distance between two strings as the
// minimum number of single-character insertions, deletions, substitutions
// and adjacent transpositions needed to transform str1 into str2. Returns -1
// if the distance is greater than maxDist.
//
// The calculation operates on unicode code points, not bytes: two strings
// with equal rune sequences have distance 0.
func DamerauLevenshtein(str1, str2 string, maxDist int) int {
	if maxDist < 0 {
		return -1
	}

	r1 := []rune(str1)
	r2 := []rune(str2)
	len1 := len(r1)
	len2 := len(r2)

	// Transforming from or to an empty string is all insertions or all
	// deletions
	if len1 == 0 {
		return boundedDistance(len2, maxDist)
	}
	if len2 == 0 {
		return boundedDistance(len1, maxDist)
	}

	// Two strings whose lengths differ by more than maxDist can never be
	// within bound, so skip building the matrix
	if abs(len1-len2) > maxDist {
		return -1
	}

	matrix := make([][]int, len1+1)
	for i := range matrix {
		matrix[i] = make([]int, len2+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len2; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len1; i++ {
		rowMin := len1 + len2

		for j := 1; j <= len2; j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}

			dist := min(matrix[i-1][j]+1,
				min(matrix[i][j-1]+1, matrix[i-1][j-1]+cost))

			// Adjacent transposition, read two rows and columns back
			if i > 1 && j > 1 && r1[i-1] == r2[j-2] && r1[i-2] == r2[j-1] {
				dist = min(dist, matrix[i-2][j-2]+cost)
			}

			matrix[i][j] = dist
			if dist < rowMin {
				rowMin = dist
			}
		}

		// Once every value in a row exceeds maxDist, no later row can come
		// back within bound
		if rowMin > maxDist {
			return -1
		}
	}

	return boundedDistance(matrix[len1][len2], maxDist)
}

func boundedDistance(dist, maxDist int) int {
	if dist > maxDist {
		return -1
	}
	return dist
}
