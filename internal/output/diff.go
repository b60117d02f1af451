package output

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffResult holds the result of comparing two rendered frames.
type DiffResult struct {
	Left        string  `json:"left"`
	Right       string  `json:"right"`
	LineCount1  int     `json:"lines1"`
	LineCount2  int     `json:"lines2"`
	Identical   bool    `json:"identical"`
	Similarity  float64 `json:"similarity"`
	UnifiedDiff string  `json:"diff,omitempty"`
}

// ComputeDiff compares two texts. The diff is computed line by line so
// patches read like frame rows; similarity is character based.
func ComputeDiff(left, content1, right, content2 string) *DiffResult {
	dmp := diffmatchpatch.New()

	a, b, lines := dmp.DiffLinesToChars(content1, content2)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	dist := dmp.DiffLevenshtein(diffs)
	maxLen := len(content1)
	if len(content2) > maxLen {
		maxLen = len(content2)
	}
	similarity := 1.0
	if maxLen > 0 {
		similarity = 1.0 - (float64(dist) / float64(maxLen))
	}

	result := &DiffResult{
		Left:       left,
		Right:      right,
		LineCount1: len(strings.Split(content1, "\n")),
		LineCount2: len(strings.Split(content2, "\n")),
		Identical:  content1 == content2,
		Similarity: similarity,
	}
	if !result.Identical {
		patches := dmp.PatchMake(content1, diffs)
		result.UnifiedDiff = dmp.PatchToText(patches)
	}
	return result
}
