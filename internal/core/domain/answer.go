package domain

import "fmt"

// Answer is a cached solver result, keyed by the selector and a digest of the
// input that produced it. Editing an input file changes the digest and
// invalidates the cached entry.
type Answer struct {
	Key       string `json:"key"`
	Day       int    `json:"day"`
	Task      int    `json:"task"`
	InputHash string `json:"inputHash"`
	Result    Result `json:"result"`
}

// AnswerKey builds the cache key for a selector and input digest.
func AnswerKey(sel Selector, inputHash string) string {
	return fmt.Sprintf("%d/%d:%s", sel.Day, sel.Task, inputHash)
}
