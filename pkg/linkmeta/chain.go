package linkmeta

import "strings"

// Candidate 候选值取值函数，返回空串表示无结果
type Candidate func() string

// First evaluates candidates in order and returns the first non-empty
// trimmed value; if every candidate is empty the fallback is returned.
// Candidates after the first hit are never evaluated.
// First 按声明顺序求值候选项，返回首个去除空白后非空的值；
// 全部为空时返回 fallback。命中之后的候选项不会被求值。
func First(fallback string, candidates ...Candidate) string {
	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}
		if v := strings.TrimSpace(candidate()); v != "" {
			return v
		}
	}
	return fallback
}
