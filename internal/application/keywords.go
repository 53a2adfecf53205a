package application

import (
	"regexp"
	"strings"

	"github.com/happycastle114/oh-my-openclaw-sub000/internal/domain"
)

type KeywordType string

const (
	KeywordUltrawork KeywordType = "ultrawork"
	KeywordPlan      KeywordType = "plan"
	KeywordStartWork KeywordType = "start_work"
	KeywordSearch    KeywordType = "search"
	KeywordAnalyze   KeywordType = "analyze"
	KeywordCoding    KeywordType = "coding"
)

type KeywordMatch struct {
	Type    KeywordType
	Message string
	Persona domain.PersonaID
}

type keywordDetector struct {
	kind    KeywordType
	pattern *regexp.Regexp
	message string
	persona domain.PersonaID
}

var (
	fencedCodePattern = regexp.MustCompile("(?s)```.*?```")
	inlineCodePattern = regexp.MustCompile("`[^`]+`")
)

// Checked in order; every matching detector contributes.
var keywordDetectors = []keywordDetector{
	{
		kind: KeywordUltrawork,
		pattern: regexp.MustCompile(`(?i)\b(?:ultrawork|ulw|ultra[\s-]work)\b` +
			`|울트라\s?워크|ウルトラワーク|超级工作|超級工作|làm việc tối đa`),
		message: ultraworkGuidance,
		persona: domain.PersonaAtlas,
	},
	{
		kind: KeywordPlan,
		pattern: regexp.MustCompile(`(?i)\b(?:plan|planning|roadmap)\b` +
			`|계획|플랜|計画|プラン|计划|計劃|规划|kế hoạch|lập kế hoạch`),
		message: planGuidance,
		persona: domain.PersonaPrometheus,
	},
	{
		kind: KeywordStartWork,
		pattern: regexp.MustCompile(`(?i)\b(?:start[\s_-]work|start\s+working|begin\s+work(?:ing)?|let'?s\s+(?:start|begin))\b` +
			`|작업\s?시작|일\s?시작|作業開始|作業を開始|开始工作|開始工作|bắt đầu làm việc|bắt đầu công việc`),
		message: startWorkGuidance,
		persona: domain.PersonaAtlas,
	},
	{
		kind: KeywordSearch,
		pattern: regexp.MustCompile(`(?i)\b(?:search|find|locate|look\s?up|grep|where\s+is)\b` +
			`|검색|찾아|찾기|検索|探して|探す|搜索|查找|寻找|tìm kiếm|tra cứu`),
		message: searchGuidance,
	},
	{
		kind: KeywordAnalyze,
		pattern: regexp.MustCompile(`(?i)\b(?:analy[sz]e|analysis|investigate|examine|inspect|diagnose)\b` +
			`|분석|조사|解析|分析|調査|调查|phân tích|điều tra`),
		message: analyzeGuidance,
	},
	{
		kind: KeywordCoding,
		pattern: regexp.MustCompile(`(?i)\b(?:implement|implementation|code|coding|refactor|fix|debug|build)\b` +
			`|구현|코딩|수정|実装|コーディング|修正|实现|编写代码|修复|triển khai|viết mã|sửa lỗi`),
		message: codingGuidance,
	},
}

// StripCode removes fenced code blocks and inline code spans so that
// keywords quoted as code are not treated as intent.
func StripCode(text string) string {
	text = fencedCodePattern.ReplaceAllString(text, "")
	return inlineCodePattern.ReplaceAllString(text, "")
}

func DetectKeywords(text string) []KeywordMatch {
	cleaned := StripCode(text)
	if strings.TrimSpace(cleaned) == "" {
		return nil
	}

	var matches []KeywordMatch
	for _, detector := range keywordDetectors {
		if detector.pattern.MatchString(cleaned) {
			matches = append(matches, KeywordMatch{
				Type:    detector.kind,
				Message: detector.message,
				Persona: detector.persona,
			})
		}
	}

	return matches
}

func KeywordTypes(matches []KeywordMatch) []KeywordType {
	types := make([]KeywordType, 0, len(matches))
	for _, match := range matches {
		types = append(types, match.Type)
	}
	return types
}

func GuidanceFor(matches []KeywordMatch) string {
	messages := make([]string, 0, len(matches))
	for _, match := range matches {
		messages = append(messages, match.Message)
	}
	return strings.Join(messages, "\n\n")
}

// PersonaSwitchFor returns the persona of the first match that carries one.
func PersonaSwitchFor(matches []KeywordMatch) (domain.PersonaID, bool) {
	for _, match := range matches {
		if match.Persona != "" {
			return match.Persona, true
		}
	}
	return "", false
}

const ultraworkGuidance = `[ultrawork mode]
Maximum effort is requested for this task.
- Break the work into a todo list before touching code and keep it current.
- Delegate exploration and research to sub-agents in parallel.
- Do not stop until every todo item is completed and verified.`

const planGuidance = `[plan mode]
The user wants a plan before implementation.
- Gather context first; do not edit files yet.
- Produce numbered steps with owners, dependencies and verification for each.
- Call out open questions and risks explicitly.`

const startWorkGuidance = `[start-work mode]
Execution of an agreed plan is starting.
- Load the latest plan and turn each step into a todo item.
- Work through the items in order and mark each one as it completes.
- Report blockers immediately instead of skipping steps.`

const searchGuidance = `[search mode]
Search broadly before answering.
- Launch parallel searches across code, docs and history.
- Prefer exact symbol and path matches; cite file paths with line numbers.
- Say so explicitly when nothing is found.`

const analyzeGuidance = `[analyze mode]
Analyze before acting.
- Read the relevant code paths end to end and state your understanding.
- Separate verified facts from assumptions.
- Identify root causes, not only symptoms.`

const codingGuidance = `[coding mode]
Implementation is requested.
- Follow the conventions already present in the codebase.
- Keep changes minimal and focused; add or update tests alongside.
- Verify the change builds and tests pass before declaring it done.`
