package application

import (
	"testing"

	"github.com/happycastle114/oh-my-openclaw-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectKeywordsReturnsAllMatchesInDetectorOrder(t *testing.T) {
	t.Parallel()

	got := DetectKeywords("search and analyze the auth module then implement a fix")

	assert.Equal(t, []KeywordType{KeywordSearch, KeywordAnalyze, KeywordCoding}, KeywordTypes(got))
}

func TestDetectKeywordsNoMatch(t *testing.T) {
	t.Parallel()

	assert.Empty(t, DetectKeywords("hello world"))
	assert.Empty(t, DetectKeywords(""))
}

func TestDetectKeywordsIgnoresCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		text string
	}{
		{name: "inline code", text: "please run `search` for me"},
		{name: "fenced block", text: "look at this:\n```go\n// search and implement\nfunc plan() {}\n```\nthanks"},
		{name: "fenced block with language and inline", text: "```\nulw\n``` and `analyze`"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, DetectKeywords(tc.text))
		})
	}
}

func TestDetectKeywordsMultilingual(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		text string
		want KeywordType
	}{
		{name: "korean search", text: "인증 모듈을 검색해줘", want: KeywordSearch},
		{name: "japanese analyze", text: "このログを解析してください", want: KeywordAnalyze},
		{name: "chinese plan", text: "帮我制定一个计划", want: KeywordPlan},
		{name: "vietnamese coding", text: "hãy triển khai tính năng này", want: KeywordCoding},
		{name: "english ultrawork case-insensitive", text: "ULTRAWORK on the migration", want: KeywordUltrawork},
		{name: "start work", text: "ok, start-work on the plan now", want: KeywordStartWork},
		{name: "korean start work", text: "작업 시작하자", want: KeywordStartWork},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, KeywordTypes(DetectKeywords(tc.text)), tc.want)
		})
	}
}

func TestGuidanceForJoinsMessagesWithBlankLine(t *testing.T) {
	t.Parallel()

	matches := DetectKeywords("search then analyze")
	require.Len(t, matches, 2)

	assert.Equal(t, searchGuidance+"\n\n"+analyzeGuidance, GuidanceFor(matches))
	assert.Empty(t, GuidanceFor(nil))
}

func TestPersonaSwitchForFirstMappedMatchWins(t *testing.T) {
	t.Parallel()

	persona, ok := PersonaSwitchFor(DetectKeywords("make a plan, then ulw"))
	require.True(t, ok)
	assert.Equal(t, domain.PersonaAtlas, persona)

	persona, ok = PersonaSwitchFor(DetectKeywords("plan the refactor"))
	require.True(t, ok)
	assert.Equal(t, domain.PersonaPrometheus, persona)

	_, ok = PersonaSwitchFor(DetectKeywords("search the repo"))
	assert.False(t, ok)
}

func TestStripCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "before  after", StripCode("before ```x\ny``` after"))
	assert.Equal(t, "a  b", StripCode("a `c` b"))
	assert.Equal(t, "unterminated ` tick", StripCode("unterminated ` tick"))
}
