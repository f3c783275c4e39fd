package tone

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haruto/threads-studio/internal/types"
)

func baseSettings() types.ToneSettings {
	return types.DefaultToneSettings()
}

func instructionWithPrefix(t *testing.T, instructions []string, prefix string) string {
	t.Helper()
	for _, in := range instructions {
		if strings.HasPrefix(in, prefix) {
			return in
		}
	}
	t.Fatalf("no instruction with prefix %q in %v", prefix, instructions)
	return ""
}

func TestCompile_PolitenessBands(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "タメ口"},
		{29, "タメ口"},
		{30, "丁寧語"},
		{69, "丁寧語"},
		{70, "でございます"},
		{100, "でございます"},
	}

	for _, tt := range tests {
		settings := baseSettings()
		settings.PolitenessLevel = tt.level

		directive := instructionWithPrefix(t, Compile(settings), "・敬語:")
		assert.Contains(t, directive, tt.want, "politeness %d", tt.level)
	}
}

func TestCompile_CasualNeverFormal(t *testing.T) {
	for _, level := range []int{0, 10, 29} {
		settings := baseSettings()
		settings.PolitenessLevel = level

		directive := instructionWithPrefix(t, Compile(settings), "・敬語:")
		assert.Contains(t, directive, "タメ口")
		assert.NotContains(t, directive, "でございます")
	}
}

func TestCompile_EmojiBands(t *testing.T) {
	tests := []struct {
		usage int
		want  string
	}{
		{0, "使用しない"},
		{19, "使用しない"},
		{20, "控えめに（1-2個程度）"},
		{49, "控えめに（1-2個程度）"},
		{50, "適度に使用（3-5個程度）"},
		{79, "適度に使用（3-5個程度）"},
		{80, "多めに使用（5個以上）"},
		{100, "多めに使用（5個以上）"},
	}

	for _, tt := range tests {
		settings := baseSettings()
		settings.EmojiUsage = tt.usage

		directive := instructionWithPrefix(t, Compile(settings), "・絵文字:")
		assert.Contains(t, directive, tt.want, "emoji usage %d", tt.usage)
	}
}

func TestCompile_LineBreakBands(t *testing.T) {
	tests := []struct {
		freq int
		want string
	}{
		{0, "少なめ（2-3文ごと）"},
		{29, "少なめ（2-3文ごと）"},
		{30, "普通（1-2文ごと）"},
		{69, "普通（1-2文ごと）"},
		{70, "多め（ほぼ毎文）"},
		{100, "多め（ほぼ毎文）"},
	}

	for _, tt := range tests {
		settings := baseSettings()
		settings.LineBreakFrequency = tt.freq

		directive := instructionWithPrefix(t, Compile(settings), "・改行:")
		assert.Contains(t, directive, tt.want, "line break frequency %d", tt.freq)
	}
}

func TestCompile_CustomFirstPersonOverride(t *testing.T) {
	settings := baseSettings()
	settings.FirstPerson = types.FirstPersonCustom
	settings.CustomFirstPerson = "ボク"

	directive := instructionWithPrefix(t, Compile(settings), "・一人称:")
	assert.Equal(t, "・一人称: 「ボク」を使用", directive)
}

func TestCompile_CustomFirstPersonEmptyFallsBack(t *testing.T) {
	for _, custom := range []string{"", "   "} {
		settings := baseSettings()
		settings.FirstPerson = types.FirstPersonCustom
		settings.CustomFirstPerson = custom

		directive := instructionWithPrefix(t, Compile(settings), "・一人称:")
		assert.Equal(t, "・一人称: 「私」を使用", directive)
	}
}

func TestCompile_CustomAudienceAddress(t *testing.T) {
	settings := baseSettings()
	settings.AudienceAddress = types.AddressCustom
	settings.CustomAudienceAddress = "読者さん"

	directive := instructionWithPrefix(t, Compile(settings), "・読者の呼び方:")
	assert.Equal(t, "・読者の呼び方: 「読者さん」を使用", directive)

	settings.CustomAudienceAddress = ""
	directive = instructionWithPrefix(t, Compile(settings), "・読者の呼び方:")
	assert.Equal(t, "・読者の呼び方: 「あなた」を使用", directive)
}

func TestCompile_CustomPhrasesAndNGWords(t *testing.T) {
	settings := baseSettings()
	settings.CustomPhrases = []string{"ぶっちゃけ", "結論から言うと"}
	settings.NGWords = []string{"絶対", "簡単"}

	instructions := Compile(settings)
	assert.Contains(t, instructions, "・よく使うフレーズ: ぶっちゃけ、結論から言うと")
	assert.Contains(t, instructions, "・使用禁止ワード: 絶対、簡単")
}

func TestCompile_EmptyListsEmitNothing(t *testing.T) {
	instructions := Compile(baseSettings())

	for _, in := range instructions {
		assert.False(t, strings.HasPrefix(in, "・よく使うフレーズ"))
		assert.False(t, strings.HasPrefix(in, "・使用禁止ワード"))
	}
}

func TestCompile_OrderIsDeterministic(t *testing.T) {
	settings := baseSettings()
	settings.CustomPhrases = []string{"まずは"}
	settings.NGWords = []string{"楽して"}

	first := Compile(settings)
	second := Compile(settings)
	require.Equal(t, first, second)

	prefixes := []string{
		"・基本トーン:", "・敬語:", "・絵文字:", "・一人称:", "・読者の呼び方:",
		"・語尾:", "・改行:", "・文の長さ:", "・よく使うフレーズ:", "・使用禁止ワード:",
	}
	require.Len(t, first, len(prefixes))
	for i, prefix := range prefixes {
		assert.True(t, strings.HasPrefix(first[i], prefix), "instruction %d should start with %q, got %q", i, prefix, first[i])
	}
}

func TestCompile_UnknownEnumsFallBack(t *testing.T) {
	settings := baseSettings()
	settings.BaseStyle = types.BaseStyle("sarcastic")
	settings.SentenceEnding = types.SentenceEnding("mystery")

	instructions := Compile(settings)
	assert.Contains(t, instructionWithPrefix(t, instructions, "・基本トーン:"), "フレンドリー")
	assert.Contains(t, instructionWithPrefix(t, instructions, "・語尾:"), "標準的な語尾")
}

// The directive tables must cover every enum value so that adding a new
// style or ending without updating the compiler fails loudly here.
func TestStyleTableExhaustive(t *testing.T) {
	for _, style := range types.AllBaseStyles() {
		_, ok := styleDirectives[style]
		assert.True(t, ok, "missing directive for base style %q", style)
	}
	assert.Len(t, styleDirectives, len(types.AllBaseStyles()))
}

func TestEndingTableExhaustive(t *testing.T) {
	for _, ending := range types.AllSentenceEndings() {
		_, ok := endingDirectives[ending]
		assert.True(t, ok, "missing directive for sentence ending %q", ending)
	}
	assert.Len(t, endingDirectives, len(types.AllSentenceEndings()))
}
