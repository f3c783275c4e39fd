// Package tone compiles a structured voice profile into the ordered list of
// natural-language directives that steer text generation.
package tone

import (
	"strings"

	"github.com/haruto/threads-studio/internal/types"
)

// Directive tables for the categorical settings. These must stay exhaustive
// over the enum values in types; TestStyleTableExhaustive guards that.
var styleDirectives = map[types.BaseStyle]string{
	types.StyleCasual:       "カジュアルで親しみやすい",
	types.StyleProfessional: "プロフェッショナルで信頼感のある",
	types.StyleFriendly:     "フレンドリーで温かみのある",
	types.StyleEducational:  "教育的で分かりやすい",
	types.StyleProvocative:  "挑発的で議論を呼ぶ",
}

var endingDirectives = map[types.SentenceEnding]string{
	types.EndingStandard:    "標準的な語尾",
	types.EndingSoft:        "柔らかい語尾（〜ですね、〜かも）",
	types.EndingEnergetic:   "エネルギッシュな語尾（〜！、〜だ！）",
	types.EndingQuestioning: "問いかけを多用（〜ですか？、〜と思いませんか？）",
	types.EndingAssertive:   "断定的な語尾（〜です。〜である。）",
}

// Slider band boundaries. Each bound is an inclusive lower limit of the next
// band, so e.g. politeness 30..69 is the polite register.
const (
	politenessPoliteMin = 30
	politenessFormalMin = 70

	emojiSparseMin   = 20
	emojiModerateMin = 50
	emojiHeavyMin    = 80

	lineBreakModerateMin = 30
	lineBreakFrequentMin = 70

	sentenceNormalMin = 30
	sentenceLongMin   = 70
)

// Compile maps a voice profile to generation directives. It is a total
// function: out-of-table enum values fall back to the defaults rather than
// failing, because the result feeds a generation call that is expensive to
// retry. Directive order is fixed and significant.
func Compile(t types.ToneSettings) []string {
	instructions := make([]string, 0, 11)

	style, ok := styleDirectives[t.BaseStyle]
	if !ok {
		style = styleDirectives[types.StyleFriendly]
	}
	instructions = append(instructions, "・基本トーン: "+style)

	switch {
	case t.PolitenessLevel < politenessPoliteMin:
		instructions = append(instructions, "・敬語: タメ口（〜だよ、〜だね、〜じゃん）")
	case t.PolitenessLevel < politenessFormalMin:
		instructions = append(instructions, "・敬語: 丁寧語（〜です、〜ます）")
	default:
		instructions = append(instructions, "・敬語: 敬語（〜でございます、〜させていただきます）")
	}

	switch {
	case t.EmojiUsage < emojiSparseMin:
		instructions = append(instructions, "・絵文字: 使用しない")
	case t.EmojiUsage < emojiModerateMin:
		instructions = append(instructions, "・絵文字: 控えめに（1-2個程度）")
	case t.EmojiUsage < emojiHeavyMin:
		instructions = append(instructions, "・絵文字: 適度に使用（3-5個程度）")
	default:
		instructions = append(instructions, "・絵文字: 多めに使用（5個以上）")
	}

	instructions = append(instructions, "・一人称: 「"+FirstPerson(t)+"」を使用")
	instructions = append(instructions, "・読者の呼び方: 「"+AudienceAddress(t)+"」を使用")

	ending, ok := endingDirectives[t.SentenceEnding]
	if !ok {
		ending = endingDirectives[types.EndingStandard]
	}
	instructions = append(instructions, "・語尾: "+ending)

	switch {
	case t.LineBreakFrequency < lineBreakModerateMin:
		instructions = append(instructions, "・改行: 少なめ（2-3文ごと）")
	case t.LineBreakFrequency < lineBreakFrequentMin:
		instructions = append(instructions, "・改行: 普通（1-2文ごと）")
	default:
		instructions = append(instructions, "・改行: 多め（ほぼ毎文）")
	}

	switch {
	case t.SentenceLength < sentenceNormalMin:
		instructions = append(instructions, "・文の長さ: 短文中心")
	case t.SentenceLength < sentenceLongMin:
		instructions = append(instructions, "・文の長さ: 普通")
	default:
		instructions = append(instructions, "・文の長さ: 長文も交える")
	}

	if len(t.CustomPhrases) > 0 {
		instructions = append(instructions, "・よく使うフレーズ: "+strings.Join(t.CustomPhrases, "、"))
	}

	if len(t.NGWords) > 0 {
		instructions = append(instructions, "・使用禁止ワード: "+strings.Join(t.NGWords, "、"))
	}

	return instructions
}

// Instructions joins the compiled directives one per line, the form the
// prompt assembler embeds.
func Instructions(t types.ToneSettings) string {
	return strings.Join(Compile(t), "\n")
}

// FirstPerson resolves the first-person pronoun, honoring a custom override
// and falling back to 私 when the override is empty or the choice is unset.
func FirstPerson(t types.ToneSettings) string {
	if t.FirstPerson == types.FirstPersonCustom {
		if custom := strings.TrimSpace(t.CustomFirstPerson); custom != "" {
			return custom
		}
		return string(types.FirstPersonWatashi)
	}
	if t.FirstPerson == "" {
		return string(types.FirstPersonWatashi)
	}
	return string(t.FirstPerson)
}

// AudienceAddress resolves how the reader is addressed, with the same
// custom-override and fallback rules as FirstPerson.
func AudienceAddress(t types.ToneSettings) string {
	if t.AudienceAddress == types.AddressCustom {
		if custom := strings.TrimSpace(t.CustomAudienceAddress); custom != "" {
			return custom
		}
		return string(types.AddressAnata)
	}
	if t.AudienceAddress == "" {
		return string(types.AddressAnata)
	}
	return string(t.AudienceAddress)
}
