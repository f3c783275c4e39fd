package prompt

import (
	"strings"

	"github.com/haruto/threads-studio/internal/types"
)

// variationDirectives describes the single dimension each variation type is
// allowed to change. Kept exhaustive over types.AllVariationTypes.
var variationDirectives = map[types.VariationType]string{
	types.VariationHook:  "冒頭のフック文を別のアプローチに変更",
	types.VariationCTA:   "CTAの表現を変更（より強い誘導 or ソフトな誘導）",
	types.VariationEmoji: "絵文字の使い方を変更（増やす or 減らす or 種類を変える）",
	types.VariationTone:  "全体のトーンを変更（よりカジュアル or よりプロフェッショナル）",
}

// BuildVariation assembles the instruction for an A/B variation of an
// existing post: preserve the message, match the original length, and change
// only the named dimension. Unknown variation types fall back to a hook
// variation.
func BuildVariation(originalContent string, variationType types.VariationType) string {
	directive, ok := variationDirectives[variationType]
	if !ok {
		variationType = types.VariationHook
		directive = variationDirectives[types.VariationHook]
	}

	var sb strings.Builder
	sb.WriteString("以下のThreads投稿のA/Bテスト用バリエーションを作成してください。\n\n")

	sb.WriteString("## 元の投稿\n")
	sb.WriteString(originalContent)
	sb.WriteString("\n\n")

	sb.WriteString("## 変更点\n")
	sb.WriteString(directive)
	sb.WriteString("\n\n")

	sb.WriteString("## ルール\n")
	sb.WriteString("1. メッセージの本質は変えない\n")
	sb.WriteString("2. 文字数は元の投稿と同程度に\n")
	sb.WriteString("3. " + string(variationType) + "の部分のみを変更\n\n")

	sb.WriteString("バリエーション投稿のみを出力してください：")

	return sb.String()
}
