// Package prompt assembles the instruction texts sent to the generation
// backend. The section order and label text are an external contract:
// changing them changes generation behavior, so the builders here are pure
// and deterministic and are pinned by tests.
package prompt

import (
	"fmt"
	"strings"

	"github.com/haruto/threads-studio/internal/tone"
	"github.com/haruto/threads-studio/internal/types"
)

// GenerationSystem is the system instruction paired with every generation
// request.
const GenerationSystem = "あなたはSNSマーケティングの専門家です。バズるThreads投稿を作成してください。"

// BuildGeneration assembles the user instruction for a post generation call:
// role framing, user context, compiled tone directives, the template
// skeleton, the numbered reference block (omitted entirely when there are no
// references), and the fixed closing rules.
func BuildGeneration(profile types.UserProfile, templateStructure string, referenceTexts []string) string {
	var sb strings.Builder

	sb.WriteString("あなたはThreads投稿のプロフェッショナルなコピーライターです。\n")
	sb.WriteString("以下の条件に従って、バズりやすいThreads投稿を生成してください。\n\n")

	sb.WriteString("## ユーザー情報\n")
	sb.WriteString("- ジャンル: " + profile.Genre + "\n")
	sb.WriteString("- ターゲット層: " + profile.TargetAudience + "\n")
	sb.WriteString("- バックエンド商品: " + profile.BackendProduct + "\n\n")

	sb.WriteString("## 口調設定\n")
	sb.WriteString(tone.Instructions(profile.ToneSettings))
	sb.WriteString("\n\n")

	sb.WriteString("## テンプレート構造\n")
	sb.WriteString(templateStructure)
	sb.WriteString("\n\n")

	if len(referenceTexts) > 0 {
		sb.WriteString("## 参考投稿（これらの要素を参考にしてください）\n")
		for i, text := range referenceTexts {
			if i > 0 {
				sb.WriteString("\n\n")
			}
			fmt.Fprintf(&sb, "参考%d:\n%s", i+1, text)
		}
		sb.WriteString("\n\n")
	}

	sb.WriteString("## 生成ルール\n")
	sb.WriteString("1. 1投稿は500文字以内\n")
	sb.WriteString("2. 読者の興味を引く冒頭にする\n")
	sb.WriteString("3. 改行を適切に使って読みやすくする\n")
	sb.WriteString("4. 指定された口調を厳守する\n")
	sb.WriteString("5. CTAは自然な形で入れる\n")
	sb.WriteString("6. ハッシュタグは最後に2-3個\n\n")

	sb.WriteString("投稿本文のみを出力してください（説明不要）：")

	return sb.String()
}
