package prompt

import (
	"fmt"
	"strings"

	"github.com/haruto/threads-studio/internal/types"
)

// unknownValue is the placeholder embedded for interaction fields that were
// never captured.
const unknownValue = "不明"

// BuildAnalysis assembles the instruction for a batch analysis over research
// posts. Each post's content, counts and engagement rate are embedded with
// the unknown placeholder for missing numerics, and the model is asked for
// JSON with patterns, successFactors and recommendations arrays.
func BuildAnalysis(posts []types.ResearchPost) string {
	var sb strings.Builder

	sb.WriteString("以下のThreads投稿を分析し、共通するパターンと成功要因を特定してください。\n\n")

	sb.WriteString("## 投稿データ\n")
	for i, p := range posts {
		fmt.Fprintf(&sb, "\n### 投稿%d\n", i+1)
		sb.WriteString("内容: " + p.Content + "\n")
		sb.WriteString("いいね: " + formatCount(p.Likes) + "\n")
		sb.WriteString("コメント: " + formatCount(p.Comments) + "\n")
		sb.WriteString("エンゲージメント率: " + formatRate(p.EngagementRate) + "%\n")
	}
	sb.WriteString("\n")

	sb.WriteString("## 分析観点\n")
	sb.WriteString("1. 共通するフック文のパターン\n")
	sb.WriteString("2. 構成・フォーマットの特徴\n")
	sb.WriteString("3. CTAの種類と効果\n")
	sb.WriteString("4. 絵文字・改行の使い方\n")
	sb.WriteString("5. エンゲージメントが高い投稿の特徴\n\n")

	sb.WriteString("JSON形式で出力してください：\n")
	sb.WriteString("{\n")
	sb.WriteString("  \"patterns\": [\"パターン1\", \"パターン2\", ...],\n")
	sb.WriteString("  \"successFactors\": [\"要因1\", \"要因2\", ...],\n")
	sb.WriteString("  \"recommendations\": [\"推奨1\", \"推奨2\", ...]\n")
	sb.WriteString("}")

	return sb.String()
}

func formatCount(n *int) string {
	if n == nil {
		return unknownValue
	}
	return fmt.Sprintf("%d", *n)
}

func formatRate(r *float64) string {
	if r == nil {
		return unknownValue
	}
	return fmt.Sprintf("%.2f", *r)
}
