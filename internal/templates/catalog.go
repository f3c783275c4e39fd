// Package templates holds the built-in catalog of post structures. Entries
// are read-only reference data; user posts record the template id they were
// generated from.
package templates

import (
	"time"

	"github.com/haruto/threads-studio/internal/types"
)

// catalogDate stamps the built-in entries so API responses carry stable
// timestamps.
var catalogDate = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

var catalog = []types.PostTemplate{
	{
		ID:      "hook-1",
		Name:    "衝撃フック型",
		Pattern: "hook",
		Structure: `【衝撃の事実】から始める

{{フック文（驚きや興味を引く一文）}}

{{本文（3-5行）}}

{{CTA（行動を促す）}}`,
		Example: `99%の人が知らない事実。

副業で月10万円稼ぐ人の特徴は
「スキルがある」じゃなくて
「行動が早い」なんです。

まずは小さな一歩から。
気になる方はプロフィールへ`,
		CreatedAt: catalogDate,
		UpdatedAt: catalogDate,
	},
	{
		ID:      "story-1",
		Name:    "ストーリー型",
		Pattern: "story",
		Structure: `個人的な体験談を共有

{{導入（過去の状況）}}

{{転機（何が変わったか）}}

{{結果（今の状況）}}

{{学び・メッセージ}}`,
		Example: `3年前、会社員として働きながら
毎日モヤモヤしてました。

でも、ある日「自分の強み」に
気づいてから人生が変わった。

今では好きなことで収入を得て
毎日ワクワクしてます。

自分を信じることが第一歩だった。`,
		CreatedAt: catalogDate,
		UpdatedAt: catalogDate,
	},
	{
		ID:      "list-1",
		Name:    "リスト型（〇選）",
		Pattern: "list",
		Structure: `数字を使ったリスト形式

{{タイトル（〇〇な人の特徴3選など）}}

①{{項目1}}
②{{項目2}}
③{{項目3}}

{{まとめ・CTA}}`,
		Example: `成功する人の朝習慣3選

①起きてすぐスマホを見ない
②朝一番に最重要タスクに取り組む
③前日に翌日の予定を決めている

1つでもできてないなら
明日から試してみて`,
		CreatedAt: catalogDate,
		UpdatedAt: catalogDate,
	},
	{
		ID:      "question-1",
		Name:    "問いかけ型",
		Pattern: "question",
		Structure: `質問から始めて興味を引く

{{問いかけ（読者に考えさせる質問）}}

{{回答・解説}}

{{深堀り・追加情報}}

{{CTA}}`,
		Example: `あなたは「努力」と「継続」
どっちが大事だと思いますか？

正解は「継続」なんです。

努力は燃え尽きるけど
継続は習慣になるから。

毎日1%の成長を続けよう`,
		CreatedAt: catalogDate,
		UpdatedAt: catalogDate,
	},
	{
		ID:      "empathy-1",
		Name:    "共感型",
		Pattern: "empathy",
		Structure: `読者の悩みに共感

{{共感（あるある・悩みの共有）}}

{{原因・理由}}

{{解決策・アドバイス}}

{{励まし・CTA}}`,
		Example: `「何をやっても続かない…」
そう思ったことありませんか？

それ、意志力の問題じゃなくて
「仕組み」の問題かもしれません。

続けるコツは
・ハードルを極限まで下げる
・環境を整える

自分を責めないで、仕組みを変えよう`,
		CreatedAt: catalogDate,
		UpdatedAt: catalogDate,
	},
	{
		ID:      "results-1",
		Name:    "実績型",
		Pattern: "results",
		Structure: `具体的な数字・結果を強調

{{実績（具体的な数字）}}

{{どうやって達成したか}}

{{ポイント・コツ}}

{{CTA}}`,
		Example: `フォロワー0から3ヶ月で1万人達成。

やったことは3つだけ。

・毎日投稿を続けた
・伸びてる人を徹底的に分析
・自分らしさを大切にした

再現性のある方法、
プロフィールで詳しく解説中`,
		CreatedAt: catalogDate,
		UpdatedAt: catalogDate,
	},
	{
		ID:      "contrast-1",
		Name:    "対比型（ビフォーアフター）",
		Pattern: "contrast",
		Structure: `変化を対比して見せる

{{ビフォー（過去の状態）}}

↓

{{アフター（現在の状態）}}

{{何が違いを生んだか}}

{{メッセージ}}`,
		Example: `【1年前の私】
・毎日残業で帰宅は23時
・休日は寝て終わる
・将来が不安で仕方ない

↓

【今の私】
・好きな時間に働く
・家族との時間が増えた
・毎日ワクワクしてる

変われた理由は
「最初の一歩」を踏み出したから。`,
		CreatedAt: catalogDate,
		UpdatedAt: catalogDate,
	},
}

// All returns a copy of the template catalog in fixed display order.
func All() []types.PostTemplate {
	out := make([]types.PostTemplate, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a template. The second return is false when the id is not
// in the catalog.
func ByID(id string) (types.PostTemplate, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return types.PostTemplate{}, false
}

// ByPattern returns every template with the given pattern tag.
func ByPattern(pattern string) []types.PostTemplate {
	var out []types.PostTemplate
	for _, t := range catalog {
		if t.Pattern == pattern {
			out = append(out, t)
		}
	}
	return out
}
