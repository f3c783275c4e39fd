// Package types defines the core domain entities shared across the application.
package types

// BaseStyle is the overall register a voice profile writes in.
type BaseStyle string

// BaseStyle values form a closed set; the tone compiler keeps an exhaustive
// directive table over them.
const (
	StyleCasual       BaseStyle = "casual"
	StyleProfessional BaseStyle = "professional"
	StyleFriendly     BaseStyle = "friendly"
	StyleEducational  BaseStyle = "educational"
	StyleProvocative  BaseStyle = "provocative"
)

// AllBaseStyles returns every defined base style.
// Used by validation and by exhaustiveness checks over directive tables.
func AllBaseStyles() []BaseStyle {
	return []BaseStyle{StyleCasual, StyleProfessional, StyleFriendly, StyleEducational, StyleProvocative}
}

// SentenceEnding selects the sentence-final style of generated text.
type SentenceEnding string

// SentenceEnding values.
const (
	EndingStandard    SentenceEnding = "standard"
	EndingSoft        SentenceEnding = "soft"
	EndingEnergetic   SentenceEnding = "energetic"
	EndingQuestioning SentenceEnding = "questioning"
	EndingAssertive   SentenceEnding = "assertive"
)

// AllSentenceEndings returns every defined sentence ending.
func AllSentenceEndings() []SentenceEnding {
	return []SentenceEnding{EndingStandard, EndingSoft, EndingEnergetic, EndingQuestioning, EndingAssertive}
}

// PronounCustom marks a pronoun selection that carries a free-text override.
const PronounCustom = "custom"

// FirstPerson is the first-person pronoun used in generated posts.
// The non-custom values are the Japanese pronouns the product offers.
type FirstPerson string

// FirstPerson values.
const (
	FirstPersonWatashi     FirstPerson = "私"
	FirstPersonBoku        FirstPerson = "僕"
	FirstPersonOre         FirstPerson = "俺"
	FirstPersonWatashiKana FirstPerson = "わたし"
	FirstPersonCustom      FirstPerson = PronounCustom
)

// AudienceAddress is how generated posts address the reader.
type AudienceAddress string

// AudienceAddress values.
const (
	AddressAnata    AudienceAddress = "あなた"
	AddressMinasan  AudienceAddress = "みなさん"
	AddressKimi     AudienceAddress = "きみ"
	AddressFollower AudienceAddress = "フォロワーさん"
	AddressCustom   AudienceAddress = PronounCustom
)

// ToneSettings is the structured representation of a voice: the categorical
// style choices plus the 0-100 sliders the tone compiler turns into
// natural-language directives.
type ToneSettings struct {
	ID                    string          `json:"id"`
	Name                  string          `json:"name"`
	BaseStyle             BaseStyle       `json:"baseStyle" validate:"oneof=casual professional friendly educational provocative"`
	PolitenessLevel       int             `json:"politenessLevel" validate:"min=0,max=100"`
	EmojiUsage            int             `json:"emojiUsage" validate:"min=0,max=100"`
	SentenceEnding        SentenceEnding  `json:"sentenceEnding" validate:"oneof=standard soft energetic questioning assertive"`
	FirstPerson           FirstPerson     `json:"firstPerson"`
	CustomFirstPerson     string          `json:"customFirstPerson,omitempty"`
	AudienceAddress       AudienceAddress `json:"audienceAddress"`
	CustomAudienceAddress string          `json:"customAudienceAddress,omitempty"`
	LineBreakFrequency    int             `json:"lineBreakFrequency" validate:"min=0,max=100"`
	SentenceLength        int             `json:"sentenceLength" validate:"min=0,max=100"`
	CustomPhrases         []string        `json:"customPhrases"`
	NGWords               []string        `json:"ngWords"`
}

// DefaultToneSettings returns the tone used before a user has configured one.
func DefaultToneSettings() ToneSettings {
	return ToneSettings{
		Name:               "デフォルト",
		BaseStyle:          StyleFriendly,
		PolitenessLevel:    50,
		EmojiUsage:         30,
		SentenceEnding:     EndingStandard,
		FirstPerson:        FirstPersonWatashi,
		AudienceAddress:    AddressAnata,
		LineBreakFrequency: 50,
		SentenceLength:     50,
		CustomPhrases:      []string{},
		NGWords:            []string{},
	}
}
