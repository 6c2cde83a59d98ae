package player

import (
	"encoding/json"
	"fmt"

	"github.com/linguamap/linguamap/internal/domain"
)

// known lesson block types
const (
	TypeDiscovery         = "discovery"
	TypePronunciation     = "pronunciation"
	TypeMultipleChoice    = "multiple-choice"
	TypeSpellingChallenge = "spelling-challenge"
	TypeRecap             = "recap"
)

// BlockKind completion category of a block type
type BlockKind int

const (
	// KindAuto presenting the block satisfies its completion condition
	KindAuto BlockKind = iota
	// KindInteractive completion requires a correctness condition
	KindInteractive
	// KindUnsupported unknown type, completion is a manual proceed
	KindUnsupported
)

// BlockPolicy per-type completion policy returned by Resolve
type BlockPolicy struct {
	Kind          BlockKind
	AutoCompletes bool
}

// Resolve map a block type to its completion policy. Unknown types are
// not an error, they resolve to KindUnsupported.
func Resolve(blockType string) BlockPolicy {
	switch blockType {
	case TypeDiscovery, TypePronunciation, TypeRecap:
		return BlockPolicy{Kind: KindAuto, AutoCompletes: true}
	case TypeMultipleChoice, TypeSpellingChallenge:
		return BlockPolicy{Kind: KindInteractive}
	default:
		return BlockPolicy{Kind: KindUnsupported}
	}
}

type DiscoveryQuestion struct {
	Word   string `json:"word"`
	Answer string `json:"answer"`
}

type DiscoveryContent struct {
	Scenario  string              `json:"scenario"`
	Questions []DiscoveryQuestion `json:"questions"`
}

type PronunciationItem struct {
	Word          string `json:"word"`
	Pronunciation string `json:"pronunciation"`
	Mnemonic      string `json:"mnemonic,omitempty"`
	AudioURL      string `json:"audioUrl,omitempty"`
}

// PronunciationContent ordered word list
type PronunciationContent []PronunciationItem

type MultipleChoiceContent struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

type SpellingQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

type SpellingChallengeContent struct {
	Instructions string             `json:"instructions"`
	Questions    []SpellingQuestion `json:"questions"`
}

type RecapWord struct {
	Word          string `json:"word"`
	Meaning       string `json:"meaning"`
	Pronunciation string `json:"pronunciation"`
	SpellingTips  string `json:"spellingTips,omitempty"`
}

type RecapContent struct {
	Words           []RecapWord `json:"words"`
	ChallengePrompt string      `json:"challengePrompt,omitempty"`
}

// DecodeContent decode a block's content into its typed shape. The shape
// must match the declared type. Content of unsupported types stays opaque
// and is returned as raw JSON.
func DecodeContent(block *domain.LessonBlockModel) (interface{}, error) {
	switch block.Type {
	case TypeDiscovery:
		return decodeAs(block, new(DiscoveryContent))
	case TypePronunciation:
		content := new(PronunciationContent)
		return decodeAs(block, content)
	case TypeMultipleChoice:
		return decodeAs(block, new(MultipleChoiceContent))
	case TypeSpellingChallenge:
		return decodeAs(block, new(SpellingChallengeContent))
	case TypeRecap:
		return decodeAs(block, new(RecapContent))
	default:
		return block.Content, nil
	}
}

func decodeAs(block *domain.LessonBlockModel, dst interface{}) (interface{}, error) {
	if err := json.Unmarshal(block.Content, dst); err != nil {
		return nil, fmt.Errorf("block %s: content does not match type %q: %w", block.ID, block.Type, err)
	}
	return dst, nil
}
