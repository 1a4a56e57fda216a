package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardforge/cardforge/internal/domain"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []domain.Card
	}{
		{
			name: "colon separator",
			text: "Term: Definition",
			want: []domain.Card{{Question: "Term", Answer: "Definition"}},
		},
		{
			name: "dash separator with bullet",
			text: "- A - B",
			want: []domain.Card{{Question: "A", Answer: "B"}},
		},
		{
			name: "star bullet",
			text: "* Mitochondria: The powerhouse of the cell",
			want: []domain.Card{{Question: "Mitochondria", Answer: "The powerhouse of the cell"}},
		},
		{
			name: "no separator",
			text: "no separator here",
			want: nil,
		},
		{
			name: "first colon wins",
			text: "Go: a language: really",
			want: []domain.Card{{Question: "Go", Answer: "a language: really"}},
		},
		{
			name: "first dash separator wins",
			text: "A - B - C",
			want: []domain.Card{{Question: "A", Answer: "B - C"}},
		},
		{
			name: "empty answer dropped",
			text: "Term:",
			want: nil,
		},
		{
			name: "empty question dropped",
			text: ": Definition",
			want: nil,
		},
		{
			name: "blank lines skipped",
			text: "\n\nTerm: Definition\n\n",
			want: []domain.Card{{Question: "Term", Answer: "Definition"}},
		},
		{
			name: "carriage returns trimmed",
			text: "Term: Definition\r\nOther: Thing",
			want: []domain.Card{
				{Question: "Term", Answer: "Definition"},
				{Question: "Other", Answer: "Thing"},
			},
		},
		{
			name: "mixed lines preserve order",
			text: "One: 1\nnot a card\n- Two: 2\nThree - 3",
			want: []domain.Card{
				{Question: "One", Answer: "1"},
				{Question: "Two", Answer: "2"},
				{Question: "Three", Answer: "3"},
			},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Parse(tc.text))
		})
	}
}

// Every card Parse returns must be complete: non-empty trimmed question and
// answer, whatever the input looks like.
func TestParseOnlyReturnsCompleteCards(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"::",
		" - ",
		"- : ",
		"-:",
		"* - ",
		"a:b\n:\n- \n*\n  :  \nx - y",
		strings.Repeat(":", 100),
		"\x00:\x00",
	}

	for _, input := range inputs {
		for _, card := range Parse(input) {
			assert.True(t, card.Complete(), "input %q produced incomplete card %+v", input, card)
			assert.Equal(t, strings.TrimSpace(card.Question), card.Question)
			assert.Equal(t, strings.TrimSpace(card.Answer), card.Answer)
		}
	}
}
