package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadline(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantOK       bool
		wantTitle    string
		wantSubtitle string
	}{
		{
			name:         "heading then paragraph",
			raw:          `[{"type":"heading","content":[{"text":"Hello"}]},{"type":"paragraph","content":[{"text":"World"}]}]`,
			wantOK:       true,
			wantTitle:    "Hello",
			wantSubtitle: "World",
		},
		{
			name:         "skips non text blocks between heading and subtitle",
			raw:          `[{"type":"paragraph","content":[{"text":"intro"}]},{"type":"heading","content":[{"type":"text","text":"Title"}]},{"type":"image","attrs":{"src":"a.png"}},{"type":"heading","content":[{"text":"Second"}]}]`,
			wantOK:       true,
			wantTitle:    "Title",
			wantSubtitle: "Second",
		},
		{
			name:      "heading only",
			raw:       `[{"type":"heading","content":[{"text":"Alone"}]}]`,
			wantOK:    true,
			wantTitle: "Alone",
		},
		{
			name:         "document sent as json string",
			raw:          `"[{\"type\":\"heading\",\"content\":[{\"text\":\"Hello\"}]},{\"type\":\"paragraph\",\"content\":[{\"text\":\"World\"}]}]"`,
			wantOK:       true,
			wantTitle:    "Hello",
			wantSubtitle: "World",
		},
		{
			name:   "no heading",
			raw:    `[{"type":"paragraph","content":[{"text":"just text"}]}]`,
			wantOK: false,
		},
		{
			name:      "single heading object",
			raw:       `{"type":"heading","content":[{"text":"Hello"}]}`,
			wantOK:    true,
			wantTitle: "Hello",
		},
		{
			name:      "root without type is unwrapped",
			raw:       `{"content":[{"type":"heading","content":[{"text":"Bare"}]}]}`,
			wantOK:    true,
			wantTitle: "Bare",
		},
		{
			name:         "doc root with nested marks",
			raw:          `{"type":"doc","content":[{"type":"heading","attrs":{"level":1},"content":[{"type":"text","text":"Go "},{"type":"text","text":"tips"}]},{"type":"paragraph","content":[{"type":"text","text":"part one"}]}]}`,
			wantOK:       true,
			wantTitle:    "Go tips",
			wantSubtitle: "part one",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks, err := Parse([]byte(tt.raw))
			require.NoError(t, err)

			title, subtitle, ok := Headline(blocks)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantTitle, title)
			if tt.wantSubtitle == "" {
				assert.Nil(t, subtitle)
			} else {
				require.NotNil(t, subtitle)
				assert.Equal(t, tt.wantSubtitle, *subtitle)
			}
		})
	}
}

func TestParseRejectsEmpty(t *testing.T) {
	for _, raw := range []string{"", "null", "[]", `""`, `{"type":"doc","content":[]}`} {
		_, err := Parse([]byte(raw))
		assert.ErrorIs(t, err, ErrEmptyDocument, raw)
	}

	_, err := Parse([]byte(`{"type":`))
	assert.Error(t, err)
}
