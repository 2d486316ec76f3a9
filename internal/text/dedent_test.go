package text_test

import (
	"testing"

	"github.com/initiative-sh/initiative/internal/text"
	"github.com/stretchr/testify/assert"
)

func TestDedent(t *testing.T) {
	tests := []struct {
		name string
		give string
		want string
	}{
		{name: "Empty", give: "", want: ""},
		{name: "SingleLine", give: "\tfoo", want: "foo"},
		{
			name: "CommonIndent",
			give: "\n\t\tfoo\n\t\t  bar\n\t\tbaz\n\t",
			want: "foo\n  bar\nbaz",
		},
		{
			name: "UnindentedLineKept",
			give: "\n\t\tfoo\nbar\n\t",
			want: "foo\nbar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, text.Dedent(tt.give))
		})
	}
}
