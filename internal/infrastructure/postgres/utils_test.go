package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePattern(t *testing.T) {
	cases := []struct {
		term string
		want string
	}{
		{"", "%%"},
		{"alice", "%alice%"},
		{"50%", `%50\%%`},
		{"a_b", `%a\_b%`},
		{`c:\temp`, `%c:\\temp%`},
		{"%_", `%\%\_%`},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, likePattern(c.term), "term %q", c.term)
	}
}
