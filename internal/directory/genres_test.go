package directory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/fyyur/internal/directory"
)

func TestSplitGenres(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"Jazz", []string{"Jazz"}},
		{"Jazz,Reggae,Swing", []string{"Jazz", "Reggae", "Swing"}},
		{" Rock n Roll , ,Folk ", []string{"Rock n Roll", "Folk"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, directory.SplitGenres(tt.in))
		})
	}
}

func TestJoinGenres(t *testing.T) {
	assert.Equal(t, "Jazz,Folk", directory.JoinGenres([]string{" Jazz", "", "Folk "}))
	assert.Equal(t, "", directory.JoinGenres(nil))
}
