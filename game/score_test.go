package game_test

import (
	"fmt"
	"testing"

	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
)

func TestScoreForLines(t *testing.T) {
	tests := []struct {
		lines int
		level int
		want  int
	}{
		{1, 0, 30},
		{2, 0, 150},
		{3, 0, 400},
		{4, 0, 1500},
		{1, 1, 60},
		{2, 1, 300},
		{3, 1, 800},
		{4, 1, 3000},
		{1, 14, 450},
		{4, 14, 22500},
		{0, 0, 0},
		{0, 14, 0},
		{5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("lines=%d,level=%d", tt.lines, tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, game.ScoreForLines(tt.lines, tt.level))
		})
	}
}
