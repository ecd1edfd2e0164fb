package release

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSearchTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Sousou no Frieren 2nd Season", "Sousou no Frieren"},
		{"My Hero Academia Season 7", "My Hero Academia"},
		{"Attack on Titan S4", "Attack on Titan"},
		{"Spy x Family Part 2", "Spy x Family"},
		{"Spice and Wolf II", "Spice and Wolf"},
		{"86 Cour 2", "86"},
		{"One Piece", "One Piece"},
		{"Frieren: Beyond Journey's End", "Frieren: Beyond Journey's End"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeSearchTitle(tt.title), tt.title)
	}
}

func TestDetectGroup(t *testing.T) {
	t.Run("known groups get canonical casing", func(t *testing.T) {
		assert.Equal(t, "subsplease", DetectGroup("[SubsPlease] One Piece - 1060 (1080p)"))
		assert.Equal(t, "Erai-raws", DetectGroup("[erai-raws] Frieren - 01 [1080p]"))
		assert.Equal(t, "judas", DetectGroup("[Judas] Attack on Titan - 01.mkv"))
	})

	t.Run("unknown group keeps its casing", func(t *testing.T) {
		assert.Equal(t, "SomeNewGroup", DetectGroup("[SomeNewGroup] Show - 01 (720p)"))
	})

	t.Run("no tag defaults to subsplease", func(t *testing.T) {
		assert.Equal(t, "subsplease", DetectGroup("One Piece - 1060"))
	})
}
