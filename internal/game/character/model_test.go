package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/idlerealm/worldboss/internal/game/character"
)

func TestValidRole(t *testing.T) {
	assert.True(t, character.ValidRole(character.RolePlayer))
	assert.True(t, character.ValidRole(character.RoleAdmin))
	assert.False(t, character.ValidRole(""))
	assert.False(t, character.ValidRole("editor"))
}

func TestParseSkill(t *testing.T) {
	for _, s := range character.AllSkills {
		got, err := character.ParseSkill(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := character.ParseSkill("mining")
	assert.Error(t, err, "skill names are case sensitive")
}

func TestProperty_ParseSkill_RejectsUnknown(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		raw := rapid.StringMatching(`[a-z]{1,12}`).Draw(rt, "raw")
		_, err := character.ParseSkill(raw)
		assert.Error(rt, err)
	})
}

func TestPlayer_Flags(t *testing.T) {
	p := &character.Player{Role: character.RoleAdmin, Health: 0}
	assert.True(t, p.IsAdmin())
	assert.False(t, p.Alive())
	p.Health = 1
	assert.True(t, p.Alive())
}
