package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skill_sync/models"
)

func TestNormalizeSkill(t *testing.T) {
	user := models.User{
		ID:     1,
		Skills: map[string]int{"Python": 40, "Node.js": 55, "C++": 30},
	}

	tests := []struct {
		name      string
		requested string
		want      string
	}{
		{"小写命中", "python", "Python"},
		{"全大写命中", "PYTHON", "Python"},
		{"原样命中", "Node.js", "Node.js"},
		{"混合大小写", "c++", "C++"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeSkill(user, tt.requested)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeSkillNotFound(t *testing.T) {
	user := models.User{ID: 1, Skills: map[string]int{"Python": 40}}

	_, err := NormalizeSkill(user, "golang")
	assert.ErrorIs(t, err, ErrSkillNotFound)

	// 技能表为空时同样返回未找到
	empty := models.User{ID: 2, Skills: map[string]int{}}
	_, err = NormalizeSkill(empty, "python")
	assert.ErrorIs(t, err, ErrSkillNotFound)
}
