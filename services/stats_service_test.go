package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skill_sync/models"
)

func TestBuildUserStats(t *testing.T) {
	user := models.User{
		ID:   1,
		Name: "Dhanush",
		Dept: "ECE",
		Skills: map[string]int{
			"Python": 85,
			"React":  55,
			"Java":   30,
		},
		Interests: []string{"Hackathons"},
	}

	stats := BuildUserStats(user)

	assert.Equal(t, 1, stats.ID)
	assert.Equal(t, "ECE", stats.Dept)
	assert.Equal(t, 3, stats.TotalSkills)
	// 平均 (85+55+30)/3 = 56.67 四舍五入为57，处于Learner区间
	assert.Equal(t, 57, stats.AvgProficiency)
	assert.Equal(t, models.LevelLearner, stats.LevelLabel)
	assert.Equal(t, 1, stats.GuruBadges)

	// 技能按字典序排列
	require.Len(t, stats.Skills, 3)
	assert.Equal(t, models.SkillBadge{Name: "Java", Level: 30, BadgeType: models.BadgeLearner}, stats.Skills[0])
	assert.Equal(t, models.SkillBadge{Name: "Python", Level: 85, BadgeType: models.BadgeGuru}, stats.Skills[1])
	assert.Equal(t, models.SkillBadge{Name: "React", Level: 55, BadgeType: models.BadgeSpecialist}, stats.Skills[2])
}

func TestBuildUserStatsNilInterests(t *testing.T) {
	user := models.User{ID: 2, Name: "Sarah", Skills: map[string]int{"Python": 90}}

	stats := BuildUserStats(user)

	// Interests为nil时序列化成[]而不是null
	assert.NotNil(t, stats.Interests)
	assert.Empty(t, stats.Interests)
	assert.Equal(t, models.LevelScholar, stats.LevelLabel)
}

func TestBadgeThresholds(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{80, models.BadgeGuru},
		{79, models.BadgeSpecialist},
		{50, models.BadgeSpecialist},
		{49, models.BadgeLearner},
		{0, models.BadgeLearner},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, badgeFor(tt.level), "level=%d", tt.level)
	}
}

func TestLevelLabelThresholds(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{70, models.LevelScholar},
		{69.9, models.LevelLearner},
		{40, models.LevelLearner},
		{39.9, models.LevelBeginner},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levelLabelFor(tt.avg), "avg=%v", tt.avg)
	}
}

func TestBuildTeacherStats(t *testing.T) {
	setDirectory(t, []models.User{
		{ID: 1, Name: "A", Skills: map[string]int{"Python": 80}},
		{ID: 2, Name: "B", Skills: map[string]int{"Python": 30, "React": 40}},
		// 没有技能的用户计入总人数但不参与平均值
		{ID: 3, Name: "C", Skills: map[string]int{}},
	})

	stats := BuildTeacherStats(40)

	assert.Equal(t, 3, stats.TotalStudents)
	// (80 + 35) / 2 = 57.5，整体平均向下截断
	assert.Equal(t, 57, stats.AvgClassSkill)
	assert.Equal(t, 1, stats.AtRiskCount)
	require.Len(t, stats.AtRiskList, 1)
	assert.Equal(t, models.AtRiskUser{ID: 2, Name: "B", Avg: 35}, stats.AtRiskList[0])
}

func TestBuildTeacherStatsEmptyDirectory(t *testing.T) {
	setDirectory(t, nil)

	stats := BuildTeacherStats(40)

	assert.Equal(t, 0, stats.TotalStudents)
	assert.Equal(t, 0, stats.AvgClassSkill)
	assert.Equal(t, 0, stats.AtRiskCount)
	assert.NotNil(t, stats.AtRiskList)
}

func TestBuildTeacherStatsThresholdBoundary(t *testing.T) {
	setDirectory(t, []models.User{
		// 平均正好等于阈值不算学习困难
		{ID: 1, Name: "A", Skills: map[string]int{"Python": 40}},
		{ID: 2, Name: "B", Skills: map[string]int{"Python": 39}},
	})

	stats := BuildTeacherStats(40)

	assert.Equal(t, 1, stats.AtRiskCount)
	assert.Equal(t, 2, stats.AtRiskList[0].ID)
}
