package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skill_sync/models"
	"skill_sync/repository"
)

// setDirectory 替换全局目录为测试夹具，测试结束后清空
func setDirectory(t *testing.T, users []models.User) {
	t.Helper()
	repository.Replace(users)
	t.Cleanup(func() { repository.Replace(nil) })
}

func TestPickTopMatchesUnknownTarget(t *testing.T) {
	setDirectory(t, []models.User{
		{ID: 1, Name: "Dhanush", Skills: map[string]int{"Python": 40}},
	})

	matches := PickTopMatches(999, 3, "")
	assert.Empty(t, matches)
}

func TestPickTopMatchesFocusSkillNotHeld(t *testing.T) {
	setDirectory(t, []models.User{
		{ID: 1, Name: "Dhanush", Skills: map[string]int{"Python": 40}},
		{ID: 2, Name: "Sarah", Skills: map[string]int{"Python": 50}},
	})

	// 目标用户不持有golang：返回空列表而不是错误
	matches := PickTopMatches(1, 3, "golang")
	assert.Empty(t, matches)
}

func TestPickTopMatchesFocusSkillCaseInsensitive(t *testing.T) {
	setDirectory(t, []models.User{
		{ID: 1, Name: "Dhanush", Skills: map[string]int{"Python": 40, "React": 50}},
		{ID: 2, Name: "Sarah", Skills: map[string]int{"Python": 50, "React": 55}},
	})

	matches := PickTopMatches(1, 3, "PYTHON")
	require.Len(t, matches, 1)
	require.Len(t, matches[0].MatchedSkills, 1)
	assert.Equal(t, "Python", matches[0].MatchedSkills[0].Name)
}

func TestPickTopMatchesDiscardsNonOverlapping(t *testing.T) {
	setDirectory(t, []models.User{
		{ID: 1, Name: "Dhanush", Skills: map[string]int{"Python": 40}, Interests: []string{"Hackathons"}},
		// 只有共同兴趣、没有共同技能的候选人会被淘汰
		{ID: 2, Name: "Jason", Skills: map[string]int{"Figma": 60}, Interests: []string{"Hackathons"}},
		{ID: 3, Name: "Sarah", Skills: map[string]int{"Python": 50}},
	})

	matches := PickTopMatches(1, 3, "")
	require.Len(t, matches, 1)
	assert.Equal(t, 3, matches[0].ID)
}

func TestPickTopMatchesSortedAndTruncated(t *testing.T) {
	setDirectory(t, []models.User{
		{ID: 1, Name: "Dhanush", Skills: map[string]int{"Python": 40, "React": 50}},
		{ID: 2, Name: "A", Skills: map[string]int{"Python": 50}},
		{ID: 3, Name: "B", Skills: map[string]int{"Python": 90, "React": 95}},
		{ID: 4, Name: "C", Skills: map[string]int{"React": 55}},
		{ID: 5, Name: "D", Skills: map[string]int{"Python": 45, "React": 52}},
	})

	matches := PickTopMatches(1, 3, "")
	require.Len(t, matches, 3)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
}

func TestPickTopMatchesTieKeepsDirectoryOrder(t *testing.T) {
	// 两个候选人得分完全相同：输出顺序必须等于目录顺序，不得按ID重排
	setDirectory(t, []models.User{
		{ID: 1, Name: "Dhanush", Skills: map[string]int{"Python": 40}},
		{ID: 7, Name: "Later", Skills: map[string]int{"Python": 40}},
		{ID: 2, Name: "Earlier", Skills: map[string]int{"Python": 40}},
	})

	matches := PickTopMatches(1, 3, "")
	require.Len(t, matches, 2)
	assert.Equal(t, matches[0].Score, matches[1].Score)
	assert.Equal(t, 7, matches[0].ID)
	assert.Equal(t, 2, matches[1].ID)
}

func TestPickTopMatchesDefaultTopN(t *testing.T) {
	users := []models.User{
		{ID: 1, Name: "Dhanush", Skills: map[string]int{"Python": 40}},
	}
	for id := 2; id <= 8; id++ {
		users = append(users, models.User{
			ID: id, Name: "X", Skills: map[string]int{"Python": 40 + id},
		})
	}
	setDirectory(t, users)

	// topN <= 0 时退回默认值3
	matches := PickTopMatches(1, 0, "")
	assert.Len(t, matches, DefaultTopN)
}

func TestPickTopMatchesScenarioMentor(t *testing.T) {
	setDirectory(t, []models.User{
		{ID: 1, Name: "Dhanush", Skills: map[string]int{"Python": 40}},
		{ID: 2, Name: "Rahul", Skills: map[string]int{"Python": 90}},
	})

	matches := PickTopMatches(1, 3, "")
	require.Len(t, matches, 1)

	m := matches[0]
	// diff = 50：技能贡献40分 + 加成4.5，对外报告四舍五入为45
	assert.Equal(t, 45, m.Score)
	assert.Equal(t, models.RoleMentor, m.Role)
	assert.Equal(t, "https://youtu.be/OdH2b3vT04E", m.RecommendationLink)
	assert.Equal(t, "Advanced Python", m.RecommendationTitle)
	assert.Equal(t, "Specialist", m.StudyPlan.TargetLevel)
}

func TestPickTopMatchesScoreCappedAt99(t *testing.T) {
	setDirectory(t, []models.User{
		{ID: 1, Name: "Dhanush",
			Skills:    map[string]int{"Python": 40, "React": 30, "Java": 20},
			Interests: []string{"Hackathons", "Open Source"}},
		{ID: 2, Name: "Boss",
			Skills:    map[string]int{"Python": 90, "React": 85, "Java": 80},
			Interests: []string{"Hackathons", "Open Source"}},
	})

	matches := PickTopMatches(1, 3, "")
	require.Len(t, matches, 1)
	// 原始得分 40*3 + 10*2 + 4.25 = 144.25，对外封顶99
	assert.Equal(t, 99, matches[0].Score)
}
