package services

import (
	"math"

	"skill_sync/models"
	"skill_sync/repository"
)

// 徽章与等级标签阈值
const (
	guruThreshold       = 80
	specialistThreshold = 50
	scholarThreshold    = 70
	learnerThreshold    = 40
)

// BuildUserStats 汇总单个用户的技能统计，技能按字典序排列
func BuildUserStats(user models.User) models.UserStats {
	skills := make([]models.SkillBadge, 0, len(user.Skills))
	guru := 0
	for _, name := range sortedSkillNames(user.Skills) {
		level := user.Skills[name]
		badge := badgeFor(level)
		if badge == models.BadgeGuru {
			guru++
		}
		skills = append(skills, models.SkillBadge{Name: name, Level: level, BadgeType: badge})
	}

	avg := user.AvgSkillLevel()
	interests := user.Interests
	if interests == nil {
		interests = []string{}
	}

	return models.UserStats{
		ID:             user.ID,
		Name:           user.Name,
		Dept:           user.Dept,
		LevelLabel:     levelLabelFor(avg),
		TotalSkills:    len(user.Skills),
		AvgProficiency: int(math.Round(avg)),
		GuruBadges:     guru,
		Interests:      interests,
		Skills:         skills,
	}
}

// BuildTeacherStats 汇总班级整体情况
// 没有任何技能的用户不参与平均值计算；平均技能低于阈值的学生计入学习困难名单
func BuildTeacherStats(atRiskThreshold int) models.TeacherStats {
	users := repository.AllUsers()

	sum := 0.0
	counted := 0
	atRisk := make([]models.AtRiskUser, 0)
	for _, u := range users {
		if len(u.Skills) == 0 {
			continue
		}
		avg := u.AvgSkillLevel()
		sum += avg
		counted++
		if avg < float64(atRiskThreshold) {
			atRisk = append(atRisk, models.AtRiskUser{ID: u.ID, Name: u.Name, Avg: avg})
		}
	}

	overall := 0
	if counted > 0 {
		overall = int(sum / float64(counted))
	}

	return models.TeacherStats{
		TotalStudents: len(users),
		AvgClassSkill: overall,
		AtRiskCount:   len(atRisk),
		AtRiskList:    atRisk,
	}
}

// badgeFor 按熟练度评定单项技能徽章
func badgeFor(level int) string {
	switch {
	case level >= guruThreshold:
		return models.BadgeGuru
	case level >= specialistThreshold:
		return models.BadgeSpecialist
	default:
		return models.BadgeLearner
	}
}

// levelLabelFor 按平均熟练度评定用户综合等级标签
func levelLabelFor(avg float64) string {
	switch {
	case avg >= scholarThreshold:
		return models.LevelScholar
	case avg >= learnerThreshold:
		return models.LevelLearner
	default:
		return models.LevelBeginner
	}
}
