package services

import (
	"skill_sync/models"
)

// 对方领先超过该差值时推荐进阶内容
const expertGap = 20

// 学习计划按角色固定，不随得分高低变化
var (
	mentorPlan = models.StudyPlan{DailyHours: 1, DaysToNextLevel: 30, TargetLevel: "Specialist"}
	peerPlan   = models.StudyPlan{DailyHours: 2, DaysToNextLevel: 14, TargetLevel: "Intermediate"}
)

// ComposeRecommendation 为一条匹配挑选学习资源并确定最终角色
// 选技能看双方水平差的绝对值最小（相近优先），并列时取列表中先出现的那个。
// 这与打分阶段贡献分数最高的技能是两回事，所以最终角色可能和打分阶段的
// roleHint 不一致——这是有意保留的行为，两步选择不能合并。
func ComposeRecommendation(target models.User, matched []models.MatchedSkill) (role, link, title string, plan models.StudyPlan) {
	if len(matched) == 0 {
		return models.RolePeer, fallbackLink, fallbackTitle, peerPlan
	}

	best := matched[0]
	bestCloseness := abs(best.TheirLevel - target.Skills[best.Name])
	for _, ms := range matched[1:] {
		closeness := abs(ms.TheirLevel - target.Skills[ms.Name])
		if closeness < bestCloseness {
			best = ms
			bestCloseness = closeness
		}
	}

	targetLevel := target.Skills[best.Name]

	difficulty := DifficultyBeginner
	if best.TheirLevel > targetLevel+expertGap {
		difficulty = DifficultyExpert
	}

	// 最终角色只看选中的这个技能，阈值与打分阶段的导师信号一致
	role = models.RolePeer
	plan = peerPlan
	if best.TheirLevel-targetLevel >= MentorGap {
		role = models.RoleMentor
		plan = mentorPlan
	}

	link, title = LookupContent(best.Name, difficulty)
	return role, link, title, plan
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
