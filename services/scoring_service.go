package services

import (
	"math"
	"sort"
	"strings"

	"skill_sync/models"
)

// 打分规则常量
const (
	MentorGap      = 25 // 对方领先达到该差值视为导师信号
	peerGap        = 15 // 差值绝对值在该范围内视为同水平伙伴
	mentorPoints   = 40
	peerPoints     = 30
	weakPoints     = 10
	interestPoints = 10 // 每个共同兴趣的加分
	competenceMax  = 5  // 候选人综合实力加成上限

	// MaxReportedScore 对外报告的得分上限
	MaxReportedScore = 99
)

// ScorePair 计算一对(目标, 候选)用户的兼容性得分
// 返回原始得分、匹配到的技能列表、共同兴趣和打分阶段的角色信号。
// focusSkill 非空时只考察该技能（大小写不敏感），其余技能全部跳过。
// 纯函数：相同输入必然得到相同输出，不依赖任何隐藏状态。
func ScorePair(target, candidate models.User, focusSkill string) (float64, []models.MatchedSkill, []string, string) {
	score := 0.0
	matched := make([]models.MatchedSkill, 0)
	roleHint := models.RolePeer

	// Go的map没有稳定的遍历顺序，按技能名字典序遍历保证结果可复现
	for _, skill := range sortedSkillNames(target.Skills) {
		if focusSkill != "" && !strings.EqualFold(skill, focusSkill) {
			continue
		}
		theirLevel, ok := candidate.Skills[skill]
		if !ok {
			continue
		}
		matched = append(matched, models.MatchedSkill{Name: skill, TheirLevel: theirLevel})

		diff := theirLevel - target.Skills[skill]
		switch {
		case diff >= MentorGap:
			score += mentorPoints
			roleHint = models.RoleMentor
		case diff >= -peerGap && diff <= peerGap:
			score += peerPoints
		default:
			score += weakPoints
		}
	}

	// 共同兴趣，按目标用户的兴趣顺序遍历保证顺序稳定
	shared := make([]string, 0)
	for _, interest := range target.Interests {
		if candidate.HasInterest(interest) {
			shared = append(shared, interest)
		}
	}
	score += float64(len(shared) * interestPoints)

	// 候选人综合实力加成，无论匹配了几个技能都只加一次
	if len(candidate.Skills) > 0 {
		score += candidate.AvgSkillLevel() / 100 * competenceMax
	}

	return score, matched, shared, roleHint
}

// ReportScore 把内部得分转换为对外报告的整数得分，四舍五入并封顶
func ReportScore(score float64) int {
	return int(math.Min(MaxReportedScore, math.Round(score)))
}

// sortedSkillNames 返回按字典序排列的技能名
func sortedSkillNames(skills map[string]int) []string {
	names := make([]string, 0, len(skills))
	for name := range skills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
