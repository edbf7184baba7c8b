package services

import (
	"sort"

	"skill_sync/logger"
	"skill_sync/models"
	"skill_sync/repository"
)

// DefaultTopN 默认返回的匹配数量
const DefaultTopN = 3

// PickTopMatches 为目标用户在整个目录中挑选得分最高的topN个匹配
// 未知用户、目标不持有focusSkill时都返回空列表而不是错误，
// 调用方无法区分"用户不存在"和"没有合格的匹配"。
func PickTopMatches(targetID, topN int, focusSkill string) []models.MatchRecord {
	if topN <= 0 {
		topN = DefaultTopN
	}

	target, ok := repository.FindUser(targetID)
	if !ok {
		logger.Debug("目标用户不在目录中", "user_id", targetID)
		return []models.MatchRecord{}
	}

	// focusSkill 先按目标用户自己的键归一化，归一化失败直接返回空
	focus := ""
	if focusSkill != "" {
		canonical, err := NormalizeSkill(target, focusSkill)
		if err != nil {
			logger.Debug("目标用户不持有指定技能", "user_id", targetID, "skill", focusSkill)
			return []models.MatchRecord{}
		}
		focus = canonical
	}

	records := make([]models.MatchRecord, 0)
	for _, candidate := range repository.AllUsers() {
		if candidate.ID == target.ID {
			continue
		}

		score, matched, shared, _ := ScorePair(target, candidate, focus)
		// 没有共同技能或得分为零的候选人直接淘汰
		if score <= 0 || len(matched) == 0 {
			continue
		}

		role, link, title, plan := ComposeRecommendation(target, matched)
		records = append(records, models.MatchRecord{
			ID:                  candidate.ID,
			Name:                candidate.Name,
			Dept:                candidate.Dept,
			Score:               ReportScore(score),
			Role:                role,
			MatchedSkills:       matched,
			SharedInterests:     shared,
			RecommendationLink:  link,
			RecommendationTitle: title,
			StudyPlan:           plan,
		})
	}

	// 稳定排序：分数相同的候选人保持目录顺序，这是对外承诺的并列规则
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})

	if len(records) > topN {
		records = records[:topN]
	}
	return records
}
