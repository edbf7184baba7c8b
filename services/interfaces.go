package services

import (
	"skill_sync/models"
)

// MatchService 匹配排名服务接口
type MatchService interface {
	// 计算一对用户的兼容性得分
	ScorePair(target, candidate models.User, focusSkill string) (float64, []models.MatchedSkill, []string, string)

	// 为目标用户挑选得分最高的topN个匹配
	PickTopMatches(targetID, topN int, focusSkill string) []models.MatchRecord
}

// GraphService 可视化图组装服务接口
type GraphService interface {
	// 把匹配列表组装成去重后的节点/边图
	BuildGraphData(target models.User, matches []models.MatchRecord, displayName string) models.GraphData
}

// StatsService 统计服务接口
type StatsService interface {
	// 单个用户的技能统计概览
	BuildUserStats(user models.User) models.UserStats

	// 班级整体统计
	BuildTeacherStats(atRiskThreshold int) models.TeacherStats
}

// CatalogService 学习资源目录服务接口
type CatalogService interface {
	// 按(技能, 难度)查找学习资源
	LookupContent(skill, difficulty string) (link, title string)
}
