package models

// 匹配角色
const (
	RolePeer   = "Peer"   // 水平相近的学习伙伴
	RoleMentor = "Mentor" // 技能明显领先的导师
)

// MatchedSkill 一条匹配到的共同技能
type MatchedSkill struct {
	Name       string `json:"name"`
	TheirLevel int    `json:"their_level"` // 对方的熟练度
}

// StudyPlan 按角色固定的学习计划
type StudyPlan struct {
	DailyHours      int    `json:"daily_hours"`
	DaysToNextLevel int    `json:"days_to_next_level"`
	TargetLevel     string `json:"target_level"`
}

// MatchRecord 一条排好序的匹配结果
type MatchRecord struct {
	ID                  int            `json:"id"`
	Name                string         `json:"name"`
	Dept                string         `json:"dept"`
	Score               int            `json:"score"` // 上限99，四舍五入取整
	Role                string         `json:"role"`  // Peer / Mentor
	MatchedSkills       []MatchedSkill `json:"matched_skills"`
	SharedInterests     []string       `json:"shared_interests"`
	RecommendationLink  string         `json:"recommendation_link"`
	RecommendationTitle string         `json:"recommendation_title"`
	StudyPlan           StudyPlan      `json:"study_plan"`
}
