package models

// 技能徽章等级
const (
	BadgeGuru       = "Guru"       // 熟练度 >= 80
	BadgeSpecialist = "Specialist" // 熟练度 >= 50
	BadgeLearner    = "Learner"
)

// 用户综合等级标签（按平均熟练度）
const (
	LevelScholar  = "Scholar" // 平均 >= 70
	LevelLearner  = "Learner" // 平均 >= 40
	LevelBeginner = "Beginner"
)

// SkillBadge 带徽章的单项技能
type SkillBadge struct {
	Name      string `json:"name"`
	Level     int    `json:"level"`
	BadgeType string `json:"badge_type"`
}

// UserStats 用户个人统计概览
type UserStats struct {
	ID             int          `json:"id"`
	Name           string       `json:"name"`
	Dept           string       `json:"dept"`
	LevelLabel     string       `json:"level_label"`
	TotalSkills    int          `json:"total_skills"`
	AvgProficiency int          `json:"avg_proficiency"`
	GuruBadges     int          `json:"guru_badges"`
	Interests      []string     `json:"interests"`
	Skills         []SkillBadge `json:"skills"`
}

// AtRiskUser 学习困难学生条目
type AtRiskUser struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Avg  float64 `json:"avg"`
}

// TeacherStats 班级整体统计
type TeacherStats struct {
	TotalStudents int          `json:"total_students"`
	AvgClassSkill int          `json:"avg_class_skill"`
	AtRiskCount   int          `json:"at_risk_count"`
	AtRiskList    []AtRiskUser `json:"at_risk_list"`
}
