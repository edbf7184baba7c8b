package models

import "time"

// User 用户目录中的一条用户记录
// Skills 的键为该用户自己录入的技能名，不同用户的大小写可能不一致
type User struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Dept      string         `json:"dept"`
	Skills    map[string]int `json:"skills"`    // 技能名 -> 熟练度（0-100）
	Interests []string       `json:"interests"` // 兴趣标签
	CreatedAt time.Time      `json:"created_at"`
}

// HasInterest 判断用户是否拥有指定兴趣
func (u *User) HasInterest(interest string) bool {
	for _, it := range u.Interests {
		if it == interest {
			return true
		}
	}
	return false
}

// AvgSkillLevel 计算用户所有技能的平均熟练度，没有技能时返回0
func (u *User) AvgSkillLevel() float64 {
	if len(u.Skills) == 0 {
		return 0
	}
	sum := 0
	for _, lvl := range u.Skills {
		sum += lvl
	}
	return float64(sum) / float64(len(u.Skills))
}
