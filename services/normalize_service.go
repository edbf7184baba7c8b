package services

import (
	"errors"
	"strings"

	"skill_sync/models"
)

// ErrSkillNotFound 用户在任何大小写形式下都不持有该技能
var ErrSkillNotFound = errors.New("skill not found for user")

// NormalizeSkill 把自由输入的技能名解析成用户自己技能表中的规范键
// 只在该用户的技能键里做大小写不敏感的匹配，不查任何全局技能表。
// 若多个键仅大小写不同，取字典序最小的一个，保证结果稳定。
func NormalizeSkill(user models.User, requested string) (string, error) {
	for _, name := range sortedSkillNames(user.Skills) {
		if strings.EqualFold(name, requested) {
			return name, nil
		}
	}
	return "", ErrSkillNotFound
}
