package repository

import (
	"sync/atomic"

	"skill_sync/models"
)

// snapshot 用户目录的一份完整快照
// 刷新时整体替换指针，读取方永远看到一份自洽的目录，不存在逐字段更新的中间状态
type snapshot struct {
	users []models.User
	byID  map[int]int // id -> users 下标
}

var current atomic.Pointer[snapshot]

func init() {
	Replace(nil)
}

// Replace 原子地用新的用户列表整体替换目录
func Replace(users []models.User) {
	byID := make(map[int]int, len(users))
	for i, u := range users {
		byID[u.ID] = i
	}
	current.Store(&snapshot{users: users, byID: byID})
}

// FindUser 按ID查找用户，找不到时第二个返回值为false
func FindUser(id int) (models.User, bool) {
	snap := current.Load()
	idx, ok := snap.byID[id]
	if !ok {
		return models.User{}, false
	}
	return snap.users[idx], true
}

// AllUsers 按目录顺序返回全部用户
// 返回的是快照内容，调用方只读、不得修改
func AllUsers() []models.User {
	return current.Load().users
}

// FirstUser 返回目录中的第一个用户，目录为空时第二个返回值为false
func FirstUser() (models.User, bool) {
	snap := current.Load()
	if len(snap.users) == 0 {
		return models.User{}, false
	}
	return snap.users[0], true
}

// Count 返回目录中的用户数量
func Count() int {
	return len(current.Load().users)
}
