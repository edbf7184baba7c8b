package repository

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"skill_sync/config"
	"skill_sync/models"
)

// 模拟数据池，与前端可视化使用的技能/兴趣集合保持一致
var (
	skillPool = []string{
		"Python", "React", "Java", "C++", "System Design",
		"Next.js", "Figma", "Django", "Node.js",
	}
	interestPool = []string{
		"Hackathons", "Competitive Coding", "Open Source",
		"AI Ethics", "Game Dev", "Product Design",
	}
	firstNames = []string{
		"Rahul", "Ananya", "Sarah", "David", "Vikram", "Priya", "Sam",
		"Rohan", "Aisha", "Kevin", "Naveen", "Emily", "Jason", "Arjun",
	}
	lastNames = []string{
		"Reddy", "Sharma", "Chen", "Gupta", "Kumar", "Watson",
		"Roy", "Kapoor", "Singh", "Khan", "Lee", "Patel",
	}
	deptPool = []string{"CSE", "ISE", "ECE", "MECH"}

	// 每个用户的技能/兴趣数量按权重抽取
	skillCountChoices    = []int{1, 2, 2, 3}
	interestCountChoices = []int{0, 1, 1, 2}
)

// 随机源跨多次刷新延续状态，只有种子是固定的，
// 每次refresh都会得到一份新的随机目录
var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(42))
)

// InitDirectory 按配置设置随机种子并生成初始目录
func InitDirectory(cfg *config.Config) int {
	rngMu.Lock()
	rng = rand.New(rand.NewSource(cfg.Directory.Seed))
	rngMu.Unlock()
	return RefreshDirectory(cfg)
}

// RefreshDirectory 重新生成整个目录并原子替换，返回新目录的用户数
func RefreshDirectory(cfg *config.Config) int {
	users := GenerateUsers(cfg.Directory.UserCount)
	Replace(users)
	return len(users)
}

// GenerateUsers 生成一份模拟的用户目录
// 1号用户是固定的演示用户，其余用户随机生成
func GenerateUsers(n int) []models.User {
	rngMu.Lock()
	defer rngMu.Unlock()

	now := time.Now().UTC()
	users := make([]models.User, 0, n)
	users = append(users, models.User{
		ID:        1,
		Name:      "Dhanush",
		Dept:      "ECE",
		Skills:    map[string]int{"Python": 40, "React": 50},
		Interests: []string{"Hackathons"},
		CreatedAt: now,
	})

	for uid := 2; uid <= n; uid++ {
		name := fmt.Sprintf("%s %s",
			firstNames[rng.Intn(len(firstNames))],
			lastNames[rng.Intn(len(lastNames))])

		k := skillCountChoices[rng.Intn(len(skillCountChoices))]
		skills := make(map[string]int, k)
		for _, s := range sample(skillPool, k) {
			skills[s] = 25 + rng.Intn(71) // 25-95
		}

		interests := sample(interestPool, interestCountChoices[rng.Intn(len(interestCountChoices))])

		users = append(users, models.User{
			ID:        uid,
			Name:      name,
			Dept:      deptPool[rng.Intn(len(deptPool))],
			Skills:    skills,
			Interests: interests,
			CreatedAt: now,
		})
	}
	return users
}

// sample 从池中无放回地抽取k个元素，调用方必须持有rngMu
func sample(pool []string, k int) []string {
	if k <= 0 {
		return []string{}
	}
	if k > len(pool) {
		k = len(pool)
	}
	picked := make([]string, 0, k)
	for _, idx := range rng.Perm(len(pool))[:k] {
		picked = append(picked, pool[idx])
	}
	return picked
}
