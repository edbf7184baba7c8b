package services

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"skill_sync/config"
	"skill_sync/logger"
)

// 资源难度
const (
	DifficultyBeginner = "beginner"
	DifficultyExpert   = "expert"
)

// 查不到资源时的通用兜底
const (
	fallbackLink  = "https://www.youtube.com"
	fallbackTitle = "General Resource"
)

// ContentEntry 学习资源目录中的一条资源
type ContentEntry struct {
	Link  string `yaml:"link"`
	Title string `yaml:"title"`
}

// contentCatalog 技能名 -> 难度 -> 资源
type contentCatalog map[string]map[string]ContentEntry

var (
	catalogMu sync.RWMutex
	catalog   = defaultCatalog()
)

// LoadCatalog 从配置的YAML文件加载学习资源目录
// 路径为空、文件缺失或解析失败时退回内置资源表并记录警告，从不致命
func LoadCatalog(cfg *config.Config) error {
	path := cfg.Catalog.FilePath
	if path == "" {
		logger.Info("使用内置学习资源目录")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("读取学习资源目录文件失败，退回内置资源表", "path", path, "error", err)
		return err
	}

	loaded := contentCatalog{}
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		logger.Warn("解析学习资源目录文件失败，退回内置资源表", "path", path, "error", err)
		return err
	}

	catalogMu.Lock()
	catalog = loaded
	catalogMu.Unlock()

	logger.Info("学习资源目录加载成功", "path", path, "skills", len(loaded))
	return nil
}

// LookupContent 按(技能, 难度)查找学习资源
// 未命中时返回通用兜底资源；命中但没有标题时按难度自动生成标题
func LookupContent(skill, difficulty string) (link, title string) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()

	entry, ok := catalog[skill][difficulty]
	if !ok || entry.Link == "" {
		return fallbackLink, fallbackTitle
	}
	title = entry.Title
	if title == "" {
		title = autoTitle(skill, difficulty)
	}
	return entry.Link, title
}

// autoTitle 按难度生成默认标题
func autoTitle(skill, difficulty string) string {
	if difficulty == DifficultyExpert {
		return fmt.Sprintf("Advanced %s", skill)
	}
	return fmt.Sprintf("Intro to %s", skill)
}

// defaultCatalog 内置资源表，覆盖种子目录中的全部技能
func defaultCatalog() contentCatalog {
	return contentCatalog{
		"Python": {
			DifficultyBeginner: {Link: "https://youtu.be/_uQrJ0TkZlc"},
			DifficultyExpert:   {Link: "https://youtu.be/OdH2b3vT04E"},
		},
		"React": {
			DifficultyBeginner: {Link: "https://youtu.be/SqcY0GlETPk"},
			DifficultyExpert:   {Link: "https://youtu.be/wPqnGRrE_UU"},
		},
		"Java": {
			DifficultyBeginner: {Link: "https://youtu.be/eIrMbAQSU34"},
			DifficultyExpert:   {Link: "https://youtu.be/grEKMHGYyns"},
		},
		"C++": {
			DifficultyBeginner: {Link: "https://youtu.be/vLnPwxZdW4Y"},
			DifficultyExpert:   {Link: "https://youtu.be/8jLOx1hD3_o"},
		},
		"System Design": {
			DifficultyBeginner: {Link: "https://youtu.be/xpDnVSmhmPo"},
			DifficultyExpert:   {Link: "https://youtu.be/i53Gi_K3o7I"},
		},
		"Next.js": {
			DifficultyBeginner: {Link: "https://youtu.be/ZVnjOPwW4ZA"},
			DifficultyExpert:   {Link: "https://youtu.be/843nec-IvW0"},
		},
		"Figma": {
			DifficultyBeginner: {Link: "https://youtu.be/4W4LvJnNegI"},
			DifficultyExpert:   {Link: "https://youtu.be/_rk0JYrxK2c"},
		},
		"Django": {
			DifficultyBeginner: {Link: "https://youtu.be/F5mRW0jo-U4"},
			DifficultyExpert:   {Link: "https://youtu.be/3gw2G5sU3xY"},
		},
		"Node.js": {
			DifficultyBeginner: {Link: "https://youtu.be/TlB_eWDSMt4"},
			DifficultyExpert:   {Link: "https://youtu.be/2eq7F4Iu3zA"},
		},
	}
}

// ResetCatalog 恢复内置资源表，测试用
func ResetCatalog() {
	catalogMu.Lock()
	catalog = defaultCatalog()
	catalogMu.Unlock()
}
