package services

import (
	"fmt"
	"strings"

	"skill_sync/models"
)

// 节点配色，与前端force-graph的渲染约定一致
const (
	colorMe       = "#fb923c"
	colorPeer     = "#60a5fa"
	colorMentor   = "#a78bfa"
	colorSkill    = "#f59e0b"
	colorInterest = "#ef4444"
)

// 视觉权重与数量上限
const (
	meVal             = 18
	mentorVal         = 16
	peerVal           = 14
	skillVal          = 10
	interestVal       = 10
	maxSkillsPerMatch = 2 // 每个候选人最多展示的技能节点数
	maxInterestNodes  = 2 // 整个响应中兴趣节点的总数上限
)

// BuildGraphData 把排好序的匹配列表组装成去重后的可视化图
// displayName 非空时覆盖目标节点的显示名。
// 技能节点按名称缓存，多个候选人共享同一个节点；
// 所有边最后按(source, target, type)三元组去重，节点ID天然唯一。
func BuildGraphData(target models.User, matches []models.MatchRecord, displayName string) models.GraphData {
	nodes := make([]models.GraphNode, 0)
	links := make([]models.GraphEdge, 0)

	label := target.Name
	if displayName != "" {
		label = displayName
	}
	meID := userNodeID(target.ID)
	nodes = append(nodes, models.GraphNode{
		ID:    meID,
		Label: label,
		Role:  models.NodeRoleMe,
		Group: "user",
		Color: colorMe,
		Val:   meVal,
	})

	skillNodes := make(map[string]string)
	for _, m := range matches {
		role := strings.ToLower(m.Role)
		color, val := colorPeer, peerVal
		if role == models.NodeRoleMentor {
			color, val = colorMentor, mentorVal
		}

		candID := userNodeID(m.ID)
		nodes = append(nodes, models.GraphNode{
			ID:    candID,
			Label: m.Name,
			Role:  role,
			Group: "user",
			Color: color,
			Val:   val,
		})
		links = append(links, models.GraphEdge{Source: meID, Target: candID, Type: models.EdgeConnection})

		// 每个候选人只展示前两个匹配技能，顺序沿用打分阶段产出的顺序
		shown := m.MatchedSkills
		if len(shown) > maxSkillsPerMatch {
			shown = shown[:maxSkillsPerMatch]
		}
		for _, ms := range shown {
			nodeID, ok := skillNodes[ms.Name]
			if !ok {
				nodeID = skillNodeID(ms.Name)
				skillNodes[ms.Name] = nodeID
				nodes = append(nodes, models.GraphNode{
					ID:    nodeID,
					Label: ms.Name,
					Role:  models.NodeRoleSkill,
					Group: "skill",
					Color: colorSkill,
					Val:   skillVal,
				})
			}
			links = append(links, models.GraphEdge{Source: candID, Target: nodeID, Type: models.EdgeSkill})
			if _, held := target.Skills[ms.Name]; held {
				links = append(links, models.GraphEdge{Source: meID, Target: nodeID, Type: models.EdgeSkill})
			}
		}
	}

	// 兴趣节点整个响应最多两个，按匹配顺序先到先得；
	// 超出上限的兴趣不建节点，但已建节点的兴趣照常连边
	interestNodes := make(map[string]string)
	for _, m := range matches {
		for _, interest := range m.SharedInterests {
			if interest == "" {
				continue
			}
			if _, ok := interestNodes[interest]; !ok && len(interestNodes) < maxInterestNodes {
				nodeID := interestNodeID(interest)
				interestNodes[interest] = nodeID
				nodes = append(nodes, models.GraphNode{
					ID:    nodeID,
					Label: interest,
					Role:  models.NodeRoleInterest,
					Group: "interest",
					Color: colorInterest,
					Val:   interestVal,
				})
			}
			if nodeID, ok := interestNodes[interest]; ok {
				links = append(links, models.GraphEdge{Source: userNodeID(m.ID), Target: nodeID, Type: models.EdgeInterest})
				if target.HasInterest(interest) {
					links = append(links, models.GraphEdge{Source: meID, Target: nodeID, Type: models.EdgeInterest})
				}
			}
		}
	}

	return models.GraphData{Nodes: nodes, Links: dedupeEdges(links)}
}

// dedupeEdges 按(source, target, type)三元组去重，保留首次出现的顺序
func dedupeEdges(links []models.GraphEdge) []models.GraphEdge {
	seen := make(map[models.GraphEdge]bool, len(links))
	deduped := make([]models.GraphEdge, 0, len(links))
	for _, l := range links {
		if seen[l] {
			continue
		}
		seen[l] = true
		deduped = append(deduped, l)
	}
	return deduped
}

func userNodeID(id int) string {
	return fmt.Sprintf("user-%d", id)
}

func skillNodeID(name string) string {
	return "skill-" + name
}

func interestNodeID(name string) string {
	return "interest-" + name
}
