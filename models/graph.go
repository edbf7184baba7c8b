package models

// 图节点角色
const (
	NodeRoleMe       = "me"
	NodeRolePeer     = "peer"
	NodeRoleMentor   = "mentor"
	NodeRoleSkill    = "skill"
	NodeRoleInterest = "interest"
)

// 图边类型
const (
	EdgeConnection = "connection"
	EdgeSkill      = "skill"
	EdgeInterest   = "interest"
)

// GraphNode 可视化图中的一个节点
// ID 在单次响应内全局唯一：user-<id> / skill-<名称> / interest-<名称>
type GraphNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Role  string `json:"role"`
	Group string `json:"group"`
	Color string `json:"color"`
	Val   int    `json:"val"` // 前端渲染的视觉权重
}

// GraphEdge 可视化图中的一条边
type GraphEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`
}

// GraphData 可视化图响应
type GraphData struct {
	Nodes []GraphNode `json:"nodes"`
	Links []GraphEdge `json:"links"`
}
