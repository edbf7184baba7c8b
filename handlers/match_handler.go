package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"skill_sync/config"
	_ "skill_sync/docs" // 导入 swagger 文档
	"skill_sync/logger"
	"skill_sync/models"
	"skill_sync/repository"
	"skill_sync/services"
	"skill_sync/utils"
)

// RecommendHandler godoc
// @Summary 为指定用户推荐学习伙伴
// @Description 在整个用户目录中为指定用户打分排序，返回得分最高的匹配（默认前3名）。未知用户返回空列表
// @Tags 匹配推荐
// @Accept json
// @Produce json
// @Param userId path int true "用户ID"
// @Param skill query string false "限定匹配的技能名（大小写不敏感，用户未持有时返回空列表）"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Router /recommend/{userId} [get]
func RecommendHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	id, ok := utils.ParseUserID(w, chi.URLParam(r, "userId"))
	if !ok {
		return
	}

	skill := r.URL.Query().Get("skill")
	matches := services.PickTopMatches(id, cfg.Matching.TopN, skill)
	utils.WriteSuccessResponse(w, matches)
}

// GraphDataHandler godoc
// @Summary 获取匹配关系可视化图数据
// @Description 把推荐结果组装成去重后的节点/边图。未知用户返回空图
// @Tags 匹配推荐
// @Accept json
// @Produce json
// @Param userId query int false "用户ID，默认为1"
// @Param skill query string false "限定匹配的技能名"
// @Param displayName query string false "覆盖目标节点的显示名"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Router /graph-data [get]
func GraphDataHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	raw := r.URL.Query().Get("userId")
	if raw == "" {
		raw = "1" // 与前端演示页面的默认用户保持一致
	}
	id, ok := utils.ParseUserID(w, raw)
	if !ok {
		return
	}

	target, found := repository.FindUser(id)
	if !found {
		// 未知用户返回空图而不是错误
		utils.WriteSuccessResponse(w, models.GraphData{
			Nodes: []models.GraphNode{},
			Links: []models.GraphEdge{},
		})
		return
	}

	skill := r.URL.Query().Get("skill")
	displayName := r.URL.Query().Get("displayName")
	matches := services.PickTopMatches(id, cfg.Matching.TopN, skill)
	utils.WriteSuccessResponse(w, services.BuildGraphData(target, matches, displayName))
}

// UserStatsHandler godoc
// @Summary 获取用户个人统计概览
// @Description 返回用户的技能徽章、平均熟练度和综合等级标签
// @Tags 统计
// @Accept json
// @Produce json
// @Param userId path int true "用户ID"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Router /user-stats/{userId} [get]
func UserStatsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseUserID(w, chi.URLParam(r, "userId"))
	if !ok {
		return
	}

	user, found := repository.FindUser(id)
	if !found {
		// 未知用户静默回退到目录中的第一个用户
		// 这是沿用下来的兜底行为，调用方拿不到"用户不存在"的信号
		first, ok := repository.FirstUser()
		if !ok {
			utils.WriteErrorResponse(w, models.CodeUserNotFound, map[string]interface{}{
				"user_id": id,
			})
			return
		}
		logger.Warn("用户不存在，回退到默认用户", "requested_id", id, "fallback_id", first.ID)
		user = first
	}

	utils.WriteSuccessResponse(w, services.BuildUserStats(user))
}

// TeacherStatsHandler godoc
// @Summary 获取班级整体统计
// @Description 返回学生总数、班级平均技能和学习困难学生名单
// @Tags 统计
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "成功"
// @Router /teacher-stats [get]
func TeacherStatsHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	utils.WriteSuccessResponse(w, services.BuildTeacherStats(cfg.Matching.AtRiskThreshold))
}

// RefreshDataHandler godoc
// @Summary 重新生成用户目录
// @Description 重新生成整个模拟用户目录并原子替换，正在处理的请求仍然看到完整的旧目录
// @Tags 目录
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "成功"
// @Router /refresh-data [post]
func RefreshDataHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	count := repository.RefreshDirectory(cfg)
	logger.Info("用户目录已刷新", "count", count)
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"status": "ok",
		"count":  count,
	})
}

func RegisterRoutes(r *chi.Mux, cfg *config.Config) {
	// Swagger 文档
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // Swagger JSON 的 URL
	))

	r.Get("/recommend/{userId}", func(w http.ResponseWriter, r *http.Request) {
		RecommendHandler(w, r, cfg)
	})

	r.Get("/graph-data", func(w http.ResponseWriter, r *http.Request) {
		GraphDataHandler(w, r, cfg)
	})

	r.Get("/user-stats/{userId}", UserStatsHandler)

	r.Get("/teacher-stats", func(w http.ResponseWriter, r *http.Request) {
		TeacherStatsHandler(w, r, cfg)
	})

	r.Post("/refresh-data", func(w http.ResponseWriter, r *http.Request) {
		RefreshDataHandler(w, r, cfg)
	})
}
