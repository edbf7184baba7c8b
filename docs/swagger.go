package docs

// @title 学习伙伴推荐服务 API
// @version 1.0
// @description 基于技能与兴趣重合度的学习伙伴/导师推荐和关系图可视化服务
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https
