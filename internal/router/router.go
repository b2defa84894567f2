package router

import (
	"deltadesk/internal/handler/ping"
	"deltadesk/internal/handler/portfolio"
	"deltadesk/internal/handler/settings"
	"deltadesk/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ApiRouter struct {
	portfolioHandler *portfolio.Handler
	settingsHandler  *settings.Handler
}

func NewApiRouter(ph *portfolio.Handler, sh *settings.Handler) *ApiRouter {
	return &ApiRouter{portfolioHandler: ph, settingsHandler: sh}
}

func (api *ApiRouter) Load(g *gin.Engine) {

	g.Use(middleware.RequestId(), middleware.Options(), middleware.Secure(), middleware.Logger)

	g.GET("/ping", ping.Ping())

	base := g.Group("/api/v1")

	p := base.Group("/portfolio")
	{
		// 组合概览和对冲建议
		p.GET("/summary", api.portfolioHandler.SummaryGet())
		p.GET("/hedge", api.portfolioHandler.HedgeGet())
	}

	o := base.Group("/options")
	{
		o.GET("", api.portfolioHandler.OptionsGetList())
		o.POST("", middleware.AntiDuplicateMiddleware(), api.portfolioHandler.OptionCreate())
		o.DELETE("/:id", api.portfolioHandler.OptionRemove())
	}

	u := base.Group("/underlying")
	{
		u.GET("", api.portfolioHandler.UnderlyingGetList())
		u.POST("", middleware.AntiDuplicateMiddleware(), api.portfolioHandler.UnderlyingCreate())
		u.DELETE("/:id", api.portfolioHandler.UnderlyingRemove())
	}

	s := base.Group("/settings", middleware.NoCache())
	{
		s.GET("", api.settingsHandler.SettingsGet())
		s.POST("", api.settingsHandler.SettingsUpdate())
	}
}
