package config

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InitApp tạo router, melody và cron dùng chung cho toàn app
func InitApp(cfg Config) (*gin.Engine, *melody.Melody, *cron.Cron) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("X-Session-ID")
	configCors.AddExposeHeaders("X-Session-ID", "X-Career-Source")
	if len(cfg.CORSOrigins) > 0 {
		configCors.AllowOrigins = cfg.CORSOrigins
	} else {
		configCors.AllowAllOrigins = true
	}
	router.Use(cors.New(configCors))

	_ = router.SetTrustedProxies(nil)

	m := melody.New()

	c := cron.New()

	return router, m, c
}
