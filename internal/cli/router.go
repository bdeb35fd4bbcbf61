package cli

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"blog-service/internal/handler"
	"blog-service/internal/middleware"
)

const serviceName = "blog-service"

// routerDeps are the handlers mounted by newRouter.
type routerDeps struct {
	posts  *handler.PostHandler
	health *handler.HealthHandler
	// staticPrefix and staticDir serve locally stored blobs when set.
	staticPrefix string
	staticDir    string
}

func newRouter(deps routerDeps) *gin.Engine {
	router := gin.New()
	router.Use(otelgin.Middleware(serviceName))
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.Actor())

	router.GET("/health", deps.health.Health)
	router.GET("/ready", deps.health.Ready)
	router.GET("/live", deps.health.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if deps.staticDir != "" && deps.staticPrefix != "" {
		router.Static(deps.staticPrefix, deps.staticDir)
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/posts", deps.posts.ListPosts)
		v1.GET("/posts/:slug", deps.posts.GetPost)

		authed := v1.Group("", middleware.RequireActor())
		authed.POST("/posts", deps.posts.CreatePost)
		authed.PUT("/posts/:id", deps.posts.UpdatePost)
		authed.DELETE("/posts/:id", deps.posts.DeletePost)
		authed.GET("/me/posts", deps.posts.ListMyPosts)
	}

	return router
}
