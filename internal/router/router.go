package router

import (
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/config"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/handler"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/middleware"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/service"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires middleware, services and routes onto a gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORS.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORS.AllowOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowCredentials = !corsCfg.AllowAllOrigins
	r.Use(cors.New(corsCfg))

	// uploaded avatars and cover images
	if cfg.Upload.Dir != "" {
		r.Static("/uploads", cfg.Upload.Dir)
	}

	tokens := util.NewTokenIssuer(cfg.JWT)
	userService := service.NewUserService(db, tokens, cfg.Security.BcryptCost)
	postService := service.NewPostService(db)

	authHandler := handler.NewAuthHandler(userService, cfg.JWT)
	postHandler := handler.NewPostHandler(postService)
	uploadHandler := handler.NewUploadHandler(userService, cfg.Upload)
	exportHandler := handler.NewExportHandler(postService)

	authRequired := middleware.Auth(tokens, db)
	audit := middleware.Audit(db)

	// ====== users ======
	users := r.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.POST("/refresh-token", authHandler.RefreshToken)

	usersAuth := users.Group("", authRequired, audit)
	usersAuth.POST("/logout", authHandler.Logout)
	usersAuth.GET("/me", authHandler.Me)
	usersAuth.POST("/avatar", uploadHandler.Avatar)
	usersAuth.POST("/cover-image", uploadHandler.CoverImage)

	// ====== posts ======
	posts := r.Group("/posts")
	posts.GET("/all-posts", postHandler.All)
	posts.GET("/post/:id", postHandler.Single)

	postsAuth := posts.Group("", authRequired, audit)
	postsAuth.POST("/create", postHandler.Create)
	postsAuth.PUT("/update/:id", postHandler.Update)
	postsAuth.DELETE("/delete/:id", postHandler.Delete)
	postsAuth.GET("/export/csv", exportHandler.ExportCSV)
	postsAuth.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
