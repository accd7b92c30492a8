package api

import (
	"log"
	stdhttp "net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"jobboard/internal/config"
	h "jobboard/internal/http/handlers"
	"jobboard/internal/http/middleware"
	"jobboard/internal/repositories"
)

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		cfg.AllowOrigins = []string{}
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowOrigins = append(cfg.AllowOrigins, o)
			}
		}
	}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"}
	cfg.AllowCredentials = true
	cfg.MaxAge = 24 * time.Hour
	return cfg
}

func NewRouter(env config.Env) *gin.Engine {
	h.SetJWTSecret([]byte(env.JWTSecret))

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), cors.New(corsConfig()))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	auth := middleware.RequireAuth([]byte(env.JWTSecret))
	admin := middleware.RequireRoles("admin")

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		authGroup := api.Group("/auth")
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)

		api.GET("/users/me", auth, h.Me)

		// Catalog resources share one CRUD surface; only the descriptors differ.
		h.MountNamedResource(api.Group("/categories"), repositories.NewCategoryRepository(nil), admin)
		h.MountNamedResource(api.Group("/tags"), repositories.NewTagRepository(nil), admin)
		h.MountNamedResource(api.Group("/skills"), repositories.NewSkillRepository(nil), admin)
		h.MountNamedResource(api.Group("/job-categories"), repositories.NewJobCategoryRepository(nil), admin)

		blogs := api.Group("/blogs")
		blogs.GET("", h.ListBlogs)
		blogs.GET("/:id", h.GetBlog)
		blogs.POST("", auth, h.CreateBlog)
		blogs.PUT("/:id", auth, admin, h.UpdateBlog)
		blogs.DELETE("/:id", auth, admin, h.DeleteBlog)
		blogs.POST("/:id/save", auth, h.SaveBlog)
		blogs.DELETE("/:id/save", auth, h.UnsaveBlog)
		blogs.GET("/:id/saved", auth, h.SavedBlogExists)

		api.GET("/saved-blogs", auth, h.ListSavedBlogs)

		jobs := api.Group("/jobs")
		jobs.GET("", h.ListJobs)
		jobs.GET("/:id", h.GetJob)
		jobs.POST("", auth, admin, h.CreateJob)
		jobs.PUT("/:id", auth, admin, h.UpdateJob)
		jobs.DELETE("/:id", auth, admin, h.DeleteJob)
		jobs.POST("/:id/apply", auth, h.ApplyToJob)
		jobs.GET("/:id/applications", auth, admin, h.ListJobApplications)

		applications := api.Group("/applications", auth)
		applications.GET("", h.ListMyApplications)
		applications.GET("/:id", h.GetApplication)
		applications.PUT("/:id/status", admin, h.UpdateApplicationStatus)
		applications.DELETE("/:id", h.DeleteApplication)
		applications.GET("/:id/summary", h.GetApplicationSummary)
	}

	return r
}
