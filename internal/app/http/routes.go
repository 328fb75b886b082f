package routes

import (
	authapi "blockcms/internal/api/auth"
	mediaapi "blockcms/internal/api/media"
	newsapi "blockcms/internal/api/news"
	pagesapi "blockcms/internal/api/pages"
	projectsapi "blockcms/internal/api/projects"
	"blockcms/internal/api/publicsite"
	rolesapi "blockcms/internal/api/roles"
	servicesapi "blockcms/internal/api/services"
	usersapi "blockcms/internal/api/users"
	"blockcms/internal/app/http/middleware"
	"blockcms/internal/domain/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public: rendered pages by slug, published only.
	r.GET("/pages/:slug", publicsite.GetPage)

	// Auth. Sanitization stays off content routes: page documents carry
	// HTML legitimately and get sanitized at render time.
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/auth/login", authapi.Login)
	public.POST("/auth/forgot-password", authapi.ForgotPassword)
	public.POST("/auth/reset-password", authapi.ResetPassword)

	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/auth/me", authapi.Me)
	auth.POST("/auth/logout", authapi.Logout)
	auth.POST("/auth/change-password", authapi.ChangePassword)

	// Admin API. Every mutating route is gated on the caller's effective
	// permission set.
	admin := r.Group("/admin/api")
	admin.Use(middleware.AuthMiddleware())

	admin.GET("/pages", middleware.RequirePermission(rbac.PermManageContent), pagesapi.ListPages)
	admin.GET("/pages/:id", middleware.RequirePermission(rbac.PermManageContent), pagesapi.GetPage)
	admin.POST("/pages", middleware.RequirePermission(rbac.PermManageContent), pagesapi.CreatePage)
	admin.PUT("/pages/:id", middleware.RequirePermission(rbac.PermManageContent), pagesapi.UpdatePage)
	admin.DELETE("/pages/:id", middleware.RequirePermission(rbac.PermManageContent), pagesapi.DeletePage)
	admin.POST("/pages/:id/publish", middleware.RequirePermission(rbac.PermPublishContent), pagesapi.PublishPage)
	admin.POST("/pages/:id/unpublish", middleware.RequirePermission(rbac.PermPublishContent), pagesapi.UnpublishPage)
	admin.POST("/pages/:id/archive", middleware.RequirePermission(rbac.PermPublishContent), pagesapi.ArchivePage)

	admin.GET("/services", middleware.RequireAnyPermission(rbac.PermManageContent, rbac.PermPublishContent), servicesapi.ListServices)
	admin.POST("/services", middleware.RequirePermission(rbac.PermManageContent), servicesapi.CreateService)
	admin.PUT("/services/:id", middleware.RequirePermission(rbac.PermManageContent), servicesapi.UpdateService)
	admin.DELETE("/services/:id", middleware.RequirePermission(rbac.PermManageContent), servicesapi.DeleteService)

	admin.GET("/projects", middleware.RequireAnyPermission(rbac.PermManageContent, rbac.PermPublishContent), projectsapi.ListProjects)
	admin.POST("/projects", middleware.RequirePermission(rbac.PermManageContent), projectsapi.CreateProject)
	admin.PUT("/projects/:id", middleware.RequirePermission(rbac.PermManageContent), projectsapi.UpdateProject)
	admin.DELETE("/projects/:id", middleware.RequirePermission(rbac.PermManageContent), projectsapi.DeleteProject)

	admin.GET("/news", middleware.RequireAnyPermission(rbac.PermManageContent, rbac.PermPublishContent), newsapi.ListNews)
	admin.POST("/news", middleware.RequirePermission(rbac.PermManageContent), newsapi.CreateNews)
	admin.PUT("/news/:id", middleware.RequirePermission(rbac.PermManageContent), newsapi.UpdateNews)
	admin.DELETE("/news/:id", middleware.RequirePermission(rbac.PermManageContent), newsapi.DeleteNews)

	admin.GET("/media", middleware.RequirePermission(rbac.PermManageMedia), mediaapi.ListMedia)
	admin.POST("/media", middleware.RequirePermission(rbac.PermManageMedia), mediaapi.UploadMedia)
	admin.DELETE("/media/:id", middleware.RequirePermission(rbac.PermManageMedia), mediaapi.DeleteMedia)

	admin.GET("/permissions", middleware.RequirePermission(rbac.PermManageRoles), rolesapi.ListPermissions)
	admin.GET("/roles", middleware.RequirePermission(rbac.PermManageRoles), rolesapi.ListRoles)
	admin.GET("/roles/:id", middleware.RequirePermission(rbac.PermManageRoles), rolesapi.GetRole)
	admin.POST("/roles", middleware.RequirePermission(rbac.PermManageRoles), rolesapi.CreateRole)
	admin.PUT("/roles/:id", middleware.RequirePermission(rbac.PermManageRoles), rolesapi.UpdateRole)
	admin.DELETE("/roles/:id", middleware.RequirePermission(rbac.PermManageRoles), rolesapi.DeleteRole)

	admin.GET("/users", middleware.RequirePermission(rbac.PermManageUsers), usersapi.ListUsers)
	admin.GET("/users/:id", middleware.RequirePermission(rbac.PermManageUsers), usersapi.GetUser)
	admin.POST("/users", middleware.RequirePermission(rbac.PermManageUsers), usersapi.CreateUser)
	admin.PUT("/users/:id", middleware.RequirePermission(rbac.PermManageUsers), usersapi.UpdateUser)
	admin.DELETE("/users/:id", middleware.RequirePermission(rbac.PermManageUsers), usersapi.DeleteUser)
}
