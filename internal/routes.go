package internal

import (
	"net/http"

	"github.com/km1000101/the-Editors-hub/internal/controllers"
	"github.com/km1000101/the-Editors-hub/internal/providers"
	"github.com/km1000101/the-Editors-hub/internal/structures"
)

func InitRoutes(auth *controllers.AuthController, blog *controllers.BlogController, newsC *controllers.NewsController, analyticsC *controllers.AnalyticsController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/auth/login", http.HandlerFunc(auth.Login))
	routers.Post("/auth/signup", http.HandlerFunc(auth.Signup))
	routers.Post("/auth/logout", http.HandlerFunc(auth.Logout))
	routers.Get("/auth/session", http.HandlerFunc(auth.Session))

	routers.Get("/posts", http.HandlerFunc(blog.List))
	routers.Post("/posts/create", http.HandlerFunc(blog.Create))
	routers.Put("/posts/update", http.HandlerFunc(blog.Update))
	routers.Delete("/posts/delete", http.HandlerFunc(blog.Delete))
	routers.Post("/posts/view", http.HandlerFunc(blog.View))
	routers.Post("/posts/like", http.HandlerFunc(blog.Like))
	routers.Post("/posts/bookmark", http.HandlerFunc(blog.Bookmark))
	routers.Post("/posts/comment", http.HandlerFunc(blog.Comment))

	routers.Get("/drafts", http.HandlerFunc(blog.DraftGet))
	routers.Put("/drafts/update", http.HandlerFunc(blog.DraftUpdate))
	routers.Delete("/drafts/clear", http.HandlerFunc(blog.DraftClear))

	routers.Get("/news", http.HandlerFunc(newsC.List))
	routers.Get("/news/more", http.HandlerFunc(newsC.More))
	routers.Get("/news/categories", http.HandlerFunc(newsC.Categories))
	routers.Post("/news/refresh", http.HandlerFunc(newsC.Refresh))
	routers.Get("/bookmarks", http.HandlerFunc(newsC.Bookmarks))
	routers.Post("/bookmarks/toggle", http.HandlerFunc(newsC.BookmarkToggle))

	routers.Get("/analytics", http.HandlerFunc(analyticsC.Dashboard))
	routers.Get("/analytics/summary", http.HandlerFunc(analyticsC.Summary))

	return routers
}
