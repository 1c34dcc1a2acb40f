package routes

import (
	"github.com/go-chi/chi/v5"

	"postsvc/internal/api/handlers/common"
	"postsvc/internal/api/handlers/post"
	"postsvc/internal/core/posts"
)

// RegisterPostRoutes registers the posts resource on the router
func RegisterPostRoutes(r chi.Router, service posts.Service, translator *common.ErrorTranslator) {
	listHandler := post.NewListHandler(service, translator)
	createHandler := post.NewCreateHandler(service, translator)
	getHandler := post.NewGetHandler(service, translator)
	updateHandler := post.NewUpdateHandler(service, translator)
	deleteHandler := post.NewDeleteHandler(service, translator)

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", listHandler.HandleList)
		r.Post("/", createHandler.HandleCreate)
		r.Get("/{id}", getHandler.HandleGet)
		r.Put("/{id}", updateHandler.HandleUpdate)
		r.Delete("/{id}", deleteHandler.HandleDelete)
	})
}
