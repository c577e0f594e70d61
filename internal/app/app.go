package app

import (
	"blogapi/internal/app/deps"
	"blogapi/internal/app/services"
	"blogapi/internal/http/handlers/auth"
	forgotpassword "blogapi/internal/http/handlers/auth/forgot_password"
	loginwithemail "blogapi/internal/http/handlers/auth/log_in_with_email"
	logout "blogapi/internal/http/handlers/auth/log_out"
	"blogapi/internal/http/handlers/auth/me"
	resetpassword "blogapi/internal/http/handlers/auth/reset_password"
	signupwithemail "blogapi/internal/http/handlers/auth/sign_up_with_email"
	createpost "blogapi/internal/http/handlers/posts/create_post"
	deletepost "blogapi/internal/http/handlers/posts/delete_post"
	editpost "blogapi/internal/http/handlers/posts/edit_post"
	getpost "blogapi/internal/http/handlers/posts/get_post"
	listposts "blogapi/internal/http/handlers/posts/list_posts"
	postevents "blogapi/internal/http/handlers/posts/post_events"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	return &http.Server{
		Handler: NewRouter(deps, s),
		Addr:    fmt.Sprintf("0.0.0.0:%d", deps.Config.Port),
	}
}

func NewRouter(deps *deps.Deps, s *services.Services) http.Handler {
	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/register", signupwithemail.New(s.SignUpWithEmail))
	authRouter.Method(http.MethodPost, "/login", loginwithemail.New(s.LogInWithEmail))
	authRouter.Method(http.MethodPost, "/logout", logout.New(s.LogOut))
	authRouter.Method(http.MethodGet, "/me", me.New(s.GetUserBySessionToken))
	authRouter.Method(
		http.MethodPost,
		"/forgot-password",
		forgotpassword.New(s.RequestPasswordReset, deps.Config.PasswordResetConcealUnknownEmail),
	)
	authRouter.Method(http.MethodPost, "/reset-password", resetpassword.New(s.ConfirmPasswordReset))

	postsRouter := chi.NewRouter()
	postsRouter.Method(http.MethodGet, "/events", postevents.New(deps.Logger, deps.SseServer))
	postsRouter.Group(func(r chi.Router) {
		r.Use(auth.SetAuthTokenToContext)
		r.Method(http.MethodGet, "/", listposts.New(s.ListPosts))
		r.Method(http.MethodPost, "/", createpost.New(s.CreatePost))
		r.Method(http.MethodPut, "/", editpost.New(s.EditPost))
		r.Method(http.MethodGet, "/{postID:[0-9]+}", getpost.New(s.GetPost))
		r.Method(http.MethodPut, "/{postID:[0-9]+}", editpost.New(s.EditPost))
		r.Method(http.MethodDelete, "/{postID:[0-9]+}", deletepost.New(s.DeletePost))
	})

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Mount("/posts", postsRouter)

	return router
}
