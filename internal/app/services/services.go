package services

import (
	"blogapi/internal/app/deps"
	drl "blogapi/internal/core/domain/rate_limiter"
	"blogapi/internal/core/services"
	"blogapi/internal/core/services/auth"
	confirmpasswordreset "blogapi/internal/core/services/confirm_password_reset"
	createpost "blogapi/internal/core/services/create_post"
	deletepost "blogapi/internal/core/services/delete_post"
	deliverpasswordreset "blogapi/internal/core/services/deliver_password_reset"
	editpost "blogapi/internal/core/services/edit_post"
	getpost "blogapi/internal/core/services/get_post"
	getuserbysessiontoken "blogapi/internal/core/services/get_user_by_session_token"
	listposts "blogapi/internal/core/services/list_posts"
	loginwithemail "blogapi/internal/core/services/log_in_with_email"
	logout "blogapi/internal/core/services/log_out"
	purgeexpiredpasswordresets "blogapi/internal/core/services/purge_expired_password_resets"
	ratelimiting "blogapi/internal/core/services/rate_limiting"
	requestpasswordreset "blogapi/internal/core/services/request_password_reset"
	signupwithemail "blogapi/internal/core/services/sign_up_with_email"
)

type Services struct {
	SignUpWithEmail       services.Service[signupwithemail.Input, signupwithemail.Result]
	LogInWithEmail        services.Service[loginwithemail.Input, loginwithemail.Result]
	LogOut                services.Service[logout.Input, logout.Result]
	GetUserBySessionToken services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]

	RequestPasswordReset       services.Service[requestpasswordreset.Input, requestpasswordreset.Result]
	ConfirmPasswordReset       services.Service[confirmpasswordreset.Input, confirmpasswordreset.Result]
	DeliverPasswordReset       services.Service[deliverpasswordreset.Input, deliverpasswordreset.Result]
	PurgeExpiredPasswordResets services.Service[purgeexpiredpasswordresets.Input, purgeexpiredpasswordresets.Result]

	CreatePost services.Service[createpost.Input, createpost.Result]
	EditPost   services.Service[editpost.Input, editpost.Result]
	DeletePost services.Service[deletepost.Input, deletepost.Result]
	GetPost    services.Service[getpost.Input, getpost.Result]
	ListPosts  services.Service[listposts.Input, listposts.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUpWithEmail = signupwithemail.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.SessionTokenGenerator,
		deps.Now,
	)
	s.LogInWithEmail = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		loginwithemail.New(
			deps.Logger,
			deps.UserRepository,
			deps.SessionRepository,
			deps.PasswordHasher,
			deps.SessionTokenGenerator,
			deps.Now,
		),
	)
	s.LogOut = logout.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.GetUserBySessionToken = getuserbysessiontoken.New(
		deps.Logger,
		deps.SessionRepository,
	)

	s.RequestPasswordReset = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 3},
		requestpasswordreset.New(
			deps.Logger,
			deps.ErrorReporter,
			deps.UnitOfWork,
			deps.UserRepository,
			deps.PasswordResetSecretGenerator,
			deps.PasswordResetSecretHasher,
			deps.PasswordResetNotifier,
			deps.Now,
		),
	)
	s.ConfirmPasswordReset = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Minute, Value: 5},
		confirmpasswordreset.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.PasswordResetSecretHasher,
			deps.PasswordHasher,
			deps.Config.PasswordResetTokenTTL(),
			deps.Now,
		),
	)
	s.DeliverPasswordReset = deliverpasswordreset.New(
		deps.Logger,
		deps.ErrorReporter,
		deps.EmailSender,
	)
	s.PurgeExpiredPasswordResets = purgeexpiredpasswordresets.New(
		deps.Logger,
		deps.PasswordResetRepository,
		deps.Config.PasswordResetTokenTTL(),
		deps.Now,
	)

	s.CreatePost = auth.WithAuthentication(
		deps.SessionRepository,
		createpost.New(
			deps.Logger,
			deps.PostRepository,
			deps.PostEventPublisher,
			deps.Now,
		),
	)
	s.EditPost = auth.WithAuthentication(
		deps.SessionRepository,
		editpost.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.PostEventPublisher,
			deps.Now,
		),
	)
	s.DeletePost = auth.WithAuthentication(
		deps.SessionRepository,
		deletepost.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.PostEventPublisher,
		),
	)
	s.GetPost = auth.WithAuthentication(
		deps.SessionRepository,
		getpost.New(
			deps.Logger,
			deps.PostRepository,
		),
	)
	s.ListPosts = auth.WithAuthentication(
		deps.SessionRepository,
		listposts.New(
			deps.Logger,
			deps.PostRepository,
		),
	)

	return s
}
