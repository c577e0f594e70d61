package deps

import (
	"blogapi/internal/config"
	dl "blogapi/internal/core/domain/logging"
	passwordreset "blogapi/internal/core/domain/password_reset"
	"blogapi/internal/core/domain/post"
	drl "blogapi/internal/core/domain/rate_limiter"
	duow "blogapi/internal/core/domain/unit_of_work"
	"blogapi/internal/core/domain/user"
	dbpasswordreset "blogapi/internal/db/password_reset"
	dbpost "blogapi/internal/db/post"
	uow "blogapi/internal/db/unit_of_work"
	dbuser "blogapi/internal/db/user"
	"blogapi/internal/implementations/email"
	errorreporter "blogapi/internal/implementations/error_reporter"
	"blogapi/internal/implementations/logging"
	passwordhasher "blogapi/internal/implementations/password_hasher"
	postevents "blogapi/internal/implementations/post_events"
	randomstringgenerator "blogapi/internal/implementations/random_string_generator"
	ratelimiter "blogapi/internal/implementations/rate_limiter"
	"blogapi/internal/implementations/session"
	"blogapi/internal/rabbitmq"
	passwordresetnotifier "blogapi/internal/rabbitmq/publishers/password_reset_notifier"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/r3labs/sse/v2"
)

type Deps struct {
	Config        *config.Config
	AwsConfig     aws.Config
	Logger        dl.Logger
	ErrorReporter dl.ErrorReporter

	DB        *pgxpool.Pool
	Redis     *redis.Client
	Rabbitmq  *rabbitmq.Connection
	SseServer *sse.Server

	Now func() time.Time

	UnitOfWork              duow.UnitOfWork
	UserRepository          user.UserRepository
	SessionRepository       user.SessionRepository
	PasswordResetRepository passwordreset.Repository
	PostRepository          post.Repository

	RateLimiter drl.RateLimiter

	EmailSender *email.EmailSender

	PasswordHasher        user.PasswordHasher
	SessionTokenGenerator user.SessionTokenGenerator

	PasswordResetSecretGenerator passwordreset.SecretGenerator
	PasswordResetSecretHasher    passwordreset.SecretHasher
	PasswordResetNotifier        passwordreset.Notifier

	PostEventPublisher post.EventPublisher
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()
	closeSseServer := deps.initSseServer()

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.SessionRepository = dbuser.NewPgxSessionRepository(deps.DB)
	deps.PasswordResetRepository = dbpasswordreset.NewPgxRepository(deps.DB)
	deps.PostRepository = dbpost.NewPgxRepository(deps.DB)

	deps.EmailSender = email.NewEmailSender(
		deps.AwsConfig,
		deps.Config.AwsEmailSender,
		deps.Config.AwsEmailPasswordResetTemplate,
		deps.Config.AwsEmailPasswordResetUrl,
	)

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.SessionTokenGenerator = session.NewUUID()
	deps.PasswordResetSecretGenerator = randomstringgenerator.NewGenerator()
	deps.PasswordResetSecretHasher = passwordhasher.NewBcryptSecretHasher(deps.Config.BcryptHasherCost)
	deps.PostEventPublisher = postevents.NewSSE(deps.SseServer)

	closeNotifier := deps.initPasswordResetNotifier()
	flushSentry := deps.initSentry()

	return deps, func() {
		closeFuncs := []func(){
			closeSseServer,
			closeNotifier,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			closeLogger,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

// initPasswordResetNotifier picks how reset secrets leave the API process:
// sent inline through SES or queued for the mailer worker.
func (deps *Deps) initPasswordResetNotifier() func() {
	if deps.Config.PasswordResetNotifier == config.NOTIFIER_SES {
		deps.PasswordResetNotifier = deps.EmailSender
		return func() {}
	}

	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}
	if err := rabbitmqChannel.DeclareQueue(deps.Config.PasswordResetQueue); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}

	deps.PasswordResetNotifier = passwordresetnotifier.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.PasswordResetQueue,
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down password reset notifier.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Password reset notifier shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoStream = false
	deps.SseServer.AutoReplay = false
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}

func (deps *Deps) initSentry() func() {
	deps.ErrorReporter = errorreporter.NewSentry(sentry.CurrentHub())

	if deps.Config.SentryDsn != nil {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn.String(),
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}
