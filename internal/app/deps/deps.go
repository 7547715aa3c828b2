package deps

import (
	"context"
	"fmt"
	"onboarding/internal/config"
	"onboarding/internal/core/domain/clock"
	dl "onboarding/internal/core/domain/logging"
	drl "onboarding/internal/core/domain/rate_limiter"
	"onboarding/internal/core/domain/token"
	duow "onboarding/internal/core/domain/unit_of_work"
	"onboarding/internal/core/domain/user"
	"onboarding/internal/db"
	dbtoken "onboarding/internal/db/token"
	uow "onboarding/internal/db/unit_of_work"
	dbuser "onboarding/internal/db/user"
	"onboarding/internal/implementations/email"
	"onboarding/internal/implementations/identity"
	"onboarding/internal/implementations/logging"
	"onboarding/internal/implementations/mailbox"
	passwordhasher "onboarding/internal/implementations/password_hasher"
	randomstringgenerator "onboarding/internal/implementations/random_string_generator"
	ratelimiter "onboarding/internal/implementations/rate_limiter"
	"onboarding/internal/rabbitmq"
	emailqueue "onboarding/internal/rabbitmq/publishers/email_queue"
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

const TokenLength = 32

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB        *pgxpool.Pool
	Redis     *redis.Client
	Rabbitmq  *rabbitmq.Connection
	SseServer *sse.Server

	Clock clock.Clock

	UnitOfWork                  duow.UnitOfWork
	UserRepository              user.UserRepository
	ConfirmationTokenRepository user.ConfirmationTokenRepository
	ResetTokenRepository        user.ResetTokenRepository

	RateLimiter drl.RateLimiter

	EmailSender             *email.EmailSender
	Mailbox                 *mailbox.Mailbox
	ConfirmationTokenSender user.ConfirmationTokenSender
	ResetTokenSender        user.ResetTokenSender

	IdentityGenerator       user.IdentityGenerator
	PasswordHasher          user.PasswordHasher
	ConfirmationTokenIssuer *token.Issuer
	ResetTokenIssuer        *token.Issuer
}

// InitDeps builds everything the HTTP server needs.
func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	deps.migrate()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeSseServer := deps.initSseServer()

	deps.Clock = clock.NewSystem()

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.ConfirmationTokenRepository = dbtoken.NewPgxConfirmationTokenRepository(deps.DB)
	deps.ResetTokenRepository = dbtoken.NewPgxResetTokenRepository(deps.DB)

	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Clock)
	deps.IdentityGenerator = identity.NewUUID()
	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.ConfirmationTokenIssuer = token.NewConfirmationIssuer(
		randomstringgenerator.NewGenerator(TokenLength),
		token.After(deps.Config.ConfirmationTokenTTL),
		deps.Clock,
	)
	deps.ResetTokenIssuer = token.NewResetIssuer(
		randomstringgenerator.NewGenerator(TokenLength),
		token.After(deps.Config.PasswordResetTokenTTL),
		deps.Clock,
	)

	closeEmailDelivery := deps.initEmailDelivery()
	flushSentry := deps.initSentry()

	return deps, shutdownFunc(
		closeSseServer,
		closeEmailDelivery,
		closeRedisClient,
		closePgxPool,
		closeLogger,
		flushSentry,
	)
}

// InitMailerDeps builds what the queue consumer needs to deliver emails.
func InitMailerDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closeRabbitmqConn := deps.initRabbitmqConnection()
	deps.initEmailSender()
	flushSentry := deps.initSentry()

	return deps, shutdownFunc(closeRabbitmqConn, closeLogger, flushSentry)
}

func shutdownFunc(closeFuncs ...func()) func() {
	return func() {
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

func (deps *Deps) migrate() {
	if err := db.Migrate(deps.Config.PostgresqlURL, deps.Config.MigrationsPath); err != nil {
		deps.Logger.Error(context.Background(), "Could not apply DB migrations.", dl.Entry("err", err))
		panic(err)
	}
	deps.Logger.Info(context.Background(), "DB migrations applied.", dl.Entry("path", deps.Config.MigrationsPath))
}

func (deps *Deps) initPgxPool() func() {
	pool, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = pool
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		pool.Close()
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

func (deps *Deps) initEmailSender() {
	deps.EmailSender = email.NewEmailSender(
		deps.AwsConfig,
		email.Settings{
			Sender:                deps.Config.AwsEmailSender,
			ConfirmationTemplate:  deps.Config.AwsEmailConfirmationTemplate,
			ConfirmationUrl:       deps.Config.AwsEmailConfirmationUrl,
			PasswordResetTemplate: deps.Config.AwsEmailPasswordResetTemplate,
			PasswordResetBaseUrl:  deps.Config.AwsEmailPasswordResetBaseUrl,
		},
	)
}

func (deps *Deps) initEmailDelivery() func() {
	switch deps.Config.EmailDelivery {
	case config.EmailDeliveryMailbox:
		deps.Mailbox = mailbox.New(deps.SseServer, mailbox.DefaultStream)
		deps.ConfirmationTokenSender = deps.Mailbox
		deps.ResetTokenSender = deps.Mailbox
		return func() {}
	case config.EmailDeliveryRabbitmq:
		closeRabbitmqConn := deps.initRabbitmqConnection()
		closeEmailQueue := deps.initRabbitmqEmailQueue()
		return func() {
			closeEmailQueue()
			closeRabbitmqConn()
		}
	default:
		deps.initEmailSender()
		deps.ConfirmationTokenSender = deps.EmailSender
		deps.ResetTokenSender = deps.EmailSender
		return func() {}
	}
}

func (deps *Deps) initRabbitmqEmailQueue() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}
	if err := rabbitmqChannel.DeclareQueue(deps.Config.RabbitmqEmailQueue); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}

	publisher := emailqueue.New(deps.Logger, rabbitmqChannel, deps.Config.RabbitmqEmailQueue)
	deps.ConfirmationTokenSender = publisher
	deps.ResetTokenSender = publisher

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down email queue publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Email queue publisher shut down.")
	}
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn,
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
