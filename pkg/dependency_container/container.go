package dependency_container

import (
	"time"

	appAccount "github.com/NeuralTrust/qa-service/pkg/app/account"
	appAnswer "github.com/NeuralTrust/qa-service/pkg/app/answer"
	appQuestion "github.com/NeuralTrust/qa-service/pkg/app/question"
	"github.com/NeuralTrust/qa-service/pkg/config"
	domainAccount "github.com/NeuralTrust/qa-service/pkg/domain/account"
	domainAnswer "github.com/NeuralTrust/qa-service/pkg/domain/answer"
	domainQuestion "github.com/NeuralTrust/qa-service/pkg/domain/question"
	handlers "github.com/NeuralTrust/qa-service/pkg/handlers/http"
	"github.com/NeuralTrust/qa-service/pkg/infra/auth/jwt"
	"github.com/NeuralTrust/qa-service/pkg/infra/auth/password"
	"github.com/NeuralTrust/qa-service/pkg/infra/cache"
	"github.com/NeuralTrust/qa-service/pkg/infra/database"
	"github.com/NeuralTrust/qa-service/pkg/infra/httpx"
	"github.com/NeuralTrust/qa-service/pkg/infra/moderation"
	"github.com/NeuralTrust/qa-service/pkg/infra/prometheus"
	"github.com/NeuralTrust/qa-service/pkg/infra/repository"
	"github.com/NeuralTrust/qa-service/pkg/middleware"
	"github.com/NeuralTrust/qa-service/pkg/version"
	"github.com/sirupsen/logrus"
)

type Container struct {
	Cache               cache.Client
	Moderator           moderation.Moderator
	JWTManager          jwt.Manager
	QuestionRepository  domainQuestion.Repository
	AnswerRepository    domainAnswer.Repository
	AccountRepository   domainAccount.Repository
	HandlerTransport    handlers.HandlerTransport
	MiddlewareTransport middleware.Transport
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	DB     *database.DB
}

func NewContainer(di ContainerDI) (*Container, error) {
	var cacheInstance cache.Client
	if di.Cfg.Redis.Enabled {
		var err error
		cacheInstance, err = cache.NewClient(cache.Config{
			Host:     di.Cfg.Redis.Host,
			Port:     di.Cfg.Redis.Port,
			Password: di.Cfg.Redis.Password,
			DB:       di.Cfg.Redis.DB,
			TLS:      di.Cfg.Redis.TLS,
		}, di.Logger)
		if err != nil {
			// Moderation results are only cached, so the service can run without redis.
			di.Logger.WithError(err).Warn("redis unavailable, moderation results will not be cached")
			cacheInstance = nil
		}
	}

	moderator := NewModerator(di.Cfg.Moderation, cacheInstance, di.Logger)

	// repository
	questionRepository := repository.NewQuestionRepository(di.DB.DB)
	answerRepository := repository.NewAnswerRepository(di.DB.DB)
	accountRepository := repository.NewAccountRepository(di.DB.DB)

	// service
	jwtManager := jwt.NewJwtManager(&di.Cfg.Server)
	questionService := appQuestion.NewService(questionRepository)
	accountService := appAccount.NewService(accountRepository, jwtManager, password.DefaultParams, di.Logger)
	answerCreator := appAnswer.NewCreator(answerRepository, questionRepository, moderator, di.Logger)

	handlerTransport := handlers.HandlerTransport{
		// Question
		ListQuestionsHandler:  handlers.NewListQuestionsHandler(di.Logger, questionRepository),
		GetQuestionHandler:    handlers.NewGetQuestionHandler(di.Logger, questionRepository),
		CreateQuestionHandler: handlers.NewCreateQuestionHandler(di.Logger, questionService),
		UpdateQuestionHandler: handlers.NewUpdateQuestionHandler(di.Logger, questionService),
		DeleteQuestionHandler: handlers.NewDeleteQuestionHandler(di.Logger, questionService),
		// Answer
		ListAnswersHandler: handlers.NewListAnswersHandler(di.Logger, questionRepository, answerRepository),
		AddAnswerHandler:   handlers.NewAddAnswerHandler(di.Logger, answerCreator),
		// Account
		RegistrationHandler: handlers.NewRegistrationHandler(di.Logger, accountService),
		LoginHandler:        handlers.NewLoginHandler(di.Logger, accountService),

		GetVersionHandler: handlers.NewGetVersionHandler(di.Logger),
	}

	middlewareTransport := middleware.Transport{
		AuthMiddleware: middleware.NewAuthMiddleware(di.Logger, jwtManager),
		CORSMiddleware: middleware.NewCORSGlobalMiddleware(
			di.Cfg.Server.CORSOrigins,
			middleware.DefaultCORSMethods,
			middleware.DefaultCORSHeaders,
			"12h",
		),
		MetricsMiddleware:      middleware.NewMetricsMiddleware(),
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(di.Logger),
	}

	return &Container{
		Cache:               cacheInstance,
		Moderator:           moderator,
		JWTManager:          jwtManager,
		QuestionRepository:  questionRepository,
		AnswerRepository:    answerRepository,
		AccountRepository:   accountRepository,
		HandlerTransport:    handlerTransport,
		MiddlewareTransport: middlewareTransport,
	}, nil
}

// NewModerator assembles the moderation chain: fasthttp transport, retrying
// profanity client behind a circuit breaker, optional result cache and
// metrics. A nil cache disables caching, and so does a missing endpoint or
// credential so the configuration error is reported before any lookup.
func NewModerator(cfg config.ModerationConfig, cacheInstance cache.Client, logger *logrus.Logger) moderation.Moderator {
	transport := httpx.NewFastHTTPClient(
		httpx.WithTimeout(cfg.Timeout),
		httpx.WithUserAgent(version.AppName+"/"+version.Version),
	)

	breaker := httpx.NewCircuitBreaker(
		"moderation",
		cfg.BreakerTimeout,
		cfg.BreakerMaxFailures,
		httpx.WithStateLogger(logger),
		httpx.WithSuccessFilter(httpx.IgnoreCanceled),
	)

	clientConfig := moderation.Config{
		BaseURL:         cfg.BaseURL,
		APIKey:          cfg.APIKey,
		CensorCharacter: cfg.CensorCharacter,
	}
	var next moderation.Moderator = moderation.NewProfanityClient(
		logger,
		clientConfig,
		moderation.WithHTTPClient(transport),
		moderation.WithCircuitBreaker(breaker),
		moderation.WithRetryPolicy(moderation.RetryPolicy{
			MaxRetries:          cfg.MaxRetries,
			BaseDelay:           cfg.BaseDelay,
			MaxDelay:            cfg.MaxDelay,
			Multiplier:          cfg.Multiplier,
			RandomizationFactor: cfg.RandomizationFactor,
			RetryOnServerError:  cfg.RetryOnServerError,
		}),
		moderation.WithAttemptObserver(func() {
			if prometheus.Config.EnableModeration {
				prometheus.ModerationAttemptsTotal.Inc()
			}
		}),
	)

	if cacheInstance != nil && cfg.CacheTTL > 0 && clientConfig.Validate() == nil {
		next = moderation.NewCachedModerator(next, cacheInstance, cfg.CacheTTL, logger,
			moderation.WithExchangeTimeout(exchangeBudget(cfg)))
	}
	return moderation.NewInstrumentedModerator(next)
}

// exchangeBudget is the longest a full retry sequence can take: every attempt
// hitting the transport timeout plus every jittered backoff wait at its
// ceiling.
func exchangeBudget(cfg config.ModerationConfig) time.Duration {
	maxWait := time.Duration(float64(cfg.MaxDelay) * (1 + cfg.RandomizationFactor))
	return time.Duration(cfg.MaxRetries+1)*cfg.Timeout + time.Duration(cfg.MaxRetries)*maxWait
}
