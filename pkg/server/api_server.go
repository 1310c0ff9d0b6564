package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/qa-service/pkg/config"
	handlers "github.com/NeuralTrust/qa-service/pkg/handlers/http"
	"github.com/NeuralTrust/qa-service/pkg/infra/prometheus"
	"github.com/NeuralTrust/qa-service/pkg/middleware"
	"github.com/NeuralTrust/qa-service/pkg/server/router"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type (
	APIServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	APIServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewAPIServer(di APIServerDI) *APIServer {
	prometheus.Initialize(prometheus.MetricsConfig{
		EnableHTTP:       di.Config.Metrics.Enabled,
		EnableModeration: di.Config.Metrics.Enabled && di.Config.Metrics.EnableModeration,
	})

	s := &APIServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
	s.setup()
	return s
}

func (s *APIServer) setup() {
	s.Router.Use(
		s.middlewareTransport.PanicRecoverMiddleware.Middleware(),
		s.middlewareTransport.CORSMiddleware.Middleware(),
		s.middlewareTransport.MetricsMiddleware.Middleware(),
	)
	s.setupHealthCheck()
	s.WithRouters(router.NewAPIRouter(&s.middlewareTransport, s.handlerTransport))
}

func (s *APIServer) Run() error {
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf(":%d", s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("Starting API server")
	return s.Router.Listen(addr)
}

func (s *APIServer) Shutdown() error {
	return errors.Join(
		s.Router.ShutdownWithTimeout(shutdownTimeout),
		s.shutdownMetrics(),
	)
}
