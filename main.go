package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justin-mavity/usermodel/auth"
	"github.com/justin-mavity/usermodel/config"
	"github.com/justin-mavity/usermodel/controllers"
	"github.com/justin-mavity/usermodel/database"
	grpcserver "github.com/justin-mavity/usermodel/grpc_server"
	"github.com/justin-mavity/usermodel/interceptors"
	userpb "github.com/justin-mavity/usermodel/proto/user"
	"github.com/justin-mavity/usermodel/registry"
	"github.com/justin-mavity/usermodel/repositories"
	"github.com/justin-mavity/usermodel/services"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// requestLogFilter logs every HTTP request with method, path, status and latency.
func requestLogFilter(logger *zap.Logger) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		start := time.Now()
		chain.ProcessFilter(req, resp)
		logger.Info("Request",
			zap.String("method", req.Request.Method),
			zap.String("path", req.Request.URL.Path),
			zap.Int("status_code", resp.StatusCode()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", req.Request.RemoteAddr),
		)
	}
}

func main() {
	config.InitConfig()

	var logger *zap.Logger
	switch config.AppConfig.LogLevel {
	case "debug":
		logger, _ = zap.NewDevelopment()
	default:
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	auth.SetSigningKey([]byte(config.AppConfig.JwtSecret))

	db := database.InitDB()

	userRepo := repositories.NewUserRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	userService := services.NewUserService(db, userRepo, roleRepo)
	roleService := services.NewRoleService(roleRepo)
	userController := controllers.NewUserController(userService)
	roleController := controllers.NewRoleController(roleService)

	// --- HTTP surface ---
	ws := new(restful.WebService)
	ws.Path("/").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	ws.Route(ws.POST("/login").To(auth.LoginRouteHandler(userRepo)).
		Doc("Exchange username and password for a bearer token").
		Reads(auth.LoginCredentials{}).
		Returns(http.StatusOK, "Token issued", auth.LoginResponse{}).
		Returns(http.StatusUnauthorized, "Invalid credentials", nil))

	userController.RegisterRoutes(ws)
	roleController.RegisterRoutes(ws)

	container := restful.NewContainer()
	container.Filter(requestLogFilter(logger))
	container.DoNotRecover(false)
	container.RecoverHandler(func(panicReason interface{}, w http.ResponseWriter) {
		logger.Error("Recovered from panic", zap.Any("reason", panicReason))
		w.WriteHeader(http.StatusInternalServerError)
	})
	container.Add(ws)

	apiConfig := restfulspec.Config{
		WebServices: container.RegisteredWebServices(),
		APIPath:     "/apidocs.json",
	}
	container.Add(restfulspec.NewOpenAPIService(apiConfig))

	// --- gRPC surface ---
	grpcAddr := fmt.Sprintf(":%d", config.AppConfig.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		logger.Fatal("Failed to listen for gRPC", zap.String("addr", grpcAddr), zap.Error(err))
	}
	grpcSrv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptors.ZapLoggingInterceptor(logger),
			interceptors.AuthInterceptor(),
		),
	)
	userpb.RegisterUserServiceServer(grpcSrv, grpcserver.NewUserServiceServer(userService))

	// Health service for the consul check. The auth interceptor waves its
	// methods through.
	healthpb.RegisterHealthServer(grpcSrv, health.NewServer())

	go func() {
		sugar.Infow("Starting gRPC server", "addr", grpcAddr)
		if err := grpcSrv.Serve(lis); err != nil {
			logger.Fatal("gRPC server stopped", zap.Error(err))
		}
	}()

	// --- Service registration ---
	var reg registry.ServiceRegistry
	grpcServiceName := config.AppConfig.ServiceName + "-grpc"
	serviceID := fmt.Sprintf("%s-%d", grpcServiceName, config.AppConfig.GRPCPort)
	if config.AppConfig.Consul.Enabled {
		reg, err = registry.NewConsulRegistry(sugar)
		if err != nil {
			logger.Fatal("Failed to create service registry", zap.Error(err))
		}
		hostname, _ := os.Hostname()
		check := registry.CreateGRPCCheck(serviceID, fmt.Sprintf("%s:%d", hostname, config.AppConfig.GRPCPort), "10s", "1s", false)
		if err := reg.Register(serviceID, grpcServiceName, hostname, config.AppConfig.GRPCPort, []string{"grpc"}, check); err != nil {
			logger.Fatal("Failed to register service", zap.Error(err))
		}
	}

	httpAddr := fmt.Sprintf(":%d", config.AppConfig.HTTPPort)
	httpSrv := &http.Server{
		Addr:    httpAddr,
		Handler: container,
	}

	go func() {
		sugar.Infow("Starting HTTP server", "addr", httpAddr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server stopped", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugar.Infow("Shutting down")

	if reg != nil {
		if err := reg.Deregister(serviceID); err != nil {
			sugar.Warnw("Failed to deregister service", "error", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		sugar.Warnw("HTTP shutdown error", "error", err)
	}
	grpcSrv.GracefulStop()
	sugar.Infow("Server exited")
}
