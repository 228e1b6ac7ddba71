package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/aisle/api"
	api_i "github.com/beka-birhanu/aisle/api/i"
	routeapi "github.com/beka-birhanu/aisle/api/route"
	sessionapi "github.com/beka-birhanu/aisle/api/session"
	"github.com/beka-birhanu/aisle/catalog"
	"github.com/beka-birhanu/aisle/config"
	logger "github.com/beka-birhanu/aisle/infrastruture/log"
	"github.com/beka-birhanu/aisle/infrastruture/repo"
	"github.com/beka-birhanu/aisle/infrastruture/routecache"
	"github.com/beka-birhanu/aisle/infrastruture/sessionstore"
	"github.com/beka-birhanu/aisle/infrastruture/token"
	"github.com/beka-birhanu/aisle/maze"
	"github.com/beka-birhanu/aisle/render"
	"github.com/beka-birhanu/aisle/service"
	"github.com/beka-birhanu/aisle/service/i"
	"github.com/beka-birhanu/aisle/solver"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	appLogger         i.Logger
	redisClient       *redis.Client
	mongoClient       *mongo.Client
	storeMaze         *maze.Maze
	storeCatalog      *catalog.Catalog
	routeCache        i.RouteCache
	tripRepo          i.TripRepo
	sessionStore      i.SessionStore
	sessionTokenizer  i.Tokenizer
	routeService      *service.RouteService
	sessionService    i.SessionManager
	routeController   api_i.Controller
	sessionController api_i.Controller
	router            *api.Router
)

func newLogger(prefix, color string) i.Logger {
	l, err := logger.New(prefix, color, os.Stdout,
		logger.WithLevelColors(config.LogInfoColor, config.LogWarningColor, config.LogErrorColor))
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	return l
}

func initStore() {
	var err error
	storeMaze, err = maze.Store()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading store layout: %v", err))
		os.Exit(1)
	}
	storeCatalog, err = catalog.Default()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading catalog: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Store layout loaded: %dx%d cells, %d catalog items",
		storeMaze.Width(), storeMaze.Height(), len(storeCatalog.Items())))
}

func initRedis(ctx context.Context) {
	if config.Envs.RedisAddr == "" {
		appLogger.Warning("REDIS_ADDR not set: sessions stay in memory, route cache disabled")
		return
	}
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
		DB:       config.Envs.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initMongo(ctx context.Context) {
	if config.Envs.MongoURI == "" {
		appLogger.Warning("MONGO_URI not set: trip log disabled")
		return
	}
	var err error
	mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(config.Envs.MongoURI))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initStorage() {
	var err error
	if redisClient != nil {
		sessionStore, err = sessionstore.NewRedisStore(redisClient, config.Envs.SessionTTL)
		if err != nil {
			appLogger.Error(fmt.Sprintf("Creating session store: %v", err))
			os.Exit(1)
		}
		routeCache, err = routecache.NewRedisCache(redisClient, config.Envs.RouteCacheTTL)
		if err != nil {
			appLogger.Error(fmt.Sprintf("Creating route cache: %v", err))
			os.Exit(1)
		}
	} else {
		sessionStore = sessionstore.NewMemoryStore()
	}

	if mongoClient != nil {
		tripRepo = repo.NewTripRepo(mongoClient, config.Envs.DBName, "trips")
	}
	appLogger.Info("Storage initialized")
}

func initRouteService() {
	strategy, err := solver.ParseStrategy(config.Envs.SolverStrategy)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Reading SOLVER_STRATEGY: %v", err))
		os.Exit(1)
	}

	routeService, err = service.NewRouteService(storeMaze, storeCatalog, render.New(), newLogger("ROUTE", config.ColorCyan), &service.RouteOptions{
		Timeout:      config.Envs.ComputeTimeout,
		MaxWaypoints: config.Envs.MaxWaypoints,
		Strategy:     strategy,
		Cache:        routeCache,
		Trips:        tripRepo,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating route service: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Route service initialized (%s, max %d items)", strategy, config.Envs.MaxWaypoints))
}

func initSessionService() {
	sessionTokenizer = token.NewJwtService(config.Envs.SessionSecret, config.Envs.SessionIssuer)

	var err error
	sessionService, err = service.NewSessionService(service.SessionConfig{
		Store:     sessionStore,
		Routes:    routeService,
		Catalog:   storeCatalog,
		Tokenizer: sessionTokenizer,
		TokenTTL:  config.Envs.SessionTTL,
		Logger:    newLogger("SESSION", config.ColorMagenta),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Session service initialized")
}

func initControllers() {
	routeController = routeapi.NewController(routeService)
	sessionController = sessionapi.NewController(sessionService)
	appLogger.Info("Controllers initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{routeController, sessionController},
		AuthorizationMiddleware: sessionapi.Authorize(sessionTokenizer),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	appLogger = newLogger("APP", config.ColorBlue)

	initStore()
	initRedis(ctx)
	initMongo(ctx)
	defer func() {
		if redisClient != nil {
			_ = redisClient.Close()
		}
		if mongoClient != nil {
			_ = mongoClient.Disconnect(context.Background())
		}
	}()

	initStorage()
	initRouteService()
	initSessionService()
	initControllers()
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
