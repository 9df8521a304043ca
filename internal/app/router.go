package app

import (
	"fmt"
	"time"

	"rawtails/internal/config"
	"rawtails/internal/metrics"
	"rawtails/internal/middleware"
	"rawtails/internal/model"
	"rawtails/internal/repository"
	"rawtails/internal/service"
	"rawtails/internal/util"
	"rawtails/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewRouter(cfg *config.Config, log *logrus.Logger) *gin.Engine {
	if cfg.ServerPort == "5000" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(corsMiddleware(cfg.ClientURL))

	m := metrics.New("rawtails")
	r.Use(m.Middleware())

	if cfg.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		r.Use(rateLimiter.Middleware())
		log.WithFields(logrus.Fields{
			"rps":   cfg.RateLimitRPS,
			"burst": cfg.RateLimitBurst,
		}).Info("Rate limiting enabled")
	}

	db, err := initDB(cfg)
	if err != nil {
		panic("Failed to connect to database: " + err.Error())
	}

	if err := db.AutoMigrate(
		&model.Post{},
		&model.Recipe{},
		&model.Comment{},
		&model.Like{},
		&model.Save{},
		&model.SuccessStory{},
		&model.HealthRecord{},
		&model.Notification{},
	); err != nil {
		panic("Failed to migrate database: " + err.Error())
	}

	// Likes and saves reference posts, recipes or comments through
	// target_id, so any FK GORM guessed onto that column must go.
	fixPolymorphicConstraints(db, log, "likes")
	fixPolymorphicConstraints(db, log, "saves")

	redisClient := initRedisWithRetry(cfg, log)
	rabbitMQ := initRabbitMQWithRetry(cfg, log)

	wsHub := websocket.NewHub(log)
	go wsHub.Run()
	log.Info("WebSocket hub started")

	likeRepo := repository.NewLikeRepository(db, redisClient)
	saveRepo := repository.NewSaveRepository(db, redisClient)
	commentRepo := repository.NewCommentRepository(db, redisClient)
	postRepo := repository.NewPostRepository(db, redisClient)
	recipeRepo := repository.NewRecipeRepository(db, redisClient)
	storyRepo := repository.NewStoryRepository(db, redisClient)
	healthRepo := repository.NewHealthRecordRepository(db, redisClient)
	notificationRepo := repository.NewNotificationRepository(db, redisClient)

	engagementService := service.NewEngagementService(notificationRepo, rabbitMQ, wsHub, log)
	likeService := service.NewLikeService(likeRepo, postRepo, recipeRepo, commentRepo, engagementService)
	saveService := service.NewSaveService(saveRepo, postRepo, recipeRepo)
	commentService := service.NewCommentService(commentRepo, likeRepo, postRepo, recipeRepo, engagementService)
	recipeService := service.NewRecipeService(recipeRepo, likeRepo, saveRepo, commentRepo)
	postService := service.NewPostService(postRepo, likeRepo, saveRepo, commentRepo)
	storyService := service.NewStoryService(storyRepo, likeRepo)
	healthService := service.NewHealthService(healthRepo)

	if rabbitMQ != nil {
		worker := service.NewEngagementWorker(engagementService, rabbitMQ, log)
		if err := worker.Start(); err != nil {
			log.WithError(err).Warn("Failed to start engagement worker, events handled inline")
		}
	} else {
		log.Warn("Engagement worker not started, RabbitMQ unavailable; events handled inline")
	}

	likeHandler := NewLikeHandler(likeService)
	saveHandler := NewSaveHandler(saveService)
	commentHandler := NewCommentHandler(commentService)
	recipeHandler := NewRecipeHandler(recipeService)
	postHandler := NewPostHandler(postService)
	storyHandler := NewStoryHandler(storyService)
	healthHandler := NewHealthHandler(healthService)
	notificationHandler := NewNotificationHandler(engagementService)

	api := r.Group("/api")
	api.Use(middleware.Identity())
	{
		community := api.Group("/community")
		{
			// Engagement routes shared by every content type. The
			// collection segment is validated in the handlers.
			community.POST("/:type/:id/like", likeHandler.SetLiked)
			community.POST("/:type/:id/save", saveHandler.SetSaved)
			community.GET("/:type/:id/comments", commentHandler.List)
			community.POST("/:type/:id/comments", commentHandler.Create)

			// Gin cannot mix literal and param segments at the same
			// depth, so collection CRUD dispatches on :type too.
			community.GET("/:type", collectionDispatch(map[string]gin.HandlerFunc{
				"posts":   postHandler.List,
				"recipes": recipeHandler.List,
			}))
			community.POST("/:type", collectionDispatch(map[string]gin.HandlerFunc{
				"posts":   postHandler.Create,
				"recipes": recipeHandler.Create,
			}))
			community.GET("/:type/:id", collectionDispatch(map[string]gin.HandlerFunc{
				"posts":   postHandler.Get,
				"recipes": recipeHandler.Get,
			}))
			community.PATCH("/:type/:id", collectionDispatch(map[string]gin.HandlerFunc{
				"recipes": recipeHandler.Update,
			}))
			community.DELETE("/:type/:id", collectionDispatch(map[string]gin.HandlerFunc{
				"posts":   postHandler.Delete,
				"recipes": recipeHandler.Delete,
			}))
		}

		stories := api.Group("/success-stories")
		{
			stories.GET("", storyHandler.List)
			stories.POST("", storyHandler.Create)
			stories.POST("/:id/like", storyHandler.SetLiked)
		}

		health := api.Group("/health")
		{
			health.GET("/records", healthHandler.List)
			health.POST("/records", healthHandler.Create)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", notificationHandler.List)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
			notifications.POST("/read-all", notificationHandler.MarkAllRead)
		}
	}

	r.GET("/ws", func(c *gin.Context) {
		websocket.ServeWS(wsHub).ServeHTTP(c.Writer, c.Request)
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/metrics", m.Handler())

	return r
}

// collectionDispatch routes a request by its :type segment, rejecting
// segments with no handler.
func collectionDispatch(handlers map[string]gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h, ok := handlers[c.Param("type")]; ok {
			h(c)
			return
		}
		util.NotFound(c, "unknown content type")
	}
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = "host=" + cfg.PostgresHost +
			" port=" + cfg.PostgresPort +
			" user=" + cfg.PostgresUser +
			" password=" + cfg.PostgresPassword +
			" dbname=" + cfg.PostgresDB +
			" sslmode=" + cfg.PostgresSSLMode
	}

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// initRedisWithRetry attempts to connect to Redis with exponential backoff.
// The server runs without caching when Redis never comes up.
func initRedisWithRetry(cfg *config.Config, log *logrus.Logger) *util.RedisClient {
	maxRetries := 5
	initialDelay := 2 * time.Second
	maxDelay := 30 * time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		redisClient, err := util.NewRedisClient(cfg)
		if err == nil {
			log.WithField("attempt", attempt).Info("Redis connected")
			return redisClient
		}

		if attempt < maxRetries {
			delay := initialDelay * time.Duration(1<<uint(attempt-1))
			if delay > maxDelay {
				delay = maxDelay
			}
			log.WithError(err).WithFields(logrus.Fields{
				"attempt": attempt,
				"retryIn": delay.String(),
			}).Warn("Failed to connect to Redis")
			time.Sleep(delay)
		} else {
			log.WithError(err).Warn("Redis unavailable, caching disabled")
		}
	}

	return nil
}

// initRabbitMQWithRetry attempts to connect to RabbitMQ with exponential
// backoff. Engagement events are handled inline when it never comes up.
func initRabbitMQWithRetry(cfg *config.Config, log *logrus.Logger) *util.RabbitMQClient {
	maxRetries := 5
	initialDelay := 2 * time.Second
	maxDelay := 30 * time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		rabbitMQ, err := util.NewRabbitMQClient(cfg)
		if err == nil {
			log.WithField("attempt", attempt).Info("RabbitMQ connected")
			return rabbitMQ
		}

		if attempt < maxRetries {
			delay := initialDelay * time.Duration(1<<uint(attempt-1))
			if delay > maxDelay {
				delay = maxDelay
			}
			log.WithError(err).WithFields(logrus.Fields{
				"attempt": attempt,
				"retryIn": delay.String(),
			}).Warn("Failed to connect to RabbitMQ")
			time.Sleep(delay)
		} else {
			log.WithError(err).Warn("RabbitMQ unavailable, engagement events handled inline")
		}
	}

	return nil
}

// fixPolymorphicConstraints drops any foreign key GORM created on a
// polymorphic target_id column, which can point at several tables.
func fixPolymorphicConstraints(db *gorm.DB, log *logrus.Logger, table string) {
	query := `
		SELECT constraint_name
		FROM information_schema.table_constraints
		WHERE table_name = ?
		AND constraint_type = 'FOREIGN KEY'
		AND constraint_name IN (
			SELECT constraint_name
			FROM information_schema.key_column_usage
			WHERE table_name = ?
			AND column_name = 'target_id'
		)
	`

	var constraints []struct {
		ConstraintName string `gorm:"column:constraint_name"`
	}

	if err := db.Raw(query, table, table).Scan(&constraints).Error; err != nil {
		log.WithError(err).WithField("table", table).Warn("Failed to query foreign key constraints")
		return
	}

	for _, constraint := range constraints {
		drop := fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT IF EXISTS %s", table, constraint.ConstraintName)
		if err := db.Exec(drop).Error; err != nil {
			log.WithError(err).WithField("constraint", constraint.ConstraintName).Warn("Failed to drop constraint")
		} else {
			log.WithField("constraint", constraint.ConstraintName).Info("Dropped polymorphic foreign key constraint")
		}
	}
}

func corsMiddleware(clientURL string) gin.HandlerFunc {
	allowedOrigins := []string{
		clientURL,
		"http://localhost:3000",
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", clientURL)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With, x-user-id")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
