package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	mysqlRepo "board-backend/internal/repository/mysql"
	myRedisCache "board-backend/internal/repository/redis"
	"board-backend/internal/workers"

	"board-backend/internal/rest"
	"board-backend/internal/rest/middleware"
	"board-backend/internal/rest/request"
	"board-backend/internal/usecase/comment"
	"board-backend/internal/usecase/like"
)

const (
	defaultTimeout         = 30
	defaultAddress         = ":9090"
	defaultCacheDB         = 0
	defaultBloomBitSize    = 10000000
	defaultSyncIntervalSec = 300
	dbMaxRetry             = 10
	dbRetryIntervalSec     = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("notblank", request.NotBlank); err != nil {
			log.Fatal("failed to register validation:", err)
		}
	}

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	likeRepo := mysqlRepo.NewLikeRepository(db)
	likeCounter := myRedisCache.NewLikeCounterCache(client)

	bloomBitSizeStr := os.Getenv("BLOOM_FILTER_SIZE")
	bloomBitSize, err := strconv.ParseUint(bloomBitSizeStr, 10, 64)
	if err != nil {
		log.Printf("failed to parse bloom bit size, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, bloomBitSize)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	syncIntervalStr := os.Getenv("LIKE_SYNC_INTERVAL_SEC")
	syncInterval, err := strconv.Atoi(syncIntervalStr)
	if err != nil {
		log.Println("failed to parse like sync interval, using default interval")
		syncInterval = defaultSyncIntervalSec
	}
	likeReconciler := workers.NewLikeReconciler(likeCounter, likeRepo, commentRepo, time.Duration(syncInterval)*time.Second)
	go likeReconciler.Start(ctx)

	// Build service Layer
	likeSvc := like.NewService(likeRepo, commentRepo, userRepo, likeCounter, bloomRepo)
	commentSvc := comment.NewService(commentRepo, likeRepo, likeCounter, userRepo, bloomRepo)
	likeHandler := rest.NewLikeHandler(likeSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)

	identityMiddleware := middleware.GatewayIdentity()

	// Prepare bloom filter
	if err := commentSvc.InitBloomFilter(ctx); err != nil {
		log.Printf("failed to init bloom filter: %v\n", err)
		return
	}

	// Register routes
	route.GET("/posts/:id/comments", commentHandler.FetchCommentsByPost)
	route.GET("/comments/:id/likes", likeHandler.Count)

	authorized := route.Group("/")
	authorized.Use(identityMiddleware)
	{
		authorized.POST("/posts/:id/comments", commentHandler.CreateComment)
		authorized.DELETE("/comments/:id", commentHandler.DeleteComment)
		authorized.POST("/comments/:id/like", likeHandler.Toggle)
		authorized.GET("/comments/:id/like", likeHandler.Liked)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
