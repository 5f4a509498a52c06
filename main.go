package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"portfolio-admin-server/apiroutes"
	"portfolio-admin-server/global"
	"portfolio-admin-server/media"
	"portfolio-admin-server/repository"
	"portfolio-admin-server/types"
)

func initRedisRateLimiter(conf global.Config) *redis.Client {
	redisRateLimitClient := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Host + ":" + strconv.Itoa(conf.Redis.Port),
		Username: conf.Redis.Username,
		Password: conf.Redis.Password,
		DB:       1,
	})

	// configure rate limiting
	// clears all data in the Redis database associated with the 'redisRateLimitClient' ignoring potential errors
	rCtx, rCancel := context.WithTimeout(context.Background(), time.Second*10)
	defer rCancel()

	_ = redisRateLimitClient.FlushDB(rCtx).Err()

	limiter := redis_rate.NewLimiter(redisRateLimitClient)
	global.RateLimiter = limiter

	return redisRateLimitClient
}

// @title Portfolio Admin API
// @version 1.0
// @description CRUD API and dashboard for a personal portfolio site
// @SecurityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	// a local .env is optional; real deployments set the environment directly
	_ = godotenv.Load()
	global.LoadFromEnv()

	if global.Conf.Admin.Username == "" || global.Conf.Admin.Password == "" {
		panic("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}

	var redisClient *redis.Client
	if global.Conf.Redis.Host != "" {
		redisClient = initRedisRateLimiter(global.Conf)
		defer redisClient.Close()
	}
	env := types.NewEnvironment(redisClient)

	gin.SetMode(global.Conf.Mode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	dbSelector := ConfigDBSelector()
	ConfigDBIndexing(dbSelector.(*repository.CouchDBSelector))

	mediaClient := media.NewClient(global.Conf.Cloudinary, false)

	// configure routes
	router = apiroutes.ConfigRoutes(router, dbSelector.(*repository.CouchDBSelector), mediaClient, env)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", global.Conf.Host, global.Conf.Port),
		Handler: router,
	}

	// server wait to shutdown monitoring channels
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		global.Logger.Log("msg", "server shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			global.Logger.Log("error", "forced shutdown", "error", err.Error())
		}
		close(done)
	}()

	global.Logger.Log("Server is ready to handle requests at", global.Conf.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic(fmt.Sprintf("%v\n", err))
	}

	<-done
}
