package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"teranga-storefront/internal/app"
	"teranga-storefront/internal/favorites"
	handlersCart "teranga-storefront/internal/handlers/shopping_cart"
	handlersUser "teranga-storefront/internal/handlers/user"
	handlersWishlist "teranga-storefront/internal/handlers/wishlist"
	"teranga-storefront/internal/kafka"
	"teranga-storefront/internal/middleware"
	"teranga-storefront/internal/product"
	"teranga-storefront/internal/session"
	"teranga-storefront/internal/shopping_cart"
	"teranga-storefront/internal/user"

	_ "github.com/lib/pq"
)

const cfgPath = "config/config.yaml"

func main() {
	// init logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	logger := zapLogger.Sugar()
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			logger.Warnf("error to sync logger: %v", err)
		}
	}()

	// парсим конфиг
	cfg, err := app.NewConfig(cfgPath)
	if err != nil {
		logger.Fatalf("error to parsing config: %v", err)
	}
	c := cfg.CfgServer

	// init db
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s "+"password=%s dbname=%s sslmode=disable",
		c.CfgDB.Host, c.CfgDB.Port, c.CfgDB.Login, c.CfgDB.Password, c.CfgDB.Database,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Fatalf("error to database start: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(c.MaxOpenConns)
	if err := db.Ping(); err != nil {
		logger.Infof("Failed to get response to ping: %v", err)
	}

	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     c.Redis.Addr,
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
	})
	defer redisClient.Close()

	// init kafka
	producer := kafka.NewProducer(c.Kafka.Brokers, c.Kafka.Topic, logger)
	defer func() {
		if err := producer.Close(); err != nil {
			logger.Warnf("error to close kafka producer: %v", err)
		}
	}()

	// init repository
	productRepository := product.NewProductDBRepository(db, logger)
	cartRepository := shopping_cart.NewShoppingCartRepository(db, logger)
	favoritesRepository := favorites.NewFavoritesDBRepository(db, logger)
	userRepository := user.NewUserDBRepository(db, logger)
	sessionRepository := session.NewSessionRepository(redisClient, logger, c.Secret, c.SessionDuration, c.SecureCookie)

	// init handlers
	cartHandlers := handlersCart.NewShoppingCartHandler(logger, cartRepository, productRepository, producer)
	wishlistHandlers := handlersWishlist.NewWishlistHandler(logger, favoritesRepository, productRepository, producer)
	userHandlers := handlersUser.NewUserHandler(logger, userRepository, sessionRepository)

	// init router
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware)
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Гостевая корзина: идентичность - заголовок X-Cart-Session
	cartRouter := r.PathPrefix("/api/cart").Subrouter()
	cartRouter.Use(middleware.CartSession(logger))

	cartRouter.HandleFunc("", cartHandlers.GetCart).Methods("GET")
	cartRouter.HandleFunc("/add", cartHandlers.AddItem).Methods("POST")
	cartRouter.HandleFunc("/update", cartHandlers.UpdateItem).Methods("PUT")
	cartRouter.HandleFunc("/remove/{product_id}", cartHandlers.RemoveItem).Methods("DELETE")
	cartRouter.HandleFunc("/clear", cartHandlers.Clear).Methods("DELETE")

	// Ручки требующие авторизации
	authRouter := r.PathPrefix("/api").Subrouter()
	authRouter.Use(middleware.Auth(sessionRepository, logger))

	authRouter.HandleFunc("/wishlist", wishlistHandlers.GetWishlist).Methods("GET")
	authRouter.HandleFunc("/wishlist/add/{product_id}", wishlistHandlers.AddItem).Methods("POST")
	authRouter.HandleFunc("/wishlist/remove/{product_id}", wishlistHandlers.RemoveItem).Methods("DELETE")
	authRouter.HandleFunc("/user/logout", userHandlers.Logout).Methods("POST")

	// Ручки НЕ требующие авторизации
	noAuthRouter := r.PathPrefix("/api").Subrouter()

	noAuthRouter.HandleFunc("/user/login", userHandlers.Login).Methods("POST")

	logger.Infow("starting server",
		"type", "START",
		"addr", c.ServerPort,
	)

	srv := &http.Server{
		Addr:         c.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("can't start server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("error to shutdown server: %v", err)
	}
	logger.Info("server stopped")
}
