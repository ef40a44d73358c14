package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"teranga-storefront/internal/app"
	"teranga-storefront/internal/auth"
	"teranga-storefront/internal/cart"
	"teranga-storefront/internal/cartsession"
	"teranga-storefront/internal/notify"
	"teranga-storefront/internal/transport"
	types "teranga-storefront/internal/types/cart"
	"teranga-storefront/internal/wishlist"
)

const cfgPath = "config/config.yaml"

const usage = `usage:
  storefront cart [show | add <product> [qty] | update <product> <qty> | remove <product> | clear]
  storefront wishlist [show | add <product> | remove <product> | toggle <product>]

wishlist commands sign in with STOREFRONT_EMAIL / STOREFRONT_PASSWORD`

func main() {
	// init logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	logger := zapLogger.Sugar()
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			logger.Debugf("error to sync logger: %v", err)
		}
	}()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	c, err := app.NewConfig(cfgPath)
	if err != nil {
		logger.Fatalf("error to parsing config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := newStore(c.CfgClient)
	if err != nil {
		logger.Fatalf("error to init storage: %v", err)
	}

	// контейнеры шлют тосты в канал, после команды они печатаются и пишутся в лог
	toasts := notify.NewChan(16)
	logNotifier := notify.NewLogNotifier(logger)

	switch os.Args[1] {
	case "cart":
		sessions := cartsession.NewProvider(store, logger)
		api := transport.NewCartClient(c.CfgClient.BaseURL, sessions, c.CfgClient.Timeout)
		container := cart.NewContainer(api, toasts, logger)
		container.OnChange(func(s types.Snapshot) {
			logger.Debugw("cart badge updated", "count", s.Count(), "total", s.Total)
		})
		err := runCart(ctx, container, os.Args[2:])
		showToasts(toasts, logNotifier)
		if err != nil {
			logger.Fatalw("cart command failed", "err", err)
		}
	case "wishlist":
		err := runWishlist(ctx, c.CfgClient, toasts, logger, os.Args[2:])
		showToasts(toasts, logNotifier)
		if err != nil {
			logger.Fatalw("wishlist command failed", "err", err)
		}
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

func newStore(cfg app.ConfigClient) (cartsession.Store, error) {
	switch cfg.Storage {
	case "memory":
		return cartsession.NewMemoryStore(), nil
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return cartsession.NewRedisStore(redisClient, cfg.Redis.Namespace), nil
	case "file":
		path := cfg.StoragePath
		if path == "" {
			p, err := cartsession.DefaultFilePath()
			if err != nil {
				return nil, err
			}
			path = p
		}
		return cartsession.NewFileStore(path), nil
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}

func runCart(ctx context.Context, c *cart.Container, args []string) error {
	if err := c.Mount(ctx); err != nil {
		return err
	}

	cmd := "show"
	if len(args) > 0 {
		cmd = args[0]
	}

	var err error
	switch cmd {
	case "show":
		c.Open()
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("add: product id required")
		}
		qty := 1
		if len(args) > 2 {
			if qty, err = strconv.Atoi(args[2]); err != nil {
				return fmt.Errorf("add: bad quantity %q", args[2])
			}
		}
		_, err = c.Add(ctx, args[1], qty)
	case "update":
		if len(args) < 3 {
			return fmt.Errorf("update: product id and quantity required")
		}
		qty, convErr := strconv.Atoi(args[2])
		if convErr != nil {
			return fmt.Errorf("update: bad quantity %q", args[2])
		}
		_, err = c.UpdateQuantity(ctx, args[1], qty)
	case "remove":
		if len(args) < 2 {
			return fmt.Errorf("remove: product id required")
		}
		_, err = c.Remove(ctx, args[1])
	case "clear":
		_, err = c.Clear(ctx)
	default:
		return fmt.Errorf("unknown cart command %q", cmd)
	}
	if err != nil {
		return err
	}

	// открытая корзина печатается целиком, иначе только итог
	snapshot := c.Snapshot()
	if c.IsOpen() {
		printCart(snapshot)
		c.Close()
		return nil
	}
	fmt.Printf("%d item(s), total %d XOF\n", snapshot.Count(), snapshot.Total)
	return nil
}

func runWishlist(
	ctx context.Context,
	cfg app.ConfigClient,
	notifier notify.Notifier,
	logger *zap.SugaredLogger,
	args []string,
) error {
	jar, err := auth.NewJar()
	if err != nil {
		return err
	}
	state := auth.NewState()
	account := transport.NewAccountClient(cfg.BaseURL, jar, cfg.Timeout)
	manager := auth.NewManager(state, jar, account, logger)
	api := transport.NewWishlistClient(cfg.BaseURL, jar, cfg.Timeout)
	container := wishlist.NewContainer(api, state, notifier, logger)

	loaded := make(chan struct{}, 1)
	container.OnChange(func(types.WishlistSnapshot) {
		select {
		case loaded <- struct{}{}:
		default:
		}
	})

	// избранное перечитывается на каждый вход и выход
	changes, unsubscribe := state.Subscribe()
	defer unsubscribe()
	go container.Watch(ctx, changes)

	if email := os.Getenv("STOREFRONT_EMAIL"); email != "" {
		if err := manager.Login(ctx, email, os.Getenv("STOREFRONT_PASSWORD")); err != nil {
			return err
		}
		defer func() {
			if err := manager.Logout(context.Background()); err != nil {
				logger.Warnw("logout failed", "err", err)
			}
		}()

		select {
		case <-loaded:
		case <-time.After(cfg.Timeout):
			return fmt.Errorf("wishlist was not loaded in %s", cfg.Timeout)
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	cmd := "show"
	if len(args) > 0 {
		cmd = args[0]
	}
	if cmd != "show" && len(args) < 2 {
		return fmt.Errorf("%s: product id required", cmd)
	}

	switch cmd {
	case "show":
	case "add":
		_, err = container.Add(ctx, args[1])
	case "remove":
		_, err = container.Remove(ctx, args[1])
	case "toggle":
		_, err = container.Toggle(ctx, args[1])
	default:
		return fmt.Errorf("unknown wishlist command %q", cmd)
	}
	if err != nil {
		return err
	}

	for _, item := range container.Snapshot().Items {
		fmt.Printf("%-12s %-30s %8d XOF\n", item.ProductID, item.Name, item.Price)
	}
	return nil
}

func showToasts(toasts *notify.Chan, log notify.Notifier) {
	for _, n := range toasts.Drain() {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", n.Level, n.Message)
		if n.Level == notify.LevelError {
			log.Error(n.Message)
			continue
		}
		log.Success(n.Message)
	}
}

func printCart(s types.Snapshot) {
	for _, item := range s.Items {
		fmt.Printf("%-12s %-30s x%-3d %8d XOF\n", item.ProductID, item.Name, item.Quantity, item.Price)
	}
	fmt.Printf("%d item(s), total %d XOF\n", s.Count(), s.Total)
}
