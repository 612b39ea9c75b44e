package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/emrgen/wiki/internal/cache"
	"github.com/emrgen/wiki/internal/config"
	"github.com/emrgen/wiki/internal/jobs"
	"github.com/emrgen/wiki/internal/service"
	"github.com/emrgen/wiki/internal/store"
)

// Server represents the server
type Server struct {
	httpPort string
}

// NewServer creates a new server
func NewServer(httpPort string) *Server {
	return &Server{
		httpPort: httpPort,
	}
}

// Start starts the server
func (s *Server) Start() {
	if err := Start(s.httpPort); err != nil {
		logrus.Fatalf("error starting server: %v", err)
	}
}

// Start starts the http server
func Start(httpPort string) error {
	var err error

	httpPort = ":" + httpPort

	cnf := config.LoadConfig()
	rdb := config.GetDb(cnf)

	rl, err := net.Listen("tcp", httpPort)
	if err != nil {
		return err
	}

	entryStore := store.NewGormStore(rdb)
	err = entryStore.Migrate()
	if err != nil {
		return err
	}

	var entryCache cache.EntryCache
	if cnf.RedisAddr != "" {
		entryCache = cache.NewRedisEntryCache(cnf.RedisAddr)
	} else {
		entryCache = cache.NewMemoryEntryCache()
	}

	entryService, err := service.NewEntryService(cnf.Compression, entryStore, entryCache)
	if err != nil {
		return err
	}
	historyService := service.NewHistoryService(entryStore)

	router := gin.New()
	router.Use(gin.Recovery())
	NewHandler(entryService, historyService).Register(router)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // All origins are allowed
		AllowedMethods:   []string{"GET", "POST", "DELETE", "PUT"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	restServer := &http.Server{
		Addr:    httpPort,
		Handler: c.Handler(router),
	}

	executor := jobs.NewTaskExecutor(
		nil,
		[]jobs.CronJob{jobs.NewCacheWarmTask("@every 1m", entryStore, entryCache)},
	)
	executor.Run()

	// make sure to wait for the server to stop before exiting
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		logrus.Info("starting http server on: ", httpPort)
		if err := restServer.Serve(rl); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logrus.Errorf("error starting http server: %v", err)
			}
		}
		logrus.Infof("http server stopped")
	}()

	logrus.Infof("Press Ctrl+C to stop the server")

	// listen for interrupt signal to gracefully shut down the server
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, unix.SIGTERM, unix.SIGINT, unix.SIGTSTP)
	<-sigs
	// clean Ctrl+C output
	fmt.Println()

	executor.Stop()
	err = restServer.Shutdown(context.Background())
	if err != nil {
		logrus.Errorf("error stopping http server: %v", err)
	}

	wg.Wait()

	return nil
}
