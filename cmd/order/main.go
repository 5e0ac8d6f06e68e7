package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/romana/rlog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"order_management/custom/customer"
	"order_management/custom/order"
	"order_management/custom/product"
	"order_management/custom/store"
	"order_management/custom/util"
	"order_management/model"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "order-service",
		Short:         "REST backend for customers, products and orders",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./config/config.yaml", "server config file")
	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Migrate the schema and serve the REST API",
		RunE:  runServe,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Migrate the schema and exit",
		RunE:  runMigrate,
	})

	if err := rootCmd.Execute(); err != nil {
		rlog.Critical(err.Error())
		os.Exit(1)
	}
}

func openDatabase() (*util.ServerConfig, *gorm.DB, error) {
	serverConfig := util.ServerConfig{}
	if _, err := serverConfig.GetConf(configFile); err != nil {
		return nil, nil, err
	}
	db, err := util.OpenDatabase(serverConfig.Postgres)
	if err != nil {
		return nil, nil, err
	}
	if err = util.Migrate(db); err != nil {
		util.CloseDatabase(db)
		return nil, nil, err
	}
	return &serverConfig, db, nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	_, db, err := openDatabase()
	if err != nil {
		return err
	}
	rlog.Info("Database migration completed")
	return util.CloseDatabase(db)
}

// NewRouter wires every handler context onto one gin engine.
func NewRouter(serverConfig *util.ServerConfig, db *gorm.DB) *gin.Engine {
	gin.SetMode(serverConfig.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = serverConfig.Http.AllowOrigins
	router.Use(cors.New(corsConfig))

	customerCtx := customer.HandlerContext{}
	customerCtx.InitialHandlerContext(customer.NewService(store.NewGormRepository[model.Customer](db)))
	productCtx := product.HandlerContext{}
	productCtx.InitialHandlerContext(product.NewService(store.NewGormRepository[model.Product](db)))
	orderCtx := order.HandlerContext{}
	orderCtx.InitialHandlerContext(order.NewService(store.NewGormOrderRepository(db)))

	customerCtx.RegisterRoutes(router)
	productCtx.RegisterRoutes(router)
	orderCtx.RegisterRoutes(router)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func runServe(cmd *cobra.Command, args []string) error {
	serverConfig, db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() {
		if err := util.CloseDatabase(db); err != nil {
			rlog.Error("Close database failed: " + err.Error())
		}
	}()

	server := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", serverConfig.Http.Port),
		Handler:      NewRouter(serverConfig, db),
		ReadTimeout:  serverConfig.Http.ReadTimeout,
		WriteTimeout: serverConfig.Http.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		rlog.Infof("Server listening on %s", server.Addr)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	rlog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
