// @title        HealthCare Clinic API
// @version      1.0
// @description  診所後端 API：諮詢、預約、藥品庫存、訂單付款與 AI 問答
// @host         localhost:3000
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"

	"healthcare-clinic/internal/cache"
	"healthcare-clinic/internal/catalog"
	"healthcare-clinic/internal/chat"
	"healthcare-clinic/internal/config"
	"healthcare-clinic/internal/database"
	"healthcare-clinic/internal/router"
	"healthcare-clinic/internal/service"
	"healthcare-clinic/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "healthcare-clinic/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	newRedisClient  = cache.NewRedisClient
	openStoreFn     = openStore
	openMongoFn     = openMongo
	listenFn        = listen
	startServer     = func(e *echo.Echo, l net.Listener) error {
		e.Listener = l
		return e.Start("")
	}
	exitFunc = os.Exit
)

// openStore 依 STORE_DRIVER 建立 store，回傳的 cleanup 負責關閉連線
func openStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	if cfg.StoreDriver == config.DriverMongo {
		return openMongoFn(ctx, cfg.MongoURI, cfg.MongoDatabase)
	}
	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return nil, nil, fmt.Errorf("Migration 執行失敗: %v", err)
	}
	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("DB 連線失敗: %v", err)
	}
	return store.NewPostgres(db), db.Close, nil
}

func openMongo(ctx context.Context, uri, dbName string) (store.Store, func(), error) {
	client, err := database.NewMongoClient(ctx, uri)
	if err != nil {
		return nil, nil, fmt.Errorf("MongoDB 連線失敗: %v", err)
	}
	cleanup := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("關閉 MongoDB 連線失敗: %v", err)
		}
	}
	st := store.NewMongo(client.Database(dbName))
	if err := st.EnsureIndexes(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("建立 MongoDB 索引失敗: %v", err)
	}
	return st, cleanup, nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := context.Background()

	st, closeStore, err := openStoreFn(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	seeded, err := st.SeedMedicines(ctx, catalog.DefaultMedicines())
	if err != nil {
		return fmt.Errorf("預設藥品寫入失敗: %v", err)
	}

	// REDIS_ADDR 未設定時不啟用藥品快取
	var backend cache.Cache
	if cfg.RedisAddr != "" {
		rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("Redis 連線失敗: %v", err)
		}
		defer rdb.Close()
		backend = rdb
	}

	var completer chat.Completer
	if cfg.OpenAIAPIKey != "" {
		completer = chat.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	router.Setup(e, router.Deps{
		Store:      st,
		Catalog:    catalog.NewCache(backend, cfg.MedicineCacheTTL),
		Tokens:     service.NewTokenService(cfg.JWTSecret, service.DefaultTokenTTL),
		SignupCode: cfg.AdminSignupCode,
		Completer:  completer,
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/", cfg.StaticDir)

	if seeded > 0 {
		e.Logger.Infof("已寫入 %d 筆預設藥品", seeded)
	}
	if cfg.AdminSignupCode == "" {
		e.Logger.Warn("ADMIN_SIGNUP_CODE 未設定，管理員註冊停用")
	}
	if completer == nil {
		e.Logger.Warn("OPENAI_API_KEY 未設定，/api/ai/chat 將回傳 503")
	}

	l, err := listenFn(cfg.Host, cfg.Ports())
	if err != nil {
		return err
	}
	e.Logger.Infof("listening on %s", l.Addr())
	return startServer(e, l)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
