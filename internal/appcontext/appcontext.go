package appcontext

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/MateuszRostek/book-store/internal/config"
	"github.com/MateuszRostek/book-store/internal/infra/producer"
	"github.com/MateuszRostek/book-store/internal/infra/repository/db"
	"github.com/MateuszRostek/book-store/internal/infra/repository/redis_decorator"
	"github.com/MateuszRostek/book-store/internal/service"
	"github.com/MateuszRostek/book-store/internal/token"
	kafkaconfig "github.com/RoyceAzure/lab/rj_kafka/kafka/config"
	kafkaproducer "github.com/RoyceAzure/lab/rj_kafka/kafka/producer"
	"github.com/RoyceAzure/lab/rj_redis/pkg/cache"
	redis_cache "github.com/RoyceAzure/lab/rj_redis/pkg/cache/redis"
	"github.com/RoyceAzure/lab/rj_redis/pkg/redis_client"
	"gorm.io/gorm"
)

type ApplicationContext struct {
	Cf              *config.Config
	GormDB          *gorm.DB
	DbDao           db.IStore
	Cache           cache.Cache
	KafkaProducer   kafkaproducer.Producer
	TokenMaker      token.Maker[uint]
	UserService     service.IUserService
	AuthService     service.IAuthService
	BookService     service.IBookService
	CategoryService service.ICategoryService
	CartService     service.IShoppingCartService
	OrderService    service.IOrderService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	err := app.Init()
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	err := app.setUpDbConn()
	if err != nil {
		return err
	}
	err = app.setUpCache()
	if err != nil {
		return err
	}
	err = app.setUpKafkaProducer()
	if err != nil {
		return err
	}
	err = app.setUpTokenMaker()
	if err != nil {
		return err
	}
	app.setUpServices()
	return nil
}

func (app *ApplicationContext) setUpDbConn() error {
	log.Printf("Start setup database connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}

	dao := db.NewDbDao(conn)
	if err := dao.InitMigrate(); err != nil {
		return err
	}

	app.GormDB = conn
	app.DbDao = dao
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpCache() error {
	log.Printf("Start setup redis cache")
	client, err := redis_client.GetRedisClient(app.Cf.RedisAddr, redis_client.WithPassword(app.Cf.RedisPassword))
	if err != nil {
		return err
	}
	app.Cache = redis_cache.NewRedisCache(client, "bookstore")
	log.Printf("Finish setup redis cache")
	return nil
}

func (app *ApplicationContext) setUpKafkaProducer() error {
	log.Printf("Start setup kafka producer")
	kcfg := kafkaconfig.DefaultConfig()
	kcfg.Brokers = strings.Split(app.Cf.KafkaBrokers, ",")
	kcfg.Topic = app.Cf.KafkaOrderTopic

	p, err := kafkaproducer.New(kcfg)
	if err != nil {
		return err
	}
	app.KafkaProducer = p
	log.Printf("Finish setup kafka producer")
	return nil
}

func (app *ApplicationContext) setUpTokenMaker() error {
	log.Printf("Start setup token maker")
	tokenMaker, err := token.NewPasetoMaker[uint](app.Cf.AuthTokenKey)
	if err != nil {
		return err
	}
	app.TokenMaker = tokenMaker
	log.Printf("Finish setup token maker")
	return nil
}

func (app *ApplicationContext) setUpServices() {
	log.Printf("Start setup services")
	guard := service.NewAccessGuard()

	// 書籍讀取走cache aside，購物車與訂單一律直接查db
	cachedBookStore := redis_decorator.NewCacheAsideBookRepo(app.DbDao, app.Cache)
	orderEventProducer := producer.NewOrderEventProducer(app.KafkaProducer)

	app.UserService = service.NewUserService(app.DbDao)
	app.AuthService = service.NewAuthService(app.UserService, app.TokenMaker)
	app.BookService = service.NewBookService(cachedBookStore, guard)
	app.CategoryService = service.NewCategoryService(app.DbDao, guard)
	app.CartService = service.NewShoppingCartService(app.DbDao, guard)
	app.OrderService = service.NewOrderService(app.DbDao, guard, orderEventProducer)
	log.Printf("Finish setup services")
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.KafkaProducer != nil {
			log.Printf("Closing kafka producer...")
			if err := app.KafkaProducer.Close(); err != nil {
				//有錯誤不結束流程
				log.Printf("kafka producer shutdown error: %v", err)
			}
		}

		if app.GormDB != nil {
			log.Printf("Closing database connection...")
			if sqlDB, err := app.GormDB.DB(); err == nil {
				sqlDB.Close()
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
