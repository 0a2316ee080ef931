package main

import (
	"log"

	"bookshop/internal/config"
	"bookshop/internal/domain/model"
	"bookshop/internal/handler"
	"bookshop/internal/infra/db"
	"bookshop/internal/infra/mail"
	infraRepo "bookshop/internal/infra/repository"
	"bookshop/internal/infra/websession"
	"bookshop/internal/metrics"
	"bookshop/internal/server"
	"bookshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Book{},
		&model.Order{},
		&model.OrderBook{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	bookRepo := infraRepo.NewBookGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	sessions := websession.NewManager([]byte(cfg.SessionSecret))
	m := metrics.New()
	idGen := &uuidGenerator{}

	var sender usecase.ConfirmationSender
	if cfg.MailMode == "smtp" {
		s, err := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
		if err != nil {
			panic(err)
		}
		sender = s
	} else {
		log.Print("mail: eco mode, confirmations are not sent")
		sender = mail.NewEcoSender()
	}

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(bookRepo)
	cartUC := usecase.NewCartUsecase(bookRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txm, bookRepo, sender, idGen, m, cfg.MailTimeout)
	adminUC := usecase.NewAdminOrderUsecase(txm)

	//Handler生成
	hs := server.Handlers{
		Catalog:  handler.NewCatalogHandler(catalogUC),
		Cart:     handler.NewCartHandler(cartUC, sessions),
		Checkout: handler.NewCheckoutHandler(checkoutUC, sessions),
		Admin:    handler.NewAdminOrderHandler(adminUC),
		Static:   handler.NewStaticHandler(),
	}

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	e := server.New(hs)
	if err := server.Start(e, addr); err != nil {
		panic(err)
	}
}
