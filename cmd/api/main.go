package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/loja-backend/loja-api/internal/application/auth"
	"github.com/loja-backend/loja-api/internal/application/relatorio"
	"github.com/loja-backend/loja-api/internal/application/usecase"
	appvenda "github.com/loja-backend/loja-api/internal/application/venda"
	"github.com/loja-backend/loja-api/internal/infrastructure/notafiscal"
	infrapdf "github.com/loja-backend/loja-api/internal/infrastructure/pdf"
	"github.com/loja-backend/loja-api/internal/infrastructure/postgres"
	httpRouter "github.com/loja-backend/loja-api/internal/interfaces/http"
	"github.com/loja-backend/loja-api/pkg/config"
	"github.com/loja-backend/loja-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o PostgreSQL")
	}
	defer pool.Close()

	clienteRepo := postgres.NewClienteRepository(pool)
	fornecedorRepo := postgres.NewFornecedorRepository(pool)
	depositoRepo := postgres.NewDepositoRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	vendaRepo := postgres.NewVendaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	relatorioRepo := postgres.NewRelatorioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	fornecedorUC := usecase.NewFornecedorUseCase(fornecedorRepo)
	depositoUC := usecase.NewDepositoUseCase(depositoRepo)
	produtoUC := usecase.NewProdutoUseCase(produtoRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	vendaUC := appvenda.NewVendaUseCase(txRunner, vendaRepo)
	relatorioUC := relatorio.NewRelatorioUseCase(relatorioRepo)

	// Documentos da venda: nota fiscal (XML) e recibo (PDF)
	nfBuilder := notafiscal.NewXMLBuilder()
	pdfGenerator := infrapdf.NewReciboPDFGenerator()
	documentoUC := appvenda.NewDocumentoUseCase(vendaRepo, nfBuilder, pdfGenerator)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Loja API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClienteUC:    clienteUC,
		FornecedorUC: fornecedorUC,
		DepositoUC:   depositoUC,
		ProdutoUC:    produtoUC,
		UsuarioUC:    usuarioUC,
		VendaUC:      vendaUC,
		DocumentoUC:  documentoUC,
		RelatorioUC:  relatorioUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
