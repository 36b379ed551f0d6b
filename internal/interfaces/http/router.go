package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/loja-backend/loja-api/internal/application/auth"
	"github.com/loja-backend/loja-api/internal/application/relatorio"
	"github.com/loja-backend/loja-api/internal/application/usecase"
	"github.com/loja-backend/loja-api/internal/application/venda"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ClienteUC    *usecase.ClienteUseCase
	FornecedorUC *usecase.FornecedorUseCase
	DepositoUC   *usecase.DepositoUseCase
	ProdutoUC    *usecase.ProdutoUseCase
	UsuarioUC    *usecase.UsuarioUseCase
	VendaUC      *venda.VendaUseCase
	DocumentoUC  *venda.DocumentoUseCase
	RelatorioUC  *relatorio.RelatorioUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/registro", authHandler.Registrar)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	fornecedores := protected.Group("/fornecedores")
	fornecedorHandler := NewFornecedorHandler(deps.FornecedorUC)
	fornecedores.Post("/", fornecedorHandler.Create)
	fornecedores.Get("/", fornecedorHandler.List)
	fornecedores.Get("/:id", fornecedorHandler.GetByID)
	fornecedores.Put("/:id", fornecedorHandler.Update)
	fornecedores.Delete("/:id", fornecedorHandler.Delete)

	depositos := protected.Group("/depositos")
	depositoHandler := NewDepositoHandler(deps.DepositoUC)
	depositos.Post("/", depositoHandler.Create)
	depositos.Get("/", depositoHandler.List)
	depositos.Get("/:id", depositoHandler.GetByID)
	depositos.Put("/:id", depositoHandler.Update)
	depositos.Delete("/:id", depositoHandler.Delete)

	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Post("/", produtoHandler.Create)
	produtos.Get("/", produtoHandler.List)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Put("/:id", produtoHandler.Update)
	produtos.Delete("/:id", produtoHandler.Delete)

	usuarios := protected.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)

	vendas := protected.Group("/vendas")
	vendaHandler := NewVendaHandler(deps.VendaUC, deps.DocumentoUC)
	vendas.Post("/", vendaHandler.Create)
	vendas.Get("/", vendaHandler.List)
	vendas.Get("/:id", vendaHandler.GetByID)
	vendas.Put("/:id", vendaHandler.Update)
	vendas.Delete("/:id", vendaHandler.Delete)
	vendas.Get("/:id/nota-fiscal", vendaHandler.NotaFiscal)
	vendas.Get("/:id/recibo", vendaHandler.Recibo)

	relatorios := protected.Group("/relatorios")
	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC)
	relatorios.Get("/vendas/produto/:produtoId", relatorioHandler.VendasPorProduto)
	relatorios.Get("/vendas/cliente/:clienteId", relatorioHandler.VendasPorCliente)
	relatorios.Get("/estoque/deposito/:depositoId", relatorioHandler.EstoquePorDeposito)
}
