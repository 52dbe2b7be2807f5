package router

import (
	"time"

	"github.com/victor-jaber/Maybach-system-sub000/internal/config"
	"github.com/victor-jaber/Maybach-system-sub000/internal/handler"
	"github.com/victor-jaber/Maybach-system-sub000/internal/infra"
	"github.com/victor-jaber/Maybach-system-sub000/internal/middleware"
	"github.com/victor-jaber/Maybach-system-sub000/internal/repository"
	"github.com/victor-jaber/Maybach-system-sub000/internal/service"
	"github.com/victor-jaber/Maybach-system-sub000/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, fipeCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.Domain))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	fipeClient := infra.NewFipeClient(cfg.FipeAPIURL)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	veiculoRepo := repository.NewVeiculoRepository(db)
	lojaRepo := repository.NewLojaRepository(db)
	contratoRepo := repository.NewContratoRepository(db)
	assinaturaRepo := repository.NewAssinaturaRepository(db)
	vendaRepo := repository.NewVendaRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	clienteSvc := service.NewClienteService(clienteRepo)
	veiculoSvc := service.NewVeiculoService(veiculoRepo)
	lojaSvc := service.NewLojaService(lojaRepo)
	contratoSvc := service.NewContratoService(contratoRepo, clienteRepo, veiculoRepo, lojaRepo)
	assinaturaSvc := service.NewAssinaturaService(
		assinaturaRepo, contratoRepo, contratoSvc, dispatcher,
		cfg.SignatureMaxAttempts, cfg.PublicBaseURL,
	)
	vendaSvc := service.NewVendaService(vendaRepo, clienteRepo, veiculoRepo, contratoSvc)
	relatorioSvc := service.NewRelatorioService(vendaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	veiculosH := handler.NewVeiculosHandler(veiculoSvc)
	lojaH := handler.NewLojaHandler(lojaSvc)
	contratosH := handler.NewContratosHandler(contratoSvc, cfg.PDFStoragePath)
	assinaturasH := handler.NewAssinaturasHandler(assinaturaSvc)
	vendasH := handler.NewVendasHandler(vendaSvc)
	relatoriosH := handler.NewRelatoriosHandler(relatorioSvc, vendaSvc)
	fipeH := handler.NewFipeHandler(fipeClient, fipeCB)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, fipeCB))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Public signing flow — token is the only credential; the strict
	// rate limiter backs up the per-token attempt ceiling.
	pub := r.Group("/public/assinatura", middleware.AssinaturaRateLimiter())
	{
		pub.GET("/:token", assinaturasH.Consultar)
		pub.POST("/:token/validar", assinaturasH.Validar)
		pub.POST("/:token/assinar", assinaturasH.Assinar)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Roles: vendedor, gerente, administrador — declared per-endpoint
		todos := middleware.RequireRole("vendedor", "gerente", "administrador")
		gestao := middleware.RequireRole("gerente", "administrador")
		admin := middleware.RequireRole("administrador")

		// Clientes
		v1.POST("/clientes", todos, clientesH.Criar)
		v1.GET("/clientes", todos, clientesH.Listar)
		v1.GET("/clientes/:id", todos, clientesH.Buscar)
		v1.PUT("/clientes/:id", todos, clientesH.Atualizar)
		v1.DELETE("/clientes/:id", gestao, clientesH.Excluir)

		// Veículos e marcas
		v1.POST("/veiculos", todos, veiculosH.Criar)
		v1.GET("/veiculos", todos, veiculosH.Listar)
		v1.GET("/veiculos/:id", todos, veiculosH.Buscar)
		v1.PUT("/veiculos/:id", todos, veiculosH.Atualizar)
		v1.POST("/marcas", gestao, veiculosH.CriarMarca)
		v1.GET("/marcas", todos, veiculosH.ListarMarcas)

		// Loja
		v1.GET("/loja", todos, lojaH.Buscar)
		v1.PUT("/loja", admin, lojaH.Atualizar)

		// Contratos
		v1.POST("/contratos", todos, contratosH.Criar)
		v1.GET("/contratos", todos, contratosH.Listar)
		v1.GET("/contratos/:id", todos, contratosH.Buscar)
		v1.PUT("/contratos/:id", todos, contratosH.Atualizar)
		v1.PATCH("/contratos/:id/status", todos, contratosH.MudarStatus)
		v1.DELETE("/contratos/:id", gestao, contratosH.Excluir)
		v1.GET("/contratos/:id/documento", todos, contratosH.GerarDocumento)
		v1.PATCH("/contratos/:id/parcelas/:numero", todos, contratosH.MarcarParcela)
		v1.GET("/contratos/:id/arquivos", todos, contratosH.ListarArquivos)
		v1.GET("/contratos/:id/arquivos/:arquivoID", todos, contratosH.BaixarArquivo)
		v1.POST("/contratos/:id/assinatura", todos, assinaturasH.Emitir)

		// Vendas
		v1.POST("/vendas", todos, vendasH.Registrar)
		v1.GET("/vendas", todos, vendasH.Listar)
		v1.GET("/vendas/:id", todos, vendasH.Buscar)

		// Relatórios
		v1.GET("/relatorios/vendas-sem-contrato", gestao, relatoriosH.VendasSemContrato)
		v1.GET("/relatorios/vendas-sem-contrato.xlsx", gestao, relatoriosH.VendasSemContratoXLSX)

		// Tabela FIPE
		v1.GET("/fipe/marcas", todos, fipeH.Marcas)
		v1.GET("/fipe/marcas/:codigo/modelos", todos, fipeH.Modelos)
		v1.GET("/fipe/marcas/:codigo/modelos/:modelo/anos/:ano", todos, fipeH.Preco)

		// Usuários — administrador only
		usuarios := v1.Group("/usuarios", admin)
		{
			usuarios.POST("", authH.CriarUsuario)
			usuarios.GET("", authH.ListarUsuarios)
			usuarios.PUT("/:id", authH.AtualizarUsuario)
			usuarios.DELETE("/:id", authH.DesativarUsuario)
			usuarios.POST("/:id/reativar", authH.ReativarUsuario)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
