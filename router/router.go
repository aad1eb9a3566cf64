package router

import (
	"net/http"
	"time"

	"financas/api"
	"financas/config"
	_ "financas/docs"
	"financas/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter monta as rotas da aplicação
func SetupRouter(cfg *config.Config) *gin.Engine {
	// modo de execução
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// middleware de CORS
	r.Use(CORSMiddleware())

	// a raiz redireciona para a documentação
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	// documentação Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// autenticação (sem login, com limite de tentativas)
		authHandler := api.NewAuthHandler(cfg)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.LoginRateLimit(5, time.Minute), authHandler.Login)
		}

		// rotas protegidas por JWT
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			// importação de extratos OFX
			importHandler := api.NewImportHandler()
			importGroup := authorized.Group("/import")
			{
				importGroup.POST("", importHandler.Save)
				importGroup.POST("/preview", importHandler.Preview)
			}

			// resumo do período
			summaryHandler := api.NewSummaryHandler()
			authorized.GET("/summary", summaryHandler.GetSummary)

			// ledger
			ledgerHandler := api.NewLedgerHandler()
			transactions := authorized.Group("/transactions")
			{
				transactions.GET("", ledgerHandler.List)
				transactions.DELETE("", ledgerHandler.Clear)
				transactions.POST("/reconcile", ledgerHandler.Reconcile)
				transactions.DELETE("/period", ledgerHandler.DeletePeriod)
			}

			// exportação
			exportHandler := api.NewExportHandler()
			export := authorized.Group("/export")
			{
				export.GET("/csv", exportHandler.ExportCSV)
				export.GET("/excel", exportHandler.ExportExcel)
			}

			// relatório por e-mail
			reportHandler := api.NewReportHandler(cfg)
			authorized.POST("/report/email", reportHandler.SendEmail)
		}
	}

	// verificação de saúde
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware middleware de CORS
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
