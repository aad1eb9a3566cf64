package main

import (
	"flag"
	"log"
	"strings"

	"financas/config"
	"financas/database"
	"financas/middleware"
	"financas/router"
)

// @title Relatório de Finanças API
// @version 1.0
// @description API de finanças pessoais: importação de extratos OFX, categorização automática, resumo por período, grade editável e exportação de dados
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "caminho do arquivo de configuração externo (opcional)")
	flag.StringVar(&configFile, "c", "", "caminho do arquivo de configuração externo (abreviado)")
	flag.StringVar(&port, "port", "", "porta de escuta, ex.: 8080 ou :8080")
	flag.StringVar(&port, "p", "", "porta de escuta (abreviado)")
	flag.BoolVar(&showVersion, "version", false, "exibe a versão")
	flag.BoolVar(&showVersion, "v", false, "exibe a versão (abreviado)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("Relatório de Finanças v1.0.0")
		return
	}

	// carrega a configuração (padrão embutido + arquivo externo opcional)
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("falha ao carregar a configuração: %v", err)
	}

	// a linha de comando sobrepõe a porta configurada
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("porta definida pela linha de comando: %s", port)
	}

	config.PrintConfig()

	// banco de dados
	if err := database.Init(cfg); err != nil {
		log.Fatalf("falha ao inicializar o banco de dados: %v", err)
	}

	// JWT
	middleware.InitJWT(cfg)

	r := router.SetupRouter(cfg)

	log.Printf("==========================================")
	log.Printf("  💰 Relatório de Finanças no ar")
	log.Printf("==========================================")
	log.Printf("  Swagger: http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API:     http://localhost%s/api/v1/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("falha ao iniciar o servidor: %v", err)
	}
}
