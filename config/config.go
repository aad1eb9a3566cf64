package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config configuração da aplicação
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Email    EmailConfig    `mapstructure:"email"`
}

// ServerConfig configuração do servidor HTTP
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig configuração do banco de dados
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
}

// AuthConfig credenciais do usuário único do sistema.
// Password aceita texto puro ou um hash bcrypt (prefixo "$2").
type AuthConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// JWTConfig configuração dos tokens de sessão
type JWTConfig struct {
	Secret      string        `mapstructure:"secret"`
	ExpireHours int           `mapstructure:"expire_hours"`
	ExpireTime  time.Duration `mapstructure:"-"`
}

// EmailConfig configuração do envio de relatórios por e-mail
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	To       string `mapstructure:"to"`
}

var (
	// GlobalConfig instância global da configuração
	GlobalConfig *Config
)

// LoadConfig carrega a configuração.
// Prioridade: variáveis de ambiente > arquivo externo > padrão embutido.
// configPath: caminho opcional de um arquivo de configuração externo
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. Carrega primeiro a configuração padrão embutida
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("falha ao ler a configuração embutida: %w", err)
	}

	// 2. Tenta carregar um arquivo externo (opcional, sobrepõe o padrão)
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("aviso: não foi possível ler o arquivo de configuração %s: %v", configPath, err)
		} else {
			log.Printf("configuração externa aplicada: %s", configPath)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/financas")
		externalViper.AddConfigPath("$HOME/.financas")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Printf("aviso: falha ao mesclar a configuração externa: %v", err)
			} else {
				log.Printf("configuração externa aplicada: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	// 3. Variáveis de ambiente (FINANCAS_SERVER_PORT etc.)
	v.SetEnvPrefix("FINANCAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("falha ao interpretar a configuração: %w", err)
	}

	if cfg.JWT.ExpireHours <= 0 {
		cfg.JWT.ExpireHours = 24
	}
	cfg.JWT.ExpireTime = time.Duration(cfg.JWT.ExpireHours) * time.Hour

	GlobalConfig = &cfg

	return &cfg, nil
}

// MustLoadConfig carrega a configuração; entra em pânico em caso de falha
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("falha ao carregar a configuração: %v", err))
	}
	return cfg
}

// GetConfig devolve a configuração global
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("configuração não inicializada, chame LoadConfig antes")
	}
	return GlobalConfig
}

// PrintConfig imprime a configuração atual (sem dados sensíveis)
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("configuração atual:")
	log.Printf("  servidor: %s (modo: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	log.Printf("  banco: %s@%s:%s/%s",
		GlobalConfig.Database.Username,
		GlobalConfig.Database.Host,
		GlobalConfig.Database.Port,
		GlobalConfig.Database.DBName)
	log.Printf("  e-mail: %v", GlobalConfig.Email.Enabled)
}
