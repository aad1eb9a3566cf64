package database

import (
	"fmt"
	"log"

	"financas/config"
	"financas/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init inicializa a conexão com o banco de dados
func Init(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("falha ao conectar ao banco: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// Parâmetros do pool de conexões
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	// Migração automática; os índices de date e source_file vêm das tags
	// do modelo (source_file precisa responder em O(log n) à checagem de
	// arquivo duplicado)
	if err := DB.AutoMigrate(&models.Transaction{}); err != nil {
		return err
	}

	log.Println("banco de dados inicializado")
	return nil
}

// GetDB devolve a conexão com o banco
func GetDB() *gorm.DB {
	return DB
}
