package db

import (
	"log"
	"time"

	"github.com/develtlab/barber-booking/internal/config"
	"github.com/develtlab/barber-booking/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barbershop{},
		&models.BarbershopService{},
		&models.User{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := db.Exec(`
        UPDATE barbershops
        SET timezone = 'America/Sao_Paulo'
        WHERE timezone IS NULL OR timezone = ''
    `).Error; err != nil {
		log.Printf("timezone backfill failed: %v", err)
	}

	// dois clientes não podem confirmar o mesmo horário do mesmo serviço
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_service_slot
        ON bookings (service_id, date)
        WHERE status = 'confirmed'
    `).Error; err != nil {
		log.Fatalf("failed to create booking slot index: %v", err)
	}

	return db
}
