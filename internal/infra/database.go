package infra

import (
	"fmt"

	"github.com/victor-jaber/Maybach-system-sub000/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that GORM
// cannot express (partial indexes, CHECK constraints).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations applies AutoMigrate plus the manual schema patches. Also
// called directly by the integration test suite against its container DB.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Cliente{},
		&model.Marca{},
		&model.Veiculo{},
		&model.Loja{},
		&model.Contrato{},
		&model.ContratoParcela{},
		&model.ContratoArquivo{},
		&model.AssinaturaContrato{},
		&model.Venda{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// Each statement is guarded by an existence check so re-running on an
// already-patched DB is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// At most one live (pending/validated) signature token per
		// contract. The issue flow invalidates-then-inserts inside one
		// transaction; this partial unique index makes the invariant hold
		// even under concurrent issuance.
		{"partial unique index: one live token per contract", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uni_assinaturas_contrato_viva') THEN
    CREATE UNIQUE INDEX uni_assinaturas_contrato_viva
        ON assinatura_contratos (contrato_id)
        WHERE status IN ('pending', 'validated');
  END IF;
END $$`},
		// Guard rail under the service-layer state machine: the DB never
		// accepts a status outside the four known ones.
		{"check constraint: contrato status domain", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_contratos_status') THEN
    ALTER TABLE contratos ADD CONSTRAINT chk_contratos_status
        CHECK (status IN ('draft', 'generated', 'signed', 'cancelled'));
  END IF;
END $$`},
		// Partial index for the artifact backfill cron: signed contracts
		// are the only rows it scans.
		{"partial index: signed contracts", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_contratos_signed') THEN
    CREATE INDEX idx_contratos_signed ON contratos (id) WHERE status = 'signed';
  END IF;
END $$`},
		// Partial index for the "vendas sem contrato" audit query.
		{"partial index: vendas sem contrato", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_vendas_sem_contrato') THEN
    CREATE INDEX idx_vendas_sem_contrato ON vendas (created_at) WHERE contrato_id IS NULL;
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
