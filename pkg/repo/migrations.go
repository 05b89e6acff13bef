package repo

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/caixahub/syncd/pkg/database"
)

func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, &gormigrate.Options{
		TableName:                 "gorm_migrations",
		IDColumnName:              "id",
		IDColumnSize:              255,
		UseTransaction:            false,
		ValidateUnknownMigrations: false,
	}, getMigrations())

	return m.Migrate()
}

func getMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "2026_01_12_Initial",
			Migrate: func(db *gorm.DB) error {
				return db.AutoMigrate(
					&database.Company{},
					&database.BankAccount{},
					&database.Transaction{},
					&database.Category{},
					&database.CategoryRule{},
					&database.ResourceUsage{},
					&database.SyncLease{},
				)
			},
		},
		{
			ID: "2026_01_12_SeedSystemCategories",
			Migrate: func(db *gorm.DB) error {
				return seedSystemCategories(db)
			},
		},
		{
			ID: "2026_02_02_CategoryNameUniquePerCompany",
			Migrate: func(db *gorm.DB) error {
				return db.AutoMigrate(&database.Category{})
			},
		},
	}
}

func seedSystemCategories(db *gorm.DB) error {
	seeds := []database.Category{
		{Name: "Uncategorized", Type: database.CategoryTypeExpense},
		{Name: "Mercado", Type: database.CategoryTypeExpense,
			Keywords: []string{"supermercado", "mercado", "atacadao", "carrefour", "pao de acucar"}},
		{Name: "Restaurantes", Type: database.CategoryTypeExpense,
			Keywords: []string{"restaurante", "ifood", "lanchonete", "padaria", "pizzaria"}},
		{Name: "Transporte", Type: database.CategoryTypeExpense,
			Keywords: []string{"uber", "99app", "posto", "combustivel", "estacionamento", "pedagio"}},
		{Name: "Salário", Type: database.CategoryTypeIncome,
			Keywords: []string{"salario", "folha", "pagamento salario", "pro-labore"}},
		{Name: "Contas de consumo", Type: database.CategoryTypeExpense,
			Keywords: []string{"energia", "luz", "agua", "internet", "telefone", "claro", "vivo", "tim"}},
		{Name: "Tarifas bancárias", Type: database.CategoryTypeExpense,
			Keywords: []string{"tarifa", "anuidade", "iof", "taxa de manutencao"}},
		{Name: "Impostos", Type: database.CategoryTypeExpense,
			Keywords: []string{"darf", "das ", "imposto", "inss", "fgts"}},
		{Name: "Transferências", Type: database.CategoryTypeExpense,
			Keywords: []string{"ted", "doc", "transferencia"}},
	}

	for i := range seeds {
		seeds[i].ID = uuid.NewString()
		seeds[i].IsSystem = true
	}

	return db.Create(&seeds).Error
}
