package repositories

import (
	"context"

	"gorm.io/gorm"

	"pico/internal/models/db_models"
)

type PaymentRepository interface {
	// CreateWithCredit inserts the payment record and credits the purchasing
	// user's balance by PurchasedCoin in one transaction. The credit is a
	// no-op when the user row does not exist.
	CreateWithCredit(ctx context.Context, payment *db_models.Payment) error
	FindByEmail(ctx context.Context, email string) ([]db_models.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (p *paymentRepository) CreateWithCredit(ctx context.Context, payment *db_models.Payment) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		return tx.Model(&db_models.User{}).
			Where("email = ?", payment.Email).
			UpdateColumn("coin", gorm.Expr("coin + ?", payment.PurchasedCoin)).Error
	})
}

func (p *paymentRepository) FindByEmail(ctx context.Context, email string) ([]db_models.Payment, error) {
	var payments []db_models.Payment
	err := p.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}
