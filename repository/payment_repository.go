package repository

import (
	"ecom/models"

	"gorm.io/gorm"
)

type PaymentMethodRepository interface {
	Create(method *models.PaymentMethod) error
	FindByID(id uint) (*models.PaymentMethod, error)
	FindByUserID(userID uint) ([]models.PaymentMethod, error)
	Save(method *models.PaymentMethod) error
	Delete(id uint) error
	ClearDefault(userID uint, exceptID uint) error
	SetDefault(userID uint, id uint) error
}

type paymentMethodRepository struct {
	db *gorm.DB
}

func NewPaymentMethodRepository(db *gorm.DB) PaymentMethodRepository {
	return &paymentMethodRepository{db: db}
}

func (r *paymentMethodRepository) Create(method *models.PaymentMethod) error {
	return r.db.Create(method).Error
}

func (r *paymentMethodRepository) FindByID(id uint) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	if err := r.db.First(&method, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &method, nil
}

func (r *paymentMethodRepository) FindByUserID(userID uint) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	if err := r.db.Where("user_id = ?", userID).Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

func (r *paymentMethodRepository) Save(method *models.PaymentMethod) error {
	return r.db.Save(method).Error
}

func (r *paymentMethodRepository) Delete(id uint) error {
	return r.db.Delete(&models.PaymentMethod{}, id).Error
}

func (r *paymentMethodRepository) ClearDefault(userID uint, exceptID uint) error {
	return clearDefault(r.db, &models.PaymentMethod{}, userID, exceptID)
}

func (r *paymentMethodRepository) SetDefault(userID uint, id uint) error {
	return setExclusiveDefault(r.db, &models.PaymentMethod{}, userID, id)
}
