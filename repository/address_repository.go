package repository

import (
	"ecom/models"

	"gorm.io/gorm"
)

type AddressRepository interface {
	Create(address *models.Address) error
	FindByID(id uint) (*models.Address, error)
	FindByUserID(userID uint) ([]models.Address, error)
	Save(address *models.Address) error
	Delete(id uint) error
	ClearDefault(userID uint, exceptID uint) error
	SetDefault(userID uint, id uint) error
}

type addressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(address *models.Address) error {
	return r.db.Create(address).Error
}

func (r *addressRepository) FindByID(id uint) (*models.Address, error) {
	var address models.Address
	if err := r.db.First(&address, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &address, nil
}

func (r *addressRepository) FindByUserID(userID uint) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.db.Where("user_id = ?", userID).Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *addressRepository) Save(address *models.Address) error {
	return r.db.Save(address).Error
}

func (r *addressRepository) Delete(id uint) error {
	return r.db.Delete(&models.Address{}, id).Error
}

func (r *addressRepository) ClearDefault(userID uint, exceptID uint) error {
	return clearDefault(r.db, &models.Address{}, userID, exceptID)
}

func (r *addressRepository) SetDefault(userID uint, id uint) error {
	return setExclusiveDefault(r.db, &models.Address{}, userID, id)
}
