package services

import (
	"errors"

	"ecom/models"
	"ecom/repository"
)

type AddressInput struct {
	Label     string
	FullName  string
	Phone     string
	Street    string
	City      string
	State     string
	ZipCode   string
	Country   string
	IsDefault bool
}

func (s *UserService) ListAddresses(userID uint) ([]models.Address, error) {
	return s.addresses.FindByUserID(userID)
}

// 新增地址。若標記為預設，先以單一UPDATE清掉該使用者其他預設紀錄
func (s *UserService) AddAddress(userID uint, in AddressInput) (*models.Address, error) {
	if _, err := s.GetProfile(userID); err != nil {
		return nil, err
	}

	if in.IsDefault {
		if err := s.addresses.ClearDefault(userID, 0); err != nil {
			return nil, err
		}
	}

	address := models.Address{
		UserID:    userID,
		Label:     in.Label,
		FullName:  in.FullName,
		Phone:     in.Phone,
		Street:    in.Street,
		City:      in.City,
		State:     in.State,
		ZipCode:   in.ZipCode,
		Country:   in.Country,
		IsDefault: in.IsDefault,
	}
	if err := s.addresses.Create(&address); err != nil {
		return nil, err
	}
	return &address, nil
}

func (s *UserService) UpdateAddress(userID, addressID uint, in AddressInput) (*models.Address, error) {
	address, err := s.findOwnedAddress(userID, addressID, "Unauthorized to update this address")
	if err != nil {
		return nil, err
	}

	if in.IsDefault && !address.IsDefault {
		if err := s.addresses.ClearDefault(userID, addressID); err != nil {
			return nil, err
		}
	}

	address.Label = in.Label
	address.FullName = in.FullName
	address.Phone = in.Phone
	address.Street = in.Street
	address.City = in.City
	address.State = in.State
	address.ZipCode = in.ZipCode
	address.Country = in.Country
	address.IsDefault = in.IsDefault

	if err := s.addresses.Save(address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *UserService) DeleteAddress(userID, addressID uint) error {
	if _, err := s.findOwnedAddress(userID, addressID, "Unauthorized to delete this address"); err != nil {
		return err
	}
	return s.addresses.Delete(addressID)
}

// 設定預設地址，清除與設定包在repository的單一事務內
func (s *UserService) SetDefaultAddress(userID, addressID uint) (*models.Address, error) {
	if _, err := s.findOwnedAddress(userID, addressID, "Unauthorized to modify this address"); err != nil {
		return nil, err
	}

	if err := s.addresses.SetDefault(userID, addressID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Message: "Address not found"}
		}
		return nil, err
	}
	return s.addresses.FindByID(addressID)
}

// 查詢地址並驗證擁有者與路徑上的使用者一致
func (s *UserService) findOwnedAddress(userID, addressID uint, denied string) (*models.Address, error) {
	address, err := s.addresses.FindByID(addressID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: "Address not found"}
	}
	if err != nil {
		return nil, err
	}
	if address.UserID != userID {
		return nil, &AuthorizationError{Message: denied}
	}
	return address, nil
}
