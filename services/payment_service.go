package services

import (
	"errors"

	"ecom/models"
	"ecom/repository"
)

type PaymentMethodInput struct {
	CardholderName string
	CardNumber     string
	CardType       string
	ExpiryMonth    string
	ExpiryYear     string
	IsDefault      bool
}

func (s *UserService) ListPaymentMethods(userID uint) ([]models.PaymentMethod, error) {
	return s.payments.FindByUserID(userID)
}

// 新增付款方式。卡號僅在長度驗證後截取末四碼，完整卡號不落地也不寫log
func (s *UserService) AddPaymentMethod(userID uint, in PaymentMethodInput) (*models.PaymentMethod, error) {
	if _, err := s.GetProfile(userID); err != nil {
		return nil, err
	}

	if len(in.CardNumber) < 13 || len(in.CardNumber) > 19 {
		return nil, &ValidationError{Message: "Invalid card number"}
	}
	lastFour := in.CardNumber[len(in.CardNumber)-4:]

	if in.IsDefault {
		if err := s.payments.ClearDefault(userID, 0); err != nil {
			return nil, err
		}
	}

	method := models.PaymentMethod{
		UserID:         userID,
		CardholderName: in.CardholderName,
		CardNumber:     lastFour,
		CardType:       in.CardType,
		ExpiryMonth:    in.ExpiryMonth,
		ExpiryYear:     in.ExpiryYear,
		IsDefault:      in.IsDefault,
	}
	if err := s.payments.Create(&method); err != nil {
		return nil, err
	}
	return &method, nil
}

func (s *UserService) DeletePaymentMethod(userID, methodID uint) error {
	if _, err := s.findOwnedPaymentMethod(userID, methodID, "Unauthorized to delete this payment method"); err != nil {
		return err
	}
	return s.payments.Delete(methodID)
}

func (s *UserService) SetDefaultPaymentMethod(userID, methodID uint) (*models.PaymentMethod, error) {
	if _, err := s.findOwnedPaymentMethod(userID, methodID, "Unauthorized to modify this payment method"); err != nil {
		return nil, err
	}

	if err := s.payments.SetDefault(userID, methodID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Message: "Payment method not found"}
		}
		return nil, err
	}
	return s.payments.FindByID(methodID)
}

func (s *UserService) findOwnedPaymentMethod(userID, methodID uint, denied string) (*models.PaymentMethod, error) {
	method, err := s.payments.FindByID(methodID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: "Payment method not found"}
	}
	if err != nil {
		return nil, err
	}
	if method.UserID != userID {
		return nil, &AuthorizationError{Message: denied}
	}
	return method, nil
}
