package services

import (
	"errors"

	"ecom/models"
	"ecom/repository"
)

type ProductService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) List() ([]models.Product, error) {
	return s.products.FindAll()
}

func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.products.FindByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: "Product not found"}
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

// 取得商品圖片原始位元組與content type
func (s *ProductService) GetImage(id uint) ([]byte, string, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, "", err
	}
	if len(product.ImageData) == 0 {
		return nil, "", &NotFoundError{Message: "Image not found"}
	}
	return product.ImageData, product.ImageType, nil
}

func (s *ProductService) Search(keyword string) ([]models.Product, error) {
	return s.products.Search(keyword)
}

func (s *ProductService) Add(product models.Product, imageName, imageType string, imageData []byte) (*models.Product, error) {
	product.ImageName = imageName
	product.ImageType = imageType
	product.ImageData = imageData

	if err := s.products.Create(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// 更新商品。只有在有附上新圖檔時才替換圖片
func (s *ProductService) Update(id uint, in models.Product, imageName, imageType string, imageData []byte) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Brand = in.Brand
	product.Price = in.Price
	product.Category = in.Category
	product.StockQuantity = in.StockQuantity
	product.Available = in.Available

	if len(imageData) > 0 {
		product.ImageName = imageName
		product.ImageType = imageType
		product.ImageData = imageData
	}

	if err := s.products.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.products.Delete(id)
}
