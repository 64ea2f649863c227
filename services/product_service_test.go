package services

import (
	"bytes"
	"testing"

	"ecom/models"

	"github.com/shopspring/decimal"
)

func testProduct(name, category string) models.Product {
	return models.Product{
		Name:          name,
		Description:   "test product",
		Brand:         "Acme",
		Price:         decimal.NewFromInt(100),
		Category:      category,
		StockQuantity: 5,
		Available:     true,
	}
}

func TestAddProductStoresImage(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	image := []byte{0xff, 0xd8, 0xff, 0xe0}
	product, err := svc.Add(testProduct("Keyboard", "peripherals"), "kb.jpg", "image/jpeg", image)
	if err != nil {
		t.Fatalf("add product: %v", err)
	}

	data, contentType, err := svc.GetImage(product.ID)
	if err != nil {
		t.Fatalf("get image: %v", err)
	}
	if contentType != "image/jpeg" || !bytes.Equal(data, image) {
		t.Fatalf("image not stored byte-for-byte: %q %v", contentType, data)
	}
}

func TestUpdateProductKeepsImageWithoutNewFile(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	image := []byte{1, 2, 3}
	product, _ := svc.Add(testProduct("Keyboard", "peripherals"), "kb.jpg", "image/jpeg", image)

	in := testProduct("Mechanical Keyboard", "peripherals")
	updated, err := svc.Update(product.ID, in, "", "", nil)
	if err != nil {
		t.Fatalf("update product: %v", err)
	}
	if updated.Name != "Mechanical Keyboard" {
		t.Fatalf("name not updated: %q", updated.Name)
	}
	if !bytes.Equal(updated.ImageData, image) || updated.ImageName != "kb.jpg" {
		t.Fatal("image should be untouched when no new file is supplied")
	}

	//附上新圖檔時才替換
	newImage := []byte{9, 9, 9}
	updated, err = svc.Update(product.ID, in, "kb2.png", "image/png", newImage)
	if err != nil {
		t.Fatalf("update product with image: %v", err)
	}
	if !bytes.Equal(updated.ImageData, newImage) || updated.ImageType != "image/png" {
		t.Fatal("image should be replaced when a new file is supplied")
	}
}

func TestSearchProducts(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())
	svc.Add(testProduct("Keyboard", "peripherals"), "", "", nil)
	svc.Add(testProduct("Mouse", "peripherals"), "", "", nil)
	svc.Add(testProduct("Desk", "furniture"), "", "", nil)

	results, err := svc.Search("keyboard")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Keyboard" {
		t.Fatalf("unexpected search results: %+v", results)
	}

	results, _ = svc.Search("peripherals")
	if len(results) != 2 {
		t.Fatalf("expected 2 results for category keyword, got %d", len(results))
	}
}

func TestDeleteProduct(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())
	product, _ := svc.Add(testProduct("Keyboard", "peripherals"), "", "", nil)

	if err := svc.Delete(product.ID); err != nil {
		t.Fatalf("delete product: %v", err)
	}

	_, err := svc.Get(product.ID)
	wantNotFound(t, err)

	err = svc.Delete(999)
	wantNotFound(t, err)
}
