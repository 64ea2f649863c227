package handlers

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"ecom/models"
	"ecom/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type productRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Brand         string          `json:"brand"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	StockQuantity uint            `json:"stockQuantity"`
	Available     bool            `json:"available"`
}

func (r productRequest) toModel() models.Product {
	return models.Product{
		Name:          r.Name,
		Description:   r.Description,
		Brand:         r.Brand,
		Price:         r.Price,
		Category:      r.Category,
		StockQuantity: r.StockQuantity,
		Available:     r.Available,
	}
}

// 從multipart part讀出圖檔內容
func readImageFile(file *multipart.FileHeader) ([]byte, error) {
	opened, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer opened.Close()
	return io.ReadAll(opened)
}

// 查詢商品列表，不含圖片位元組
func GetProductListHandler(c *gin.Context, svc *services.ProductService) {
	products, err := svc.List()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// 查詢商品詳細資料
func GetProductDataHandler(c *gin.Context, svc *services.ProductService) {
	productID, ok := parseIDParam(c, "productID")
	if !ok {
		return
	}

	product, err := svc.Get(productID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// 以原始位元組回傳商品圖片，content type取自上傳時的紀錄
func GetProductImageHandler(c *gin.Context, svc *services.ProductService) {
	productID, ok := parseIDParam(c, "productID")
	if !ok {
		return
	}

	data, contentType, err := svc.GetImage(productID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Data(http.StatusOK, contentType, data)
}

// 以關鍵字搜尋商品
func SearchProductsHandler(c *gin.Context, svc *services.ProductService) {
	keyword := c.Query("keyword")

	products, err := svc.Search(keyword)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// 新增商品，multipart含product(JSON)與imageFile兩個part
func CreateProductHandler(c *gin.Context, svc *services.ProductService) {
	var req productRequest
	if err := json.Unmarshal([]byte(c.PostForm("product")), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid product data",
		})
		return
	}

	file, err := c.FormFile("imageFile")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Missing image file",
		})
		return
	}

	data, err := readImageFile(file)
	if err != nil {
		writeError(c, err)
		return
	}

	contentType := file.Header.Get("Content-Type")
	product, err := svc.Add(req.toModel(), file.Filename, contentType, data)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// 修改商品，只有附上新圖檔時才替換圖片
func UpdateProductHandler(c *gin.Context, svc *services.ProductService) {
	productID, ok := parseIDParam(c, "productID")
	if !ok {
		return
	}

	var req productRequest
	if err := json.Unmarshal([]byte(c.PostForm("product")), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid product data",
		})
		return
	}

	var (
		imageName   string
		contentType string
		data        []byte
	)
	if file, err := c.FormFile("imageFile"); err == nil {
		data, err = readImageFile(file)
		if err != nil {
			writeError(c, err)
			return
		}
		imageName = file.Filename
		contentType = file.Header.Get("Content-Type")
	}

	product, err := svc.Update(productID, req.toModel(), imageName, contentType, data)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// 刪除商品
func DeleteProductHandler(c *gin.Context, svc *services.ProductService) {
	productID, ok := parseIDParam(c, "productID")
	if !ok {
		return
	}

	if err := svc.Delete(productID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted successfully",
	})
}
