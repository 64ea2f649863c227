package routers

import (
	"ecom/handlers"
	"ecom/jwt"
	"ecom/middleware"
	"ecom/repository"
	"ecom/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouters(db *gorm.DB, issuer *jwt.Issuer) *gin.Engine {
	//建立各repository與service
	userRepo := repository.NewUserRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	paymentRepo := repository.NewPaymentMethodRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)

	userService := services.NewUserService(userRepo, addressRepo, paymentRepo, issuer)
	orderService := services.NewOrderService(orderRepo)
	productService := services.NewProductService(productRepo)

	//建立Gin路由器
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization"},
		ExposeHeaders: []string{"Authorization"},
	}))
	if err := router.SetTrustedProxies(nil); err != nil {
		return nil
	}

	router.Use(middleware.AuthMiddleware(issuer))

	api := router.Group("/api")
	{
		////無須權限
		//註冊帳號
		api.POST("/auth/register", func(c *gin.Context) {
			handlers.RegisterHandler(c, userService)
		})
		//登入帳號
		api.POST("/auth/login", func(c *gin.Context) {
			handlers.LoginHandler(c, userService)
		})
		//查詢商品列表
		api.GET("/products", func(c *gin.Context) {
			handlers.GetProductListHandler(c, productService)
		})
		//搜尋商品
		api.GET("/products/search", func(c *gin.Context) {
			handlers.SearchProductsHandler(c, productService)
		})
		//查詢商品詳細資料
		api.GET("/product/:productID", func(c *gin.Context) {
			handlers.GetProductDataHandler(c, productService)
		})
		//查詢商品圖片
		api.GET("/product/:productID/image", func(c *gin.Context) {
			handlers.GetProductImageHandler(c, productService)
		})

		//登出
		api.POST("/auth/logout", middleware.CheckLoginMiddleware(), func(c *gin.Context) {
			handlers.LogOutHandler(c, userService)
		})

		////需要登入，使用中間件檢查是否登入
		user := api.Group("/auth/user", middleware.CheckLoginMiddleware())
		{
			//查詢使用者資料
			user.GET("/:userID/profile", func(c *gin.Context) {
				handlers.GetUserProfileHandler(c, userService)
			})
			//修改使用者資料
			user.PUT("/:userID/profile", func(c *gin.Context) {
				handlers.UpdateUserProfileHandler(c, userService)
			})
			//上傳大頭照
			user.POST("/:userID/upload-photo", func(c *gin.Context) {
				handlers.UploadPhotoHandler(c, userService)
			})
			//查詢大頭照
			user.GET("/:userID/photo", func(c *gin.Context) {
				handlers.GetUserPhotoHandler(c, userService)
			})

			//查詢地址列表
			user.GET("/:userID/addresses", func(c *gin.Context) {
				handlers.GetAddressesHandler(c, userService)
			})
			//新增地址
			user.POST("/:userID/address", func(c *gin.Context) {
				handlers.AddAddressHandler(c, userService)
			})
			//修改地址
			user.PUT("/:userID/address/:addressID", func(c *gin.Context) {
				handlers.UpdateAddressHandler(c, userService)
			})
			//刪除地址
			user.DELETE("/:userID/address/:addressID", func(c *gin.Context) {
				handlers.DeleteAddressHandler(c, userService)
			})
			//設定預設地址
			user.PUT("/:userID/address/:addressID/default", func(c *gin.Context) {
				handlers.SetDefaultAddressHandler(c, userService)
			})

			//查詢付款方式列表
			user.GET("/:userID/payment-methods", func(c *gin.Context) {
				handlers.GetPaymentMethodsHandler(c, userService)
			})
			//新增付款方式
			user.POST("/:userID/payment-method", func(c *gin.Context) {
				handlers.AddPaymentMethodHandler(c, userService)
			})
			//刪除付款方式
			user.DELETE("/:userID/payment-method/:paymentMethodID", func(c *gin.Context) {
				handlers.DeletePaymentMethodHandler(c, userService)
			})
			//設定預設付款方式
			user.PUT("/:userID/payment-method/:paymentMethodID/default", func(c *gin.Context) {
				handlers.SetDefaultPaymentMethodHandler(c, userService)
			})

			//送出訂單
			user.POST("/:userID/orders", func(c *gin.Context) {
				handlers.SendOrderHandler(c, orderService)
			})
			//查詢訂單列表
			user.GET("/:userID/orders", func(c *gin.Context) {
				handlers.GetOrderListHandler(c, orderService)
			})
			//查詢訂單詳細資訊
			user.GET("/:userID/orders/:orderID", func(c *gin.Context) {
				handlers.GetOrderDataHandler(c, orderService)
			})
			//取消訂單
			user.PUT("/:userID/orders/:orderID/cancel", func(c *gin.Context) {
				handlers.CancelOrderHandler(c, orderService)
			})
		}

		////需要admin身分，使用中間件檢查是否登入及admin權限
		catalogAdmin := api.Group("", middleware.CheckLoginMiddleware(), middleware.CheckAdminPermissionMiddleware())
		{
			//新增商品
			catalogAdmin.POST("/product", func(c *gin.Context) {
				handlers.CreateProductHandler(c, productService)
			})
			//修改商品
			catalogAdmin.PUT("/product/:productID", func(c *gin.Context) {
				handlers.UpdateProductHandler(c, productService)
			})
			//刪除商品
			catalogAdmin.DELETE("/product/:productID", func(c *gin.Context) {
				handlers.DeleteProductHandler(c, productService)
			})
		}

		admin := api.Group("/admin", middleware.CheckLoginMiddleware(), middleware.CheckAdminPermissionMiddleware())
		{
			//查詢使用者列表
			admin.GET("/users", func(c *gin.Context) {
				handlers.GetUserListHandler(c, userService)
			})
			//查詢使用者完整資料
			admin.GET("/user/:userID", func(c *gin.Context) {
				handlers.GetUserProfileAdminHandler(c, userService)
			})
			//查詢使用者大頭照
			admin.GET("/user/:userID/photo", func(c *gin.Context) {
				handlers.GetUserPhotoAdminHandler(c, userService)
			})
			//查詢特定使用者的訂單列表
			admin.GET("/user/:userID/orders", func(c *gin.Context) {
				handlers.GetUserOrdersAdminHandler(c, orderService)
			})
			//查詢訂單詳細資訊
			admin.GET("/orders/:orderID", func(c *gin.Context) {
				handlers.GetOrderAdminHandler(c, orderService)
			})
			//更新訂單狀態與出貨日期
			admin.PUT("/orders/:orderID", func(c *gin.Context) {
				handlers.UpdateOrderAdminHandler(c, orderService)
			})
		}
	}

	return router
}
