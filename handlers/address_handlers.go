package handlers

import (
	"net/http"

	"ecom/services"

	"github.com/gin-gonic/gin"
)

type addressRequest struct {
	Label     string `json:"label"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phoneNumber"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
}

func (r addressRequest) toInput() services.AddressInput {
	return services.AddressInput{
		Label:     r.Label,
		FullName:  r.FullName,
		Phone:     r.Phone,
		Street:    r.Street,
		City:      r.City,
		State:     r.State,
		ZipCode:   r.ZipCode,
		Country:   r.Country,
		IsDefault: r.IsDefault,
	}
}

func GetAddressesHandler(c *gin.Context, svc *services.UserService) {
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}

	addresses, err := svc.ListAddresses(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, addresses)
}

func AddAddressHandler(c *gin.Context, svc *services.UserService) {
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}

	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	address, err := svc.AddAddress(userID, req.toInput())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, address)
}

func UpdateAddressHandler(c *gin.Context, svc *services.UserService) {
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}
	addressID, ok := parseIDParam(c, "addressID")
	if !ok {
		return
	}

	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	address, err := svc.UpdateAddress(userID, addressID, req.toInput())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, address)
}

func DeleteAddressHandler(c *gin.Context, svc *services.UserService) {
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}
	addressID, ok := parseIDParam(c, "addressID")
	if !ok {
		return
	}

	if err := svc.DeleteAddress(userID, addressID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Address deleted successfully",
	})
}

func SetDefaultAddressHandler(c *gin.Context, svc *services.UserService) {
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}
	addressID, ok := parseIDParam(c, "addressID")
	if !ok {
		return
	}

	address, err := svc.SetDefaultAddress(userID, addressID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, address)
}
