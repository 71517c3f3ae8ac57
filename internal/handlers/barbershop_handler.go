package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-manager/internal/middleware"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type BarbershopHandler struct {
	db *gorm.DB
}

func NewBarbershopHandler(db *gorm.DB) *BarbershopHandler {
	return &BarbershopHandler{db: db}
}

func (h *BarbershopHandler) GetMeBarbershop(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "barbershop_not_found"})
		return
	}

	c.JSON(http.StatusOK, shop)
}

type UpdateBarbershopRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`

	OpenTime        *string `json:"open_time"`
	CloseTime       *string `json:"close_time"`
	SlotIntervalMin *int    `json:"slot_interval_min"`
}

func (h *BarbershopHandler) UpdateMeBarbershop(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req UpdateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "barbershop_not_found"})
		return
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}

	if req.OpenTime != nil {
		if !isValidHM(*req.OpenTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_open_time"})
			return
		}
		shop.OpenTime = *req.OpenTime
	}
	if req.CloseTime != nil {
		if !isValidHM(*req.CloseTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_close_time"})
			return
		}
		shop.CloseTime = *req.CloseTime
	}
	if req.SlotIntervalMin != nil {
		if *req.SlotIntervalMin < 5 || *req.SlotIntervalMin > 120 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_slot_interval"})
			return
		}
		shop.SlotIntervalMin = *req.SlotIntervalMin
	}

	if err := h.db.Save(&shop).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_barbershop"})
		return
	}

	c.JSON(http.StatusOK, shop)
}

func isValidHM(hm string) bool {
	_, err := time.Parse("15:04", hm)
	return err == nil
}
