package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-restaurant-operations/store"
)

type settleBillRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
}

func GenerateBill(ops *store.Operations) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("order_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order_id must be an integer"})
			return
		}

		bill, err := ops.GenerateBill(orderID)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		notifyClients("orderBilled", bill)
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Bill generated successfully",
			"data":    bill,
		})
	}
}

func SettleBill(ops *store.Operations) gin.HandlerFunc {
	return func(c *gin.Context) {
		billID, err := strconv.Atoi(c.Param("bill_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bill_id must be an integer"})
			return
		}

		var req settleBillRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		bill, err := ops.SettleBill(billID, req.PaymentMethod)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		notifyClients("billSettled", bill)
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Bill settled successfully",
			"data":    bill,
		})
	}
}

func GetBill(ops *store.Operations) gin.HandlerFunc {
	return func(c *gin.Context) {
		billID, err := strconv.Atoi(c.Param("bill_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bill_id must be an integer"})
			return
		}
		bill, err := ops.GetBill(billID)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, bill)
	}
}

func GetBillForOrder(ops *store.Operations) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("order_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order_id must be an integer"})
			return
		}
		bill, err := ops.GetBillForOrder(orderID)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, bill)
	}
}
