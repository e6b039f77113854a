package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-restaurant-operations/models"
	"go-restaurant-operations/store"
)

type createOrderRequest struct {
	CustomerID  int `json:"customer_id" validate:"required,min=1"`
	TableNumber int `json:"table_number" validate:"required,min=1"`
}

type addLineRequest struct {
	MenuItemID int `json:"menu_item_id" validate:"required,min=1"`
	Quantity   int `json:"quantity" validate:"required,min=1"`
}

func CreateOrder(ops *store.Operations) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := ops.CreateOrder(req.CustomerID, req.TableNumber)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		notifyClients("orderCreated", order)
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Order created successfully",
			"data":    order,
		})
	}
}

func GetOrder(ops *store.Operations) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("order_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order_id must be an integer"})
			return
		}
		order, err := ops.GetOrder(orderID)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GetActiveOrders lists a customer's CREATED and IN_PROGRESS orders.
func GetActiveOrders(ops *store.Operations) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, err := strconv.Atoi(c.Query("customer_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "customer_id query must be an integer"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Active orders fetched successfully",
			"data":    ops.FindActiveOrdersForCustomer(customerID),
		})
	}
}

func AddOrderLine(ops *store.Operations) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("order_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order_id must be an integer"})
			return
		}

		var req addLineRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := ops.AddOrderLine(orderID, req.MenuItemID, req.Quantity)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func CancelOrder(ops *store.Operations) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("order_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order_id must be an integer"})
			return
		}
		order, err := ops.CancelOrder(orderID)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		notifyClients("orderCancelled", order)
		c.JSON(http.StatusOK, order)
	}
}

// PlaceOrderAndBill appends a batch of lines and bills the order in one
// request. One bad line fails the whole batch with nothing persisted.
func PlaceOrderAndBill(ops *store.Operations) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("order_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order_id must be an integer"})
			return
		}

		var body struct {
			Lines []addLineRequest `json:"lines" validate:"required,min=1,dive"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		lines := make([]models.OrderLine, 0, len(body.Lines))
		for _, line := range body.Lines {
			lines = append(lines, models.OrderLine{MenuItemID: line.MenuItemID, Quantity: line.Quantity})
		}

		bill, err := ops.PlaceOrderAndBill(orderID, lines)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		notifyClients("orderBilled", bill)
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Order billed successfully",
			"data":    bill,
		})
	}
}
