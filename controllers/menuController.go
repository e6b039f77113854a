package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"

	"go-restaurant-operations/models"
	"go-restaurant-operations/store"
)

var validate = validator.New()

// statusForError maps the store error kinds onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrDuplicateID),
		errors.Is(err, store.ErrDuplicateName),
		errors.Is(err, store.ErrInvalidState):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func GetMenuItems(ops *store.Operations) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Menu items fetched successfully",
			"data":    ops.ListMenu(),
		})
	}
}

// GetMenuItem resolves the :item_id path param, or a ?name= query when the
// route is /menus/search.
func GetMenuItem(ops *store.Operations) gin.HandlerFunc {
	return func(c *gin.Context) {
		var id *int
		var name *string

		if raw := c.Param("item_id"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "item_id must be an integer"})
				return
			}
			id = &parsed
		}
		if raw, ok := c.GetQuery("name"); ok {
			name = &raw
		}

		item, err := ops.FindMenuItem(id, name)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func CreateMenuItem(ops *store.Operations) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.MenuItem
		if err := c.BindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		created, err := ops.AddMenuItem(item)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Menu item created successfully",
			"data":    created,
		})
	}
}

func UpdateMenuPrice(ops *store.Operations) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.Atoi(c.Param("item_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "item_id must be an integer"})
			return
		}

		var body struct {
			Price decimal.Decimal `json:"price"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updated, err := ops.UpdateMenuPrice(itemID, body.Price)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
