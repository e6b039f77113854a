package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-restaurant-operations/models"
	"go-restaurant-operations/store"
)

func GetTables(ops *store.Operations) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Tables fetched successfully",
			"data":    ops.ListTables(),
		})
	}
}

func GetFreeTables(ops *store.Operations) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Free tables fetched successfully",
			"data":    ops.ListFreeTables(),
		})
	}
}

func GetTable(ops *store.Operations) gin.HandlerFunc {
	return func(c *gin.Context) {
		tableNumber, err := strconv.Atoi(c.Param("table_number"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "table_number must be an integer"})
			return
		}
		table, err := ops.GetTable(tableNumber)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, table)
	}
}

func CreateTable(ops *store.Operations) gin.HandlerFunc {
	return func(c *gin.Context) {
		var table models.Table
		if err := c.BindJSON(&table); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&table); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		created, err := ops.AddTable(table)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Table created successfully",
			"data":    created,
		})
	}
}

func ReserveTable(ops *store.Operations) gin.HandlerFunc {
	return func(c *gin.Context) {
		tableNumber, err := strconv.Atoi(c.Param("table_number"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "table_number must be an integer"})
			return
		}
		table, err := ops.ReserveTable(tableNumber)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, table)
	}
}

// ReleaseTable is the manual override; it is refused while an active order
// still references the table.
func ReleaseTable(ops *store.Operations) gin.HandlerFunc {
	return func(c *gin.Context) {
		tableNumber, err := strconv.Atoi(c.Param("table_number"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "table_number must be an integer"})
			return
		}
		table, err := ops.ReleaseTable(tableNumber)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, table)
	}
}
