package handlers

import (
	"net/http"

	"github.com/akerley/pocketledger/internal/core/domain"
	"github.com/akerley/pocketledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// registerMetaRoutes registers the static lookup routes: supported
// currencies and category tables. These are closed sets, so no service is
// involved.
func registerMetaRoutes(rg *gin.RouterGroup) {
	rg.GET("/currencies", listCurrencies)
	rg.GET("/categories", listCategories)
}

func listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(domain.SupportedCurrencies()))
}

func listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Expense: domain.CategoriesFor(domain.TransactionExpense),
		Income:  domain.CategoriesFor(domain.TransactionIncome),
	})
}
