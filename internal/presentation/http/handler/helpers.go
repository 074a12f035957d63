package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/kuittikone/pkg/pagination"
	"github.com/sangkips/kuittikone/pkg/utils"
)

// GetClaims extracts the token claims set by the auth middleware
func GetClaims(c *gin.Context) *utils.JWTClaims {
	v, exists := c.Get("claims")
	if !exists {
		return nil
	}
	claims, ok := v.(*utils.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}

// bindPagination reads page and per_page from the query string
func bindPagination(c *gin.Context) *pagination.PaginationParams {
	params := pagination.DefaultPagination()
	_ = c.ShouldBindQuery(params)
	params.Validate()
	return params
}
