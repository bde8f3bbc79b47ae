package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type periodQuery struct {
	Month int `form:"month" binding:"required"`
	Year  int `form:"year" binding:"required"`
}

func (s *Server) ReturnsSummary(c *gin.Context) {
	var query periodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.returnsSvc.Summary(c.Request.Context(), query.Month, query.Year)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ExportGSTR1(c *gin.Context) {
	var query periodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	file, err := s.returnsSvc.ExportGSTR1(c.Request.Context(), query.Month, query.Year)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("gstr1-%02d-%d.xlsx", query.Month, query.Year)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		AbortWithError(c, err)
		return
	}
}
