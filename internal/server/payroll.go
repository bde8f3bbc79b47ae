package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	payrolldomain "github.com/bharatbooks/bharatbooks/internal/payroll/domain"
)

func (s *Server) CreateEmployee(c *gin.Context) {
	var req payrolldomain.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.payrollSvc.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListEmployees(c *gin.Context) {
	resp, err := s.payrollSvc.ListEmployees(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetEmployeeByID(c *gin.Context) {
	resp, err := s.payrollSvc.GetEmployee(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateEmployee(c *gin.Context) {
	var req payrolldomain.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.payrollSvc.UpdateEmployee(c.Request.Context(), strings.TrimSpace(c.Param("id")), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type generatePayrollRequest struct {
	Month int `json:"month" binding:"required"`
	Year  int `json:"year" binding:"required"`
}

func (s *Server) GeneratePayroll(c *gin.Context) {
	var req generatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.payrollSvc.Generate(c.Request.Context(), req.Month, req.Year)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListPayrollRecords(c *gin.Context) {
	var query periodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.payrollSvc.ListRecords(c.Request.Context(), query.Month, query.Year)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
