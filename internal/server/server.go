// Package server wires the HTTP surface: gin routes, tenant resolution and
// the central error mapping.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/bharatbooks/bharatbooks/internal/config"
	"github.com/bharatbooks/bharatbooks/internal/invoice"
	invoicedomain "github.com/bharatbooks/bharatbooks/internal/invoice/domain"
	"github.com/bharatbooks/bharatbooks/internal/item"
	itemdomain "github.com/bharatbooks/bharatbooks/internal/item/domain"
	"github.com/bharatbooks/bharatbooks/internal/party"
	partydomain "github.com/bharatbooks/bharatbooks/internal/party/domain"
	"github.com/bharatbooks/bharatbooks/internal/payroll"
	payrolldomain "github.com/bharatbooks/bharatbooks/internal/payroll/domain"
	"github.com/bharatbooks/bharatbooks/internal/returns"
	returnsdomain "github.com/bharatbooks/bharatbooks/internal/returns/domain"
	"github.com/bharatbooks/bharatbooks/internal/tenant"
	tenantdomain "github.com/bharatbooks/bharatbooks/internal/tenant/domain"
	"github.com/bharatbooks/bharatbooks/internal/voucher"
	voucherdomain "github.com/bharatbooks/bharatbooks/internal/voucher/domain"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	tenant.Module,
	party.Module,
	item.Module,
	invoice.Module,
	voucher.Module,
	returns.Module,
	payroll.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin() *gin.Engine {
	return NewEngine()
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	genID      *snowflake.Node
	tenantSvc  tenantdomain.Service
	partySvc   partydomain.Service
	itemSvc    itemdomain.Service
	invoiceSvc invoicedomain.Service
	voucherSvc voucherdomain.Service
	returnsSvc returnsdomain.Service
	payrollSvc payrolldomain.Service
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	GenID      *snowflake.Node
	TenantSvc  tenantdomain.Service
	PartySvc   partydomain.Service
	ItemSvc    itemdomain.Service
	InvoiceSvc invoicedomain.Service
	VoucherSvc voucherdomain.Service
	ReturnsSvc returnsdomain.Service
	PayrollSvc payrolldomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		genID:      p.GenID,
		tenantSvc:  p.TenantSvc,
		partySvc:   p.PartySvc,
		itemSvc:    p.ItemSvc,
		invoiceSvc: p.InvoiceSvc,
		voucherSvc: p.VoucherSvc,
		returnsSvc: p.ReturnsSvc,
		payrollSvc: p.PayrollSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api/v1")
	api.Use(s.TenantContext())

	api.GET("/tenant", s.GetTenant)
	api.PATCH("/tenant", s.UpdateTenant)

	api.POST("/parties", s.CreateParty)
	api.GET("/parties", s.ListParties)
	api.GET("/parties/:id", s.GetPartyByID)
	api.PATCH("/parties/:id", s.UpdateParty)
	api.DELETE("/parties/:id", s.DeleteParty)

	api.POST("/items", s.CreateItem)
	api.GET("/items", s.ListItems)
	api.GET("/items/:id", s.GetItemByID)
	api.PATCH("/items/:id", s.UpdateItem)
	api.DELETE("/items/:id", s.DeleteItem)

	api.POST("/invoices", s.CreateInvoice)
	api.GET("/invoices", s.ListInvoices)
	api.GET("/invoices/:id", s.GetInvoiceByID)
	api.POST("/invoices/:id/cancel", s.CancelInvoice)

	api.POST("/accounts", s.CreateAccount)
	api.GET("/accounts", s.ListAccounts)
	api.POST("/vouchers", s.CreateVoucher)
	api.GET("/vouchers", s.ListVouchers)
	api.GET("/vouchers/:id", s.GetVoucherByID)

	api.GET("/returns/summary", s.ReturnsSummary)
	api.GET("/returns/gstr1.xlsx", s.ExportGSTR1)

	api.POST("/employees", s.CreateEmployee)
	api.GET("/employees", s.ListEmployees)
	api.GET("/employees/:id", s.GetEmployeeByID)
	api.PATCH("/employees/:id", s.UpdateEmployee)
	api.POST("/payroll/generate", s.GeneratePayroll)
	api.GET("/payroll/records", s.ListPayrollRecords)
}
