package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bharatbooks/bharatbooks/internal/clock"
	"github.com/bharatbooks/bharatbooks/internal/config"
	invoicedomain "github.com/bharatbooks/bharatbooks/internal/invoice/domain"
	invoiceservice "github.com/bharatbooks/bharatbooks/internal/invoice/service"
	itemdomain "github.com/bharatbooks/bharatbooks/internal/item/domain"
	itemservice "github.com/bharatbooks/bharatbooks/internal/item/service"
	partydomain "github.com/bharatbooks/bharatbooks/internal/party/domain"
	partyservice "github.com/bharatbooks/bharatbooks/internal/party/service"
	payrolldomain "github.com/bharatbooks/bharatbooks/internal/payroll/domain"
	payrollservice "github.com/bharatbooks/bharatbooks/internal/payroll/service"
	returnsservice "github.com/bharatbooks/bharatbooks/internal/returns/service"
	"github.com/bharatbooks/bharatbooks/internal/seed"
	tenantdomain "github.com/bharatbooks/bharatbooks/internal/tenant/domain"
	tenantservice "github.com/bharatbooks/bharatbooks/internal/tenant/service"
	voucherdomain "github.com/bharatbooks/bharatbooks/internal/voucher/domain"
	voucherservice "github.com/bharatbooks/bharatbooks/internal/voucher/service"
)

type testStack struct {
	server   *Server
	db       *gorm.DB
	node     *snowflake.Node
	tenantID snowflake.ID
}

func setupServerTest(t *testing.T) *testStack {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	assert.NoError(t, err)

	assert.NoError(t, db.AutoMigrate(
		&tenantdomain.Tenant{},
		&partydomain.Party{},
		&itemdomain.Item{},
		&voucherdomain.LedgerAccount{},
		&voucherdomain.Voucher{},
		&voucherdomain.VoucherEntry{},
		&voucherdomain.DocumentSequence{},
		&invoicedomain.Invoice{},
		&invoicedomain.InvoiceLine{},
		&payrolldomain.Employee{},
		&payrolldomain.PayrollRecord{},
		&payrolldomain.PayrollComponent{},
	))

	node, _ := snowflake.NewNode(1)
	log := zap.NewNop()

	tenantID := node.Generate()
	assert.NoError(t, db.Create(&tenantdomain.Tenant{
		ID:        tenantID,
		Name:      "Acme Traders",
		StateCode: "27",
	}).Error)
	assert.NoError(t, seed.EnsureChartOfAccounts(context.Background(), db, node, tenantID))

	cfg := config.Config{
		HTTPPort: "8080",
		Payroll: config.PayrollConfig{
			BasicRatio:   0.5,
			HRARatio:     0.4,
			SpecialRatio: 0.1,
			PFRate:       0.12,
			PTAmount:     200,
		},
	}

	srv := NewServer(ServerParams{
		Gin:        NewEngine(),
		Cfg:        cfg,
		GenID:      node,
		TenantSvc:  tenantservice.NewService(tenantservice.Params{DB: db, Log: log}),
		PartySvc:   partyservice.NewService(partyservice.Params{DB: db, Log: log, GenID: node}),
		ItemSvc:    itemservice.NewService(itemservice.Params{DB: db, Log: log, GenID: node}),
		InvoiceSvc: invoiceservice.NewService(invoiceservice.Params{DB: db, Log: log, GenID: node}),
		VoucherSvc: voucherservice.NewService(voucherservice.Params{DB: db, Log: log, GenID: node}),
		ReturnsSvc: returnsservice.NewService(returnsservice.Params{DB: db, Log: log}),
		PayrollSvc: payrollservice.NewService(payrollservice.Params{
			DB: db, Log: log, GenID: node, Cfg: cfg, Clock: clock.NewSystemClock(),
		}),
	})

	return &testStack{server: srv, db: db, node: node, tenantID: tenantID}
}

func (ts *testStack) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderTenant, ts.tenantID.String())

	w := httptest.NewRecorder()
	ts.server.Engine().ServeHTTP(w, req)
	return w
}

func TestMissingTenantHeaderRejected(t *testing.T) {
	ts := setupServerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/parties", nil)
	w := httptest.NewRecorder()
	ts.server.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_tenant")
}

func TestHealthz(t *testing.T) {
	ts := setupServerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	ts.server.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInvoiceFlowOverHTTP(t *testing.T) {
	ts := setupServerTest(t)

	w := ts.request(t, http.MethodPost, "/api/v1/parties", map[string]any{
		"name":  "Bharat Supplies",
		"type":  "customer",
		"gstin": "27AAPFU0939F1ZV",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var partyResp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &partyResp))

	w = ts.request(t, http.MethodPost, "/api/v1/invoices", map[string]any{
		"party_id":     partyResp.Data.ID,
		"invoice_date": time.Date(2024, time.April, 12, 0, 0, 0, 0, time.UTC).Format(time.RFC3339),
		"lines": []map[string]any{
			{"description": "Widget", "quantity": 2, "rate": 500, "gst_rate_percent": 18},
			{"description": "Gasket", "quantity": 1, "rate": 500, "gst_rate_percent": 5},
		},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var invResp struct {
		Data struct {
			InvoiceNumber string  `json:"invoice_number"`
			SupplyType    string  `json:"supply_type"`
			GrandTotal    float64 `json:"grand_total"`
			RoundOff      float64 `json:"round_off"`
			AmountInWords string  `json:"amount_in_words"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &invResp))
	assert.Equal(t, "INV-202404-0001", invResp.Data.InvoiceNumber)
	assert.Equal(t, "intrastate", invResp.Data.SupplyType)
	assert.InDelta(t, 1603.0, invResp.Data.GrandTotal, 1e-9)
	assert.InDelta(t, 0.5, invResp.Data.RoundOff, 1e-9)
	assert.Equal(t, "One Thousand Six Hundred Three Rupees Only", invResp.Data.AmountInWords)

	w = ts.request(t, http.MethodGet, "/api/v1/returns/summary?month=4&year=2024", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var sumResp struct {
		Data struct {
			Period string `json:"period"`
			GSTR1  struct {
				InvoiceCount int `json:"invoice_count"`
				B2BCount     int `json:"b2b_count"`
			} `json:"gstr1"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &sumResp))
	assert.Equal(t, "Apr 2024", sumResp.Data.Period)
	assert.Equal(t, 1, sumResp.Data.GSTR1.InvoiceCount)
	assert.Equal(t, 1, sumResp.Data.GSTR1.B2BCount)
}

func TestValidationErrorShape(t *testing.T) {
	ts := setupServerTest(t)

	w := ts.request(t, http.MethodPost, "/api/v1/parties", map[string]any{
		"name":  "Bad GSTIN Co",
		"type":  "customer",
		"gstin": "not-a-gstin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
	assert.Contains(t, w.Body.String(), "invalid_gstin")
}

func TestPayrollOverHTTP(t *testing.T) {
	ts := setupServerTest(t)

	w := ts.request(t, http.MethodPost, "/api/v1/employees", map[string]any{
		"name":   "Asha",
		"salary": 20000,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.request(t, http.MethodPost, "/api/v1/payroll/generate", map[string]any{
		"month": 4,
		"year":  2024,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"created_count":1`)

	w = ts.request(t, http.MethodPost, "/api/v1/payroll/generate", map[string]any{
		"month": 4,
		"year":  2024,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"skipped_count":1`)

	w = ts.request(t, http.MethodGet, "/api/v1/payroll/records?month=4&year=2024", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"net_salary":18600`)
}
