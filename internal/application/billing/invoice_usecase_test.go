package billing

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/hostal-pro/internal/application/dto"
	"github.com/tu-usuario/hostal-pro/internal/domain"
	"github.com/tu-usuario/hostal-pro/internal/domain/entity"
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	seq      int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: map[string]*entity.Invoice{}}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) GetByContractAndPeriod(contractID, period string) (*entity.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.ContractID == contractID && inv.Period == period {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) ListByContract(contractID string, limit, offset int) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.ContractID == contractID {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) List(status string, limit, offset int) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if status == "" || inv.Status == status {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	if _, ok := r.invoices[inv.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) NextNumber(year int) (string, error) {
	r.seq++
	return fmt.Sprintf("F-%d-%06d", year, r.seq), nil
}

type fakeContractRepo struct {
	contracts map[string]*entity.Contract
}

func (r *fakeContractRepo) Create(c *entity.Contract) error  { r.contracts[c.ID] = c; return nil }
func (r *fakeContractRepo) GetByID(id string) (*entity.Contract, error) {
	return r.contracts[id], nil
}
func (r *fakeContractRepo) GetActiveByRoom(roomID string) (*entity.Contract, error) {
	for _, c := range r.contracts {
		if c.RoomID == roomID && c.Status == entity.ContractStatusActive {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeContractRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Contract, error) {
	return nil, nil
}
func (r *fakeContractRepo) List(limit, offset int) ([]*entity.Contract, error) { return nil, nil }
func (r *fakeContractRepo) Update(c *entity.Contract) error                    { r.contracts[c.ID] = c; return nil }

type fakeTenantRepo struct {
	tenants map[string]*entity.Tenant
}

func (r *fakeTenantRepo) Create(t *entity.Tenant) error              { r.tenants[t.ID] = t; return nil }
func (r *fakeTenantRepo) GetByID(id string) (*entity.Tenant, error)  { return r.tenants[id], nil }
func (r *fakeTenantRepo) GetByDocument(doc string) (*entity.Tenant, error) {
	for _, t := range r.tenants {
		if t.Document == doc {
			return t, nil
		}
	}
	return nil, nil
}
func (r *fakeTenantRepo) List(limit, offset int) ([]*entity.Tenant, error) { return nil, nil }
func (r *fakeTenantRepo) Update(t *entity.Tenant) error                    { r.tenants[t.ID] = t; return nil }
func (r *fakeTenantRepo) Delete(id string) error                           { delete(r.tenants, id); return nil }

type fakeNotifier struct {
	sent []string // userID|title
}

func (n *fakeNotifier) Notify(userID, title, body string) error {
	n.sent = append(n.sent, userID+"|"+title)
	return nil
}

// ── Setup ─────────────────────────────────────────────────────────────────────

func setupBilling() (*InvoiceUseCase, *fakeInvoiceRepo, *fakeNotifier) {
	invoices := newFakeInvoiceRepo()
	contracts := &fakeContractRepo{contracts: map[string]*entity.Contract{
		"ct-1": {
			ID:          "ct-1",
			RoomID:      "room-1",
			TenantID:    "ten-1",
			StartDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			MonthlyRent: decimal.NewFromInt(500000),
			Status:      entity.ContractStatusActive,
		},
		"ct-finished": {
			ID:       "ct-finished",
			RoomID:   "room-2",
			TenantID: "ten-1",
			Status:   entity.ContractStatusFinished,
		},
	}}
	tenants := &fakeTenantRepo{tenants: map[string]*entity.Tenant{
		"ten-1": {ID: "ten-1", UserID: "user-1", FullName: "Ana Peñalosa", Document: "123"},
	}}
	notifier := &fakeNotifier{}
	uc := NewInvoiceUseCase(invoices, contracts, tenants, notifier, nil)
	return uc, invoices, notifier
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestGenerate_CreaFacturaPendienteYNotifica(t *testing.T) {
	uc, _, notifier := setupBilling()

	resp, err := uc.Generate(dto.GenerateInvoiceRequest{ContractID: "ct-1", Period: "2026-08"})
	require.NoError(t, err)

	assert.Equal(t, "ct-1", resp.ContractID)
	assert.Equal(t, "2026-08", resp.Period)
	assert.Equal(t, entity.InvoiceStatusPending, resp.Status)
	assert.True(t, resp.Amount.Equal(decimal.NewFromInt(500000)), "el monto sale de la renta del contrato")
	assert.Equal(t, "F-2026-000001", resp.Number)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "user-1|Nueva factura de arriendo", notifier.sent[0])
}

func TestGenerate_PeriodoYaFacturado_Duplicado(t *testing.T) {
	uc, _, _ := setupBilling()

	_, err := uc.Generate(dto.GenerateInvoiceRequest{ContractID: "ct-1", Period: "2026-08"})
	require.NoError(t, err)

	_, err = uc.Generate(dto.GenerateInvoiceRequest{ContractID: "ct-1", Period: "2026-08"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestGenerate_PeriodoInvalido(t *testing.T) {
	uc, _, _ := setupBilling()

	_, err := uc.Generate(dto.GenerateInvoiceRequest{ContractID: "ct-1", Period: "agosto-2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGenerate_ContratoNoActivo(t *testing.T) {
	uc, _, _ := setupBilling()

	_, err := uc.Generate(dto.GenerateInvoiceRequest{ContractID: "ct-finished", Period: "2026-08"})
	assert.ErrorIs(t, err, domain.ErrContractNotActive)
}

func TestGenerate_ContratoInexistente(t *testing.T) {
	uc, _, _ := setupBilling()

	_, err := uc.Generate(dto.GenerateInvoiceRequest{ContractID: "ct-nope", Period: "2026-08"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMarkPaid_SoloPendientes(t *testing.T) {
	uc, repo, _ := setupBilling()

	resp, err := uc.Generate(dto.GenerateInvoiceRequest{ContractID: "ct-1", Period: "2026-08"})
	require.NoError(t, err)

	paid, err := uc.MarkPaid(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)

	// pagar dos veces no se permite
	_, err = uc.MarkPaid(resp.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	stored, _ := repo.GetByID(resp.ID)
	assert.Equal(t, entity.InvoiceStatusPaid, stored.Status)
}

func TestCancel_FacturaPagadaNoSeAnula(t *testing.T) {
	uc, _, _ := setupBilling()

	resp, err := uc.Generate(dto.GenerateInvoiceRequest{ContractID: "ct-1", Period: "2026-08"})
	require.NoError(t, err)
	_, err = uc.MarkPaid(resp.ID)
	require.NoError(t, err)

	_, err = uc.Cancel(resp.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestGenerate_ConsecutivoIncrementa(t *testing.T) {
	uc, _, _ := setupBilling()

	a, err := uc.Generate(dto.GenerateInvoiceRequest{ContractID: "ct-1", Period: "2026-07"})
	require.NoError(t, err)
	b, err := uc.Generate(dto.GenerateInvoiceRequest{ContractID: "ct-1", Period: "2026-08"})
	require.NoError(t, err)

	assert.Equal(t, "F-2026-000001", a.Number)
	assert.Equal(t, "F-2026-000002", b.Number)
}
