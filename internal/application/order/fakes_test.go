package order_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/application/order"
	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria compartido por los repos fake. El txRunner fake toma un
// snapshot al iniciar y lo restaura si fn falla, imitando el rollback real.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	stocks   map[string]*entity.InventoryStock     // por productID
	payments map[string]*entity.PaymentTransaction // por transactionCode
	lines    []*entity.FinishedGoodTransaction
	wastages []*entity.Wastage
	seqs     map[string]int64
	balance  decimal.Decimal
}

func newMemStore() *memStore {
	return &memStore{
		stocks:   make(map[string]*entity.InventoryStock),
		payments: make(map[string]*entity.PaymentTransaction),
		seqs:     make(map[string]int64),
	}
}

func (s *memStore) setStock(productID string, qty, wac decimal.Decimal) {
	s.stocks[productID] = &entity.InventoryStock{
		CompanyID:           testCompanyID,
		ShopID:              testShopID,
		ProductID:           productID,
		TotalQuantity:       qty,
		WeightedAverageCost: wac,
	}
}

func (s *memStore) stockQty(productID string) decimal.Decimal {
	if st, ok := s.stocks[productID]; ok {
		return st.TotalQuantity
	}
	return decimal.Zero
}

func copyStock(src *entity.InventoryStock) *entity.InventoryStock {
	cp := *src
	return &cp
}

func copyPayment(src *entity.PaymentTransaction) *entity.PaymentTransaction {
	cp := *src
	return &cp
}

func copyLine(src *entity.FinishedGoodTransaction) *entity.FinishedGoodTransaction {
	cp := *src
	cp.UsedProductDetails = append([]entity.UsedProductDetail(nil), src.UsedProductDetails...)
	return &cp
}

func (s *memStore) clone() *memStore {
	out := newMemStore()
	for k, v := range s.stocks {
		out.stocks[k] = copyStock(v)
	}
	for k, v := range s.payments {
		out.payments[k] = copyPayment(v)
	}
	for _, l := range s.lines {
		out.lines = append(out.lines, copyLine(l))
	}
	out.wastages = append(out.wastages, s.wastages...)
	for k, v := range s.seqs {
		out.seqs[k] = v
	}
	out.balance = s.balance
	return out
}

// ── Repos fake ────────────────────────────────────────────────────────────────

type memStockRepo struct{ s *memStore }

func (r *memStockRepo) Get(_, _, productID string) (*entity.InventoryStock, error) {
	if st, ok := r.s.stocks[productID]; ok {
		return copyStock(st), nil
	}
	return nil, nil
}

func (r *memStockRepo) GetForUpdate(_, _, productID string) (*entity.InventoryStock, error) {
	if st, ok := r.s.stocks[productID]; ok {
		return copyStock(st), nil
	}
	return nil, domain.ErrInventoryNotFound
}

func (r *memStockRepo) Update(stock *entity.InventoryStock) error {
	if _, ok := r.s.stocks[stock.ProductID]; !ok {
		return domain.ErrInventoryNotFound
	}
	r.s.stocks[stock.ProductID] = copyStock(stock)
	return nil
}

func (r *memStockRepo) Upsert(stock *entity.InventoryStock) error {
	r.s.stocks[stock.ProductID] = copyStock(stock)
	return nil
}

func (r *memStockRepo) ListByShop(_, _ string) ([]*entity.InventoryStock, error) {
	out := make([]*entity.InventoryStock, 0, len(r.s.stocks))
	for _, st := range r.s.stocks {
		out = append(out, copyStock(st))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

type memPaymentRepo struct{ s *memStore }

func (r *memPaymentRepo) Create(tx *entity.PaymentTransaction) error {
	r.s.payments[tx.TransactionCode] = copyPayment(tx)
	return nil
}

func (r *memPaymentRepo) GetByCode(_, _, code string) (*entity.PaymentTransaction, error) {
	if p, ok := r.s.payments[code]; ok {
		return copyPayment(p), nil
	}
	return nil, nil
}

func (r *memPaymentRepo) UpdateStatus(_, _, code, status string) error {
	p, ok := r.s.payments[code]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	p.TransactionStatus = status
	return nil
}

func (r *memPaymentRepo) ListByShop(_, _ string, limit, offset int) ([]*entity.PaymentTransaction, error) {
	all := make([]*entity.PaymentTransaction, 0, len(r.s.payments))
	for _, p := range r.s.payments {
		all = append(all, copyPayment(p))
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].TransactionDateTime.After(all[j].TransactionDateTime)
	})
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

type memFGRepo struct{ s *memStore }

func (r *memFGRepo) Create(tx *entity.FinishedGoodTransaction) error {
	r.s.lines = append(r.s.lines, copyLine(tx))
	return nil
}

func (r *memFGRepo) ListByCode(_, _, code string) ([]*entity.FinishedGoodTransaction, error) {
	var out []*entity.FinishedGoodTransaction
	for _, l := range r.s.lines {
		if l.TransactionCode == code {
			out = append(out, copyLine(l))
		}
	}
	// mismo orden que el adaptador real: ft_id como texto
	sort.Slice(out, func(i, j int) bool { return out[i].FtID < out[j].FtID })
	return out, nil
}

func (r *memFGRepo) UpdateReturn(id string, remainingQty decimal.Decimal, status string) error {
	for _, l := range r.s.lines {
		if l.ID == id {
			l.FinishedGoodQty = remainingQty
			l.TransactionStatus = status
			return nil
		}
	}
	return domain.ErrTransactionNotFound
}

func (r *memFGRepo) UpdateStatusByCode(_, _, code, status string) error {
	found := false
	for _, l := range r.s.lines {
		if l.TransactionCode == code {
			l.TransactionStatus = status
			found = true
		}
	}
	if !found {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func (r *memFGRepo) ListCompletedInRange(_, _ string, start, end time.Time) ([]*entity.FinishedGoodTransaction, error) {
	var out []*entity.FinishedGoodTransaction
	for _, l := range r.s.lines {
		if l.TransactionStatus == entity.StatusCompleted &&
			!l.TransactionDateTime.Before(start) && !l.TransactionDateTime.After(end) {
			out = append(out, copyLine(l))
		}
	}
	return out, nil
}

func (r *memFGRepo) ListNotCancelledUntil(_, _ string, until time.Time) ([]*entity.FinishedGoodTransaction, error) {
	var out []*entity.FinishedGoodTransaction
	for _, l := range r.s.lines {
		if l.TransactionStatus != entity.StatusCancelled && !l.TransactionDateTime.After(until) {
			out = append(out, copyLine(l))
		}
	}
	return out, nil
}

type memWastageRepo struct{ s *memStore }

func (r *memWastageRepo) Create(w *entity.Wastage) error {
	cp := *w
	r.s.wastages = append(r.s.wastages, &cp)
	return nil
}

func (r *memWastageRepo) ListByShop(_, _ string, limit, offset int) ([]*entity.Wastage, error) {
	return r.s.wastages, nil
}

type memSeqRepo struct{ s *memStore }

func (r *memSeqRepo) Next(_, _, kind string) (int64, error) {
	r.s.seqs[kind]++
	return r.s.seqs[kind], nil
}

type memBalanceRepo struct{ s *memStore }

func (r *memBalanceRepo) Apply(_, _, _ string, _ time.Time, amount decimal.Decimal, _ string) error {
	r.s.balance = r.s.balance.Add(amount)
	return nil
}

// ── TxRunner fake con semántica todo-o-nada ───────────────────────────────────

type memTxRunner struct{ s *memStore }

func (t *memTxRunner) RunOrder(_ context.Context, fn func(
	paymentRepo repository.PaymentTransactionRepository,
	fgRepo repository.FinishedGoodTransactionRepository,
	stockRepo repository.StockRepository,
	wastageRepo repository.WastageRepository,
	seqRepo repository.SequenceRepository,
	balanceRepo repository.DailyBalanceRepository,
) error) error {
	snapshot := t.s.clone()
	err := fn(
		&memPaymentRepo{t.s}, &memFGRepo{t.s}, &memStockRepo{t.s},
		&memWastageRepo{t.s}, &memSeqRepo{t.s}, &memBalanceRepo{t.s},
	)
	if err != nil {
		*t.s = *snapshot
		return err
	}
	return nil
}

// ── Catálogo y recetas fake ───────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product
}

func (r *memProductRepo) GetByProductID(_, productID string) (*entity.Product, error) {
	if p, ok := r.products[productID]; ok {
		return p, nil
	}
	return nil, nil
}

func (r *memProductRepo) ListByCompany(_ string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

type memBOMRepo struct {
	boms map[string]*entity.BillOfMaterials
}

func (r *memBOMRepo) GetByFinishedGoodID(_, finishedGoodID string) (*entity.BillOfMaterials, error) {
	if b, ok := r.boms[finishedGoodID]; ok {
		return b, nil
	}
	return nil, nil
}

func (r *memBOMRepo) ListByCompany(_ string) ([]*entity.BillOfMaterials, error) {
	out := make([]*entity.BillOfMaterials, 0, len(r.boms))
	for _, b := range r.boms {
		out = append(out, b)
	}
	return out, nil
}

// ── Colaboradores fake ────────────────────────────────────────────────────────

type recordPublisher struct {
	events []string
}

func (p *recordPublisher) Publish(event string, payload any) {
	p.events = append(p.events, event)
}

type fakeReceipts struct{}

func (fakeReceipts) GenerateReceiptPDF(_ *dto.OrderDetails) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

// Aserciones estáticas: los fakes implementan los puertos reales.
var (
	_ repository.StockRepository                   = (*memStockRepo)(nil)
	_ repository.PaymentTransactionRepository      = (*memPaymentRepo)(nil)
	_ repository.FinishedGoodTransactionRepository = (*memFGRepo)(nil)
	_ repository.WastageRepository                 = (*memWastageRepo)(nil)
	_ repository.SequenceRepository                = (*memSeqRepo)(nil)
	_ repository.DailyBalanceRepository            = (*memBalanceRepo)(nil)
	_ repository.ProductRepository                 = (*memProductRepo)(nil)
	_ repository.BOMRepository                     = (*memBOMRepo)(nil)
	_ order.TxRunner                               = (*memTxRunner)(nil)
	_ order.ReceiptGenerator                       = (fakeReceipts{})
)
