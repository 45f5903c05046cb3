package order_test

import (
	"github.com/shopspring/decimal"

	appinventory "github.com/jhoicas/Pos-api/internal/application/inventory"
	"github.com/jhoicas/Pos-api/internal/application/order"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/pkg/logger"
)

const (
	testCompanyID = "00000000-0000-0000-0000-000000000001"
	testShopID    = "00000000-0000-0000-0000-000000000002"
	testUserID    = "00000000-0000-0000-0000-000000000003"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// engine agrupa el caso de uso bajo prueba y sus colaboradores fake.
type engine struct {
	uc        *order.UseCase
	store     *memStore
	products  *memProductRepo
	boms      *memBOMRepo
	publisher *recordPublisher
}

// newEngine construye el motor de órdenes sobre el almacén en memoria.
func newEngine() *engine {
	store := newMemStore()
	products := &memProductRepo{products: make(map[string]*entity.Product)}
	boms := &memBOMRepo{boms: make(map[string]*entity.BillOfMaterials)}
	publisher := &recordPublisher{}

	uc := order.New(
		&memTxRunner{store},
		products,
		boms,
		&memPaymentRepo{store},
		&memFGRepo{store},
		appinventory.NewLedger(),
		publisher,
		fakeReceipts{},
		logger.New(logger.Config{Env: "production", Level: "error"}),
	)
	return &engine{uc: uc, store: store, products: products, boms: boms, publisher: publisher}
}

// addFinishedGood registra un producto terminado con receta.
func (e *engine) addFinishedGood(productID string, items ...entity.BOMItem) {
	e.products.products[productID] = &entity.Product{
		ProductID:       productID,
		CompanyID:       testCompanyID,
		Name:            productID,
		HasRawMaterials: true,
		Active:          true,
	}
	if len(items) > 0 {
		e.boms.boms[productID] = &entity.BillOfMaterials{
			BomID:          "bom-" + productID,
			CompanyID:      testCompanyID,
			FinishedGoodID: productID,
			Items:          items,
		}
	}
}

// addDirectProduct registra un producto que se debita directo del stock.
func (e *engine) addDirectProduct(productID string) {
	e.products.products[productID] = &entity.Product{
		ProductID:   productID,
		CompanyID:   testCompanyID,
		Name:        productID,
		RequiresGRN: true,
		Active:      true,
	}
}

// addServiceProduct registra un producto sin seguimiento de inventario.
func (e *engine) addServiceProduct(productID string) {
	e.products.products[productID] = &entity.Product{
		ProductID: productID,
		CompanyID: testCompanyID,
		Name:      productID,
		Active:    true,
	}
}
