package order_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// ReturnOrderItems
// ──────────────────────────────────────────────────────────────────────────────

// sellLatte vende qty unidades de cafe-latte con receta [(A,2),(B,3)] y
// stock inicial A=20, B=30. Devuelve el transactionCode.
func sellLatte(t *testing.T, e *engine, qty string) string {
	t.Helper()
	e.addFinishedGood("cafe-latte",
		entity.BOMItem{ProductID: "A", Qty: dec("2")},
		entity.BOMItem{ProductID: "B", Qty: dec("3")},
	)
	e.store.setStock("A", dec("20"), dec("1.50"))
	e.store.setStock("B", dec("30"), dec("0.80"))

	code, err := e.uc.CreateOrder(context.Background(), testCompanyID, testShopID, testUserID, dto.CreateOrderRequest{
		BillTotal: dec("25.00"),
		Items:     []dto.OrderItemInput{{ProductID: "cafe-latte", Quantity: dec(qty), SellingPrice: dec("5.00")}},
	})
	require.NoError(t, err)
	return code
}

// Devolución parcial en buen estado: se repone la expansión BOM de la
// cantidad devuelta y la línea conserva el resto (conservación de unidades).
func TestReturnOrder_ParcialEnBuenEstado(t *testing.T) {
	e := newEngine()
	code := sellLatte(t, e, "5") // A: 20->10, B: 30->15

	err := e.uc.ReturnOrderItems(context.Background(), testCompanyID, testShopID, testUserID, code, dto.ReturnOrderRequest{
		Items: []dto.ReturnItemInput{{ProductID: "cafe-latte", Quantity: dec("2"), Condition: entity.ConditionGood}},
	})
	require.NoError(t, err)

	assert.True(t, e.store.stockQty("A").Equal(dec("14")), "10 + 2*2 = 14")
	assert.True(t, e.store.stockQty("B").Equal(dec("21")), "15 + 3*2 = 21")

	line := e.store.lines[0]
	assert.True(t, line.FinishedGoodQty.Equal(dec("3")), "restante 5-2=3")
	assert.Equal(t, entity.StatusPartiallyReturned, line.TransactionStatus)
}

// Devolución total de la única línea: línea Returned y orden Returned.
func TestReturnOrder_TotalMarcaOrdenReturned(t *testing.T) {
	e := newEngine()
	code := sellLatte(t, e, "5")

	err := e.uc.ReturnOrderItems(context.Background(), testCompanyID, testShopID, testUserID, code, dto.ReturnOrderRequest{
		Items: []dto.ReturnItemInput{{ProductID: "cafe-latte", Quantity: dec("5"), Condition: entity.ConditionGood}},
	})
	require.NoError(t, err)

	assert.True(t, e.store.stockQty("A").Equal(dec("20")))
	assert.True(t, e.store.stockQty("B").Equal(dec("30")))
	assert.Equal(t, entity.StatusReturned, e.store.lines[0].TransactionStatus)
	assert.Equal(t, entity.StatusReturned, e.store.payments[code].TransactionStatus)
}

// Dañado o vencido: merma sí, crédito de inventario no.
func TestReturnOrder_DanadoNoReponeYCreaMerma(t *testing.T) {
	e := newEngine()
	code := sellLatte(t, e, "5") // A queda en 10, B en 15

	err := e.uc.ReturnOrderItems(context.Background(), testCompanyID, testShopID, testUserID, code, dto.ReturnOrderRequest{
		Items: []dto.ReturnItemInput{{ProductID: "cafe-latte", Quantity: dec("2"), Condition: entity.ConditionDamaged}},
	})
	require.NoError(t, err)

	assert.True(t, e.store.stockQty("A").Equal(dec("10")), "sin crédito de inventario")
	assert.True(t, e.store.stockQty("B").Equal(dec("15")))

	require.Len(t, e.store.wastages, 1)
	w := e.store.wastages[0]
	assert.Equal(t, "WastageID-1", w.WastageID)
	assert.Equal(t, "cafe-latte", w.ProductID)
	assert.True(t, w.Quantity.Equal(dec("2")))
	assert.Equal(t, entity.ConditionDamaged, w.Condition)
	assert.Equal(t, "Returned Order", w.Reason)

	assert.True(t, e.store.lines[0].FinishedGoodQty.Equal(dec("3")),
		"la cantidad restante baja aunque no haya crédito")
}

// La cantidad devuelta no puede exceder la restante de la línea.
func TestReturnOrder_ExcedeRestante(t *testing.T) {
	e := newEngine()
	code := sellLatte(t, e, "5")

	err := e.uc.ReturnOrderItems(context.Background(), testCompanyID, testShopID, testUserID, code, dto.ReturnOrderRequest{
		Items: []dto.ReturnItemInput{{ProductID: "cafe-latte", Quantity: dec("6"), Condition: entity.ConditionGood}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.True(t, e.store.stockQty("A").Equal(dec("10")), "nada persiste")
}

// Una línea solo admite una devolución: tras quedar Partially Returned ya
// no vuelve a matchear.
func TestReturnOrder_UnaDevolucionPorLinea(t *testing.T) {
	e := newEngine()
	code := sellLatte(t, e, "5")

	first := dto.ReturnOrderRequest{
		Items: []dto.ReturnItemInput{{ProductID: "cafe-latte", Quantity: dec("1"), Condition: entity.ConditionGood}},
	}
	require.NoError(t, e.uc.ReturnOrderItems(context.Background(), testCompanyID, testShopID, testUserID, code, first))

	err := e.uc.ReturnOrderItems(context.Background(), testCompanyID, testShopID, testUserID, code, first)
	require.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

// Con dos líneas, devolver solo una deja la orden Partially Returned.
func TestReturnOrder_EstadoAgregadoConVariasLineas(t *testing.T) {
	e := newEngine()
	e.addDirectProduct("gaseosa")
	e.addDirectProduct("agua")
	e.store.setStock("gaseosa", dec("10"), dec("0.50"))
	e.store.setStock("agua", dec("10"), dec("0.30"))

	code, err := e.uc.CreateOrder(context.Background(), testCompanyID, testShopID, testUserID, dto.CreateOrderRequest{
		BillTotal: dec("5.00"),
		Items: []dto.OrderItemInput{
			{ProductID: "gaseosa", Quantity: dec("2"), SellingPrice: dec("2.00")},
			{ProductID: "agua", Quantity: dec("1"), SellingPrice: dec("1.00")},
		},
	})
	require.NoError(t, err)

	err = e.uc.ReturnOrderItems(context.Background(), testCompanyID, testShopID, testUserID, code, dto.ReturnOrderRequest{
		Items: []dto.ReturnItemInput{{ProductID: "gaseosa", Quantity: dec("2"), Condition: entity.ConditionGood}},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPartiallyReturned, e.store.payments[code].TransactionStatus,
		"queda una línea Completed, la orden no está toda devuelta")
	assert.True(t, e.store.stockQty("gaseosa").Equal(dec("10")))
	assert.True(t, e.store.stockQty("agua").Equal(dec("9")))
}

func TestReturnOrder_ValidacionDeEntrada(t *testing.T) {
	e := newEngine()
	code := sellLatte(t, e, "5")

	// Sin items.
	err := e.uc.ReturnOrderItems(context.Background(), testCompanyID, testShopID, testUserID, code, dto.ReturnOrderRequest{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	// Condición desconocida.
	err = e.uc.ReturnOrderItems(context.Background(), testCompanyID, testShopID, testUserID, code, dto.ReturnOrderRequest{
		Items: []dto.ReturnItemInput{{ProductID: "cafe-latte", Quantity: dec("1"), Condition: "Broken"}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	// Cantidad cero.
	err = e.uc.ReturnOrderItems(context.Background(), testCompanyID, testShopID, testUserID, code, dto.ReturnOrderRequest{
		Items: []dto.ReturnItemInput{{ProductID: "cafe-latte", Quantity: dec("0"), Condition: entity.ConditionGood}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Producto vendido en otra orden o nunca vendido: no hay línea que matchee.
func TestReturnOrder_ProductoNoVendidoEnLaOrden(t *testing.T) {
	e := newEngine()
	code := sellLatte(t, e, "5")
	e.addDirectProduct("gaseosa")
	e.store.setStock("gaseosa", dec("10"), dec("0.50"))

	err := e.uc.ReturnOrderItems(context.Background(), testCompanyID, testShopID, testUserID, code, dto.ReturnOrderRequest{
		Items: []dto.ReturnItemInput{{ProductID: "gaseosa", Quantity: dec("1"), Condition: entity.ConditionGood}},
	})
	require.ErrorIs(t, err, domain.ErrTransactionNotFound)
}
