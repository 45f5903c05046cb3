package order_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// CreateOrder
// ──────────────────────────────────────────────────────────────────────────────

// Una línea de 5 unidades de un producto con receta [(A,2),(B,3)] debe
// debitar A en 10 y B en 15, y capturar el WAC vigente en el snapshot.
func TestCreateOrder_ExpandeBOMYDebitaMateriasPrimas(t *testing.T) {
	e := newEngine()
	e.addFinishedGood("cafe-latte",
		entity.BOMItem{ProductID: "A", Qty: dec("2")},
		entity.BOMItem{ProductID: "B", Qty: dec("3")},
	)
	e.store.setStock("A", dec("20"), dec("1.50"))
	e.store.setStock("B", dec("30"), dec("0.80"))

	code, err := e.uc.CreateOrder(context.Background(), testCompanyID, testShopID, testUserID, dto.CreateOrderRequest{
		BillTotal: dec("25.00"),
		Items: []dto.OrderItemInput{
			{ProductID: "cafe-latte", Quantity: dec("5"), SellingPrice: dec("5.00")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "SalesID-1", code)

	assert.True(t, e.store.stockQty("A").Equal(dec("10")), "A: 20 - 2*5 = 10")
	assert.True(t, e.store.stockQty("B").Equal(dec("15")), "B: 30 - 3*5 = 15")

	payment := e.store.payments[code]
	require.NotNil(t, payment)
	assert.Equal(t, entity.StatusCompleted, payment.TransactionStatus)
	assert.Equal(t, "PaymentID-1", payment.PaymentID)

	require.Len(t, e.store.lines, 1)
	line := e.store.lines[0]
	assert.Equal(t, "FTID-1-001", line.FtID)
	require.Len(t, line.UsedProductDetails, 2)
	assert.True(t, line.UsedProductDetails[0].Quantity.Equal(dec("10")))
	assert.True(t, line.UsedProductDetails[0].CurrentWAC.Equal(dec("1.50")),
		"el snapshot captura el WAC vigente al debitar")
	assert.True(t, line.UsedProductDetails[1].Quantity.Equal(dec("15")))

	assert.True(t, e.store.balance.Equal(dec("25.00")), "la orden suma su total al balance diario")
}

// Un producto RequiresGRN debita su propio stock, sin receta.
func TestCreateOrder_ProductoDirectoDebitaSuStock(t *testing.T) {
	e := newEngine()
	e.addDirectProduct("gaseosa")
	e.store.setStock("gaseosa", dec("10"), dec("0.50"))

	_, err := e.uc.CreateOrder(context.Background(), testCompanyID, testShopID, testUserID, dto.CreateOrderRequest{
		BillTotal: dec("6.00"),
		Items: []dto.OrderItemInput{
			{ProductID: "gaseosa", Quantity: dec("3"), SellingPrice: dec("2.00")},
		},
	})
	require.NoError(t, err)
	assert.True(t, e.store.stockQty("gaseosa").Equal(dec("7")), "10 - 3 = 7")

	require.Len(t, e.store.lines, 1)
	require.Len(t, e.store.lines[0].UsedProductDetails, 1)
	assert.Equal(t, "gaseosa", e.store.lines[0].UsedProductDetails[0].ProductID)
}

// Un producto sin clasificación no mueve inventario: snapshot vacío.
func TestCreateOrder_ProductoServicioSinMovimiento(t *testing.T) {
	e := newEngine()
	e.addServiceProduct("domicilio")

	_, err := e.uc.CreateOrder(context.Background(), testCompanyID, testShopID, testUserID, dto.CreateOrderRequest{
		BillTotal: dec("3.00"),
		Items: []dto.OrderItemInput{
			{ProductID: "domicilio", Quantity: dec("1"), SellingPrice: dec("3.00")},
		},
	})
	require.NoError(t, err)
	require.Len(t, e.store.lines, 1)
	assert.Empty(t, e.store.lines[0].UsedProductDetails)
}

// Si un débito dejaría el stock negativo, la operación falla y nada persiste.
func TestCreateOrder_StockInsuficienteAbortaTodo(t *testing.T) {
	e := newEngine()
	e.addDirectProduct("gaseosa")
	e.addFinishedGood("cafe-latte", entity.BOMItem{ProductID: "A", Qty: dec("2")})
	e.store.setStock("gaseosa", dec("10"), dec("0.50"))
	e.store.setStock("A", dec("3"), dec("1.00"))

	// La primera línea alcanza; la segunda necesita 2*3=6 > 3 disponible.
	_, err := e.uc.CreateOrder(context.Background(), testCompanyID, testShopID, testUserID, dto.CreateOrderRequest{
		BillTotal: dec("20.00"),
		Items: []dto.OrderItemInput{
			{ProductID: "gaseosa", Quantity: dec("4"), SellingPrice: dec("2.00")},
			{ProductID: "cafe-latte", Quantity: dec("3"), SellingPrice: dec("4.00")},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Todo-o-nada: la línea 1 también se revierte.
	assert.True(t, e.store.stockQty("gaseosa").Equal(dec("10")), "el débito de la línea 1 se revierte")
	assert.True(t, e.store.stockQty("A").Equal(dec("3")))
	assert.Empty(t, e.store.payments, "no queda transacción de pago")
	assert.Empty(t, e.store.lines, "no quedan líneas")
	assert.True(t, e.store.balance.IsZero())
}

// Producto con receta ausente o vacía: la venta no procede.
func TestCreateOrder_BOMAusenteOVacia(t *testing.T) {
	e := newEngine()
	// Producto marcado HasRawMaterials pero sin receta registrada.
	e.addFinishedGood("sin-receta")

	_, err := e.uc.CreateOrder(context.Background(), testCompanyID, testShopID, testUserID, dto.CreateOrderRequest{
		Items: []dto.OrderItemInput{
			{ProductID: "sin-receta", Quantity: dec("1"), SellingPrice: dec("1.00")},
		},
	})
	require.ErrorIs(t, err, domain.ErrBOMNotFound)

	// Receta registrada pero con cero entradas: mismo tratamiento.
	e.boms.boms["sin-receta"] = &entity.BillOfMaterials{FinishedGoodID: "sin-receta"}
	_, err = e.uc.CreateOrder(context.Background(), testCompanyID, testShopID, testUserID, dto.CreateOrderRequest{
		Items: []dto.OrderItemInput{
			{ProductID: "sin-receta", Quantity: dec("1"), SellingPrice: dec("1.00")},
		},
	})
	require.ErrorIs(t, err, domain.ErrBOMNotFound)
}

func TestCreateOrder_ValidacionDeEntrada(t *testing.T) {
	e := newEngine()
	e.addDirectProduct("gaseosa")
	e.store.setStock("gaseosa", dec("10"), dec("0.50"))

	cases := []struct {
		name string
		in   dto.CreateOrderRequest
	}{
		{"sin items", dto.CreateOrderRequest{}},
		{"cantidad cero", dto.CreateOrderRequest{Items: []dto.OrderItemInput{
			{ProductID: "gaseosa", Quantity: dec("0"), SellingPrice: dec("1.00")},
		}}},
		{"cantidad negativa", dto.CreateOrderRequest{Items: []dto.OrderItemInput{
			{ProductID: "gaseosa", Quantity: dec("-1"), SellingPrice: dec("1.00")},
		}}},
		{"precio negativo", dto.CreateOrderRequest{Items: []dto.OrderItemInput{
			{ProductID: "gaseosa", Quantity: dec("1"), SellingPrice: dec("-1.00")},
		}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.uc.CreateOrder(context.Background(), testCompanyID, testShopID, testUserID, tc.in)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput), "esperaba ErrInvalidInput, fue: %v", err)
		})
	}
	assert.True(t, e.store.stockQty("gaseosa").Equal(dec("10")), "el stock no cambió")
}

func TestCreateOrder_ProductoInexistente(t *testing.T) {
	e := newEngine()
	_, err := e.uc.CreateOrder(context.Background(), testCompanyID, testShopID, testUserID, dto.CreateOrderRequest{
		Items: []dto.OrderItemInput{
			{ProductID: "fantasma", Quantity: dec("1"), SellingPrice: dec("1.00")},
		},
	})
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

// Con diez o más líneas el orden se conserva: el índice de línea lleva
// padding para que ft_id ordene igual como texto que como número.
func TestCreateOrder_OrdenDeLineasConMasDeDiezItems(t *testing.T) {
	e := newEngine()

	in := dto.CreateOrderRequest{BillTotal: dec("12.00")}
	for i := 1; i <= 12; i++ {
		id := fmt.Sprintf("svc-%02d", i)
		e.addServiceProduct(id)
		in.Items = append(in.Items, dto.OrderItemInput{
			ProductID: id, Quantity: dec("1"), SellingPrice: dec("1.00"),
		})
	}

	code, err := e.uc.CreateOrder(context.Background(), testCompanyID, testShopID, testUserID, in)
	require.NoError(t, err)

	details, err := e.uc.GetOrder(context.Background(), testCompanyID, testShopID, code)
	require.NoError(t, err)
	require.Len(t, details.FinishedGoods, 12)
	for i, line := range details.FinishedGoods {
		assert.Equal(t, fmt.Sprintf("svc-%02d", i+1), line.FinishedGoodID,
			"la línea %d debe conservar su posición", i+1)
	}
}

// Los códigos son consecutivos por tienda: SalesID-1, SalesID-2, ...
func TestCreateOrder_CodigosConsecutivos(t *testing.T) {
	e := newEngine()
	e.addServiceProduct("domicilio")

	in := dto.CreateOrderRequest{
		BillTotal: dec("1.00"),
		Items:     []dto.OrderItemInput{{ProductID: "domicilio", Quantity: dec("1"), SellingPrice: dec("1.00")}},
	}
	code1, err := e.uc.CreateOrder(context.Background(), testCompanyID, testShopID, testUserID, in)
	require.NoError(t, err)
	code2, err := e.uc.CreateOrder(context.Background(), testCompanyID, testShopID, testUserID, in)
	require.NoError(t, err)
	assert.Equal(t, "SalesID-1", code1)
	assert.Equal(t, "SalesID-2", code2)
}
