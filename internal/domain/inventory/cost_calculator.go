package inventory

import "github.com/shopspring/decimal"

// CostCalculator implementa la lógica de costo promedio ponderado (servicio de dominio).
// NuevoWAC = ((StockActual * WACActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// Se recalcula únicamente en entradas (GRN); las salidas consumen al WAC vigente.
func CostCalculator(stockActual, wacActual, cantEntrada, costoEntrada decimal.Decimal) decimal.Decimal {
	sum := stockActual.Add(cantEntrada)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stockActual.Mul(wacActual).Add(cantEntrada.Mul(costoEntrada))
	return num.Div(sum)
}
