package repository

// SequenceRepository contador atómico por (empresa, tienda, tipo) para
// códigos legibles (SalesID-n, GRN-n, WastageID-n). Reemplaza el patrón
// "último registro + 1", que pierde números bajo concurrencia.
type SequenceRepository interface {
	Next(companyID, shopID, kind string) (int64, error)
}
