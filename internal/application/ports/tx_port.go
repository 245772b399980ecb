package ports

import "context"

// TxRunner ejecuta fn dentro de una transacción de base de datos.
// Los repositorios deben usar el ctx recibido por fn para participar en la transacción;
// si fn retorna error se descartan todos los cambios.
type TxRunner interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}
