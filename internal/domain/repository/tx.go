package repository

import "context"

// TxRepos repositorios ligados a una misma transacción de BD.
type TxRepos struct {
	Contracts ContractRepository
	Rooms     RoomRepository
}

// TxRunner ejecuta fn dentro de una transacción: si fn devuelve error se hace
// rollback, si no, commit. Abrir o cerrar un contrato toca contrato y
// habitación a la vez y no puede quedar a medias.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(repos TxRepos) error) error
}
