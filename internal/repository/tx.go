package repository

import "gorm.io/gorm"

// TxManager scopes a unit of work to one database transaction. The
// callback's mutations commit together or roll back together; rollback is
// guaranteed on any error or panic inside fn.
type TxManager interface {
	Do(fn func(tx *gorm.DB) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db: db}
}

func (m *gormTxManager) Do(fn func(tx *gorm.DB) error) error {
	return m.db.Transaction(fn)
}
