package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db        *DB
	slotRepo  contract.SlotRepo
	shiftRepo contract.ShiftRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.slotRepo = newSlotRepo(i.db.conn)
	i.shiftRepo = newShiftRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		slotRepo:  newSlotRepo(db),
		shiftRepo: newShiftRepo(db),
	}
}

// Slot returns the recurring slot repository
func (i *instance) Slot() contract.SlotRepo {
	return i.slotRepo
}

// Shift returns the shift repository
func (i *instance) Shift() contract.ShiftRepo {
	return i.shiftRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		// already inside a transaction
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
