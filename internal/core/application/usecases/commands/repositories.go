// Package commands contains the write-side operations of the route checker.
// Every command is built through its constructor and validated again by its
// handler; handlers that persist state do so through a unit of work.
package commands

import (
	"context"

	"deliverychecker/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CheckRepoFactory provides access to the check repository within a transaction.
	CheckRepoFactory interface {
		CheckRepository() ports.CheckRepository
	}

	// CheckUoW manages transactions for check history operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.CheckRepository().Add(ctx, record)
	//
	//   err = uow.Commit(ctx)
	CheckUoW interface {
		TxManager
		CheckRepoFactory
	}

	// CheckUoWFactory creates new check unit of work instances.
	CheckUoWFactory interface {
		Create() CheckUoW
	}
)
