// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: Copyright The LanceDB Authors

package contracts

// ITable represents a handle to a table that exists in the database.
// A handle is only ever produced by a successful CreateTable or OpenTable;
// holding one is proof the table existed at that moment. Data operations on
// the handle are provided by higher layers and are not part of this
// contract.
type ITable interface {
	// Name returns the name of the table
	Name() string

	// IsOpen returns true until the handle is closed
	IsOpen() bool

	// Close releases the handle. It does not affect the remote table.
	Close() error
}
