// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: Copyright The LanceDB Authors

package internal

import (
	"fmt"
	"sync"

	"github.com/lancedb/lancedb-cloud-go/pkg/contracts"
)

// RemoteTable is a handle to a table that exists on the server. It carries
// the owning connection's transport client and the table name, nothing
// else: no schema, no cached state. Handles are only constructed by a
// successful CreateTable or OpenTable.
type RemoteTable struct {
	client *RestClient
	name   string
	mu     sync.RWMutex
	closed bool
}

// Compile-time check to ensure RemoteTable implements ITable interface
var _ contracts.ITable = (*RemoteTable)(nil)

func NewRemoteTable(client *RestClient, name string) *RemoteTable {
	return &RemoteTable{
		client: client,
		name:   name,
	}
}

// Name returns the name of the table
func (t *RemoteTable) Name() string {
	return t.name
}

// IsOpen returns true until the handle is closed
func (t *RemoteTable) IsOpen() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return !t.closed
}

// Close releases the handle. The remote table is unaffected; there is no
// server-side state to tear down.
func (t *RemoteTable) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	return nil
}

func (t *RemoteTable) String() string {
	return fmt.Sprintf("RemoteTable(%s, host=%s)", t.name, t.client.Host())
}
