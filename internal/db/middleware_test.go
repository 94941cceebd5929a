// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/glassworks-service/internal/logging"
)

type fakeDBClient struct {
	withTxCalls int
	lastErr     error
}

func (f *fakeDBClient) Statement(context.Context) sq.StatementBuilderType {
	return sq.StatementBuilder
}

func (f *fakeDBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	f.withTxCalls++
	f.lastErr = fn(ctx)
	return f.lastErr
}

func (f *fakeDBClient) Ping(context.Context) error {
	return nil
}

func (f *fakeDBClient) Close() {}

func TestTransactionMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		status        int
		expectTx      bool
		expectFailure bool
	}{
		{name: "GET skips transaction", method: http.MethodGet, status: http.StatusOK},
		{name: "OPTIONS skips transaction", method: http.MethodOptions, status: http.StatusNoContent},
		{name: "POST commits on success", method: http.MethodPost, status: http.StatusCreated, expectTx: true},
		{name: "POST rolls back on client error", method: http.MethodPost, status: http.StatusBadRequest, expectTx: true, expectFailure: true},
		{name: "DELETE rolls back on server error", method: http.MethodDelete, status: http.StatusInternalServerError, expectTx: true, expectFailure: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(fakeDBClient)

			handler := TransactionMiddleware(client, logging.NewNoopLogger())(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
				}),
			)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(tt.method, "/api/v0/customers", nil))

			if rr.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, rr.Code)
			}
			if (client.withTxCalls == 1) != tt.expectTx {
				t.Errorf("expected transaction %v, got %d calls", tt.expectTx, client.withTxCalls)
			}
			if (client.lastErr != nil) != tt.expectFailure {
				t.Errorf("expected failure %v, got %v", tt.expectFailure, client.lastErr)
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name         string
		page, size   int64
		limit, offst uint64
	}{
		{name: "defaults", page: 0, size: 0, limit: defaultPageSize, offst: 0},
		{name: "first page", page: 1, size: 20, limit: 20, offst: 0},
		{name: "third page", page: 3, size: 20, limit: 20, offst: 40},
		{name: "size is capped", page: 2, size: 10000, limit: maxPageSize, offst: maxPageSize},
		{name: "negative page", page: -4, size: 10, limit: 10, offst: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := Paginate(tt.page, tt.size)
			if limit != tt.limit || offset != tt.offst {
				t.Errorf("expected %d/%d, got %d/%d", tt.limit, tt.offst, limit, offset)
			}
		})
	}
}

func TestWithTxJoinsOuterScope(t *testing.T) {
	d := &DBClient{logger: logging.NewNoopLogger()}
	outer := &txScope{done: true}
	ctx := context.WithValue(context.Background(), scopeKey{}, outer)

	var seen *txScope
	err := d.WithTx(ctx, func(ctx context.Context) error {
		seen = scopeFrom(ctx)
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != outer {
		t.Error("expected the nested call to reuse the outer scope")
	}
}

func TestWithTxWithoutStatementsNeverBegins(t *testing.T) {
	d := &DBClient{logger: logging.NewNoopLogger()}

	var scope *txScope
	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		scope = scopeFrom(ctx)
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scope == nil || scope.tx != nil || !scope.done {
		t.Errorf("expected a closed scope with no transaction, got %+v", scope)
	}
}
