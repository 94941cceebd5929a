// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

const (
	defaultPageSize uint64 = 100
	maxPageSize     uint64 = 500
)

// Paginate turns 1-based page parameters into LIMIT and OFFSET values.
// Non-positive inputs fall back to the first page and the default size.
func Paginate(page, size int64) (limit, offset uint64) {
	limit = defaultPageSize
	if size > 0 {
		limit = min(uint64(size), maxPageSize)
	}

	if page > 1 {
		offset = uint64(page-1) * limit
	}

	return limit, offset
}
