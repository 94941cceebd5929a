// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"slices"

	"github.com/canonical/glassworks-service/internal/errorx"
	"github.com/canonical/glassworks-service/internal/types"
)

// Permission is a "resource:action" grant. The set is closed, strings coming
// from requests or storage go through ParsePermission.
type Permission string

const (
	PermCustomersView   Permission = "customers:view"
	PermCustomersCreate Permission = "customers:create"
	PermCustomersEdit   Permission = "customers:edit"
	PermCustomersDelete Permission = "customers:delete"

	PermInvoicesView   Permission = "invoices:view"
	PermInvoicesCreate Permission = "invoices:create"
	PermInvoicesCancel Permission = "invoices:cancel"

	PermPaymentsView   Permission = "payments:view"
	PermPaymentsCreate Permission = "payments:create"
	PermPaymentsDelete Permission = "payments:delete"

	PermCatalogView   Permission = "catalog:view"
	PermCatalogManage Permission = "catalog:manage"

	PermFactoryView   Permission = "factory:view"
	PermFactoryUpdate Permission = "factory:update"

	PermPrintView   Permission = "print:view"
	PermPrintManage Permission = "print:manage"

	PermNotificationsCreate Permission = "notifications:create"

	PermMembersView   Permission = "members:view"
	PermMembersManage Permission = "members:manage"

	PermSettingsEdit Permission = "settings:edit"
	PermAuditView    Permission = "audit:view"
	PermFilesUpload  Permission = "files:upload"
)

var allPermissions = []Permission{
	PermCustomersView, PermCustomersCreate, PermCustomersEdit, PermCustomersDelete,
	PermInvoicesView, PermInvoicesCreate, PermInvoicesCancel,
	PermPaymentsView, PermPaymentsCreate, PermPaymentsDelete,
	PermCatalogView, PermCatalogManage,
	PermFactoryView, PermFactoryUpdate,
	PermPrintView, PermPrintManage,
	PermNotificationsCreate,
	PermMembersView, PermMembersManage,
	PermSettingsEdit, PermAuditView, PermFilesUpload,
}

var workerPermissions = []Permission{
	PermCustomersView,
	PermInvoicesView,
	PermCatalogView,
	PermFactoryView, PermFactoryUpdate,
	PermPrintView, PermPrintManage,
}

var cashierPermissions = append(slices.Clone(workerPermissions),
	PermCustomersCreate, PermCustomersEdit,
	PermInvoicesCreate,
	PermPaymentsView, PermPaymentsCreate,
	PermFilesUpload,
)

var adminPermissions = append(slices.Clone(cashierPermissions),
	PermCustomersDelete,
	PermInvoicesCancel,
	PermPaymentsDelete,
	PermCatalogManage,
	PermNotificationsCreate,
	PermMembersView, PermMembersManage,
	PermAuditView,
)

var rolePermissions = map[types.Role][]Permission{
	types.RoleWorker:     workerPermissions,
	types.RoleCashier:    cashierPermissions,
	types.RoleAdmin:      adminPermissions,
	types.RoleOwner:      allPermissions,
	types.RoleSuperAdmin: allPermissions,
}

func (p Permission) Valid() bool {
	return slices.Contains(allPermissions, p)
}

// ParsePermission validates a raw permission string.
func ParsePermission(s string) (Permission, error) {
	p := Permission(s)
	if !p.Valid() {
		return "", errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "permission", "value": s})
	}
	return p, nil
}

// ParsePermissions validates every entry, failing on the first unknown one.
func ParsePermissions(raw []string) ([]Permission, error) {
	out := make([]Permission, 0, len(raw))
	for _, s := range raw {
		p, err := ParsePermission(s)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// AllPermissions returns every known permission.
func AllPermissions() []Permission {
	return slices.Clone(allPermissions)
}

// RolePermissions returns the default grant of a role, nil for unknown roles.
func RolePermissions(role types.Role) []Permission {
	return slices.Clone(rolePermissions[role])
}

// Strings converts permissions to their stored form.
func Strings(perms []Permission) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}
