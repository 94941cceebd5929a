// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/glassworks-service/internal/types"
)

type StorageInterface interface {
	CreateAuditLog(ctx context.Context, l *types.AuditLog) error
	CreateSuperAdminAuditLog(ctx context.Context, l *types.AuditLog) error
	ListAuditLogs(ctx context.Context, tenantID string, filter types.AuditFilter) ([]*types.AuditLog, error)
	ListSuperAdminAuditLogs(ctx context.Context, filter types.AuditFilter) ([]*types.AuditLog, error)

	CreateBillingPayment(ctx context.Context, p *types.BillingPayment) (*types.BillingPayment, error)
	ListBillingPayments(ctx context.Context, tenantID string) ([]*types.BillingPayment, error)
	RevenueByMonthAndPlan(ctx context.Context, from, to time.Time) ([]*types.RevenueRow, error)

	CreateGlassType(ctx context.Context, g *types.GlassType) (*types.GlassType, error)
	GetGlassTypeByID(ctx context.Context, id string) (*types.GlassType, error)
	ListGlassTypes(ctx context.Context, tenantID string, activeOnly bool) ([]*types.GlassType, error)
	UpdateGlassType(ctx context.Context, g *types.GlassType) (*types.GlassType, error)
	DeleteGlassType(ctx context.Context, id string) error
	CountLinesByGlassType(ctx context.Context, glassTypeID string) (int, error)
	CreateThicknessRate(ctx context.Context, r *types.ThicknessRate) (*types.ThicknessRate, error)
	GetThicknessRateByID(ctx context.Context, kind types.RateKind, id string) (*types.ThicknessRate, error)
	LockThicknessRates(ctx context.Context, tenantID string, kind types.RateKind) error
	ListThicknessRates(ctx context.Context, tenantID string, kind types.RateKind, forUpdate bool) ([]*types.ThicknessRate, error)
	UpdateThicknessRate(ctx context.Context, r *types.ThicknessRate) (*types.ThicknessRate, error)
	DeleteThicknessRate(ctx context.Context, kind types.RateKind, id string) error
	CreateOperationPrice(ctx context.Context, o *types.OperationPrice) (*types.OperationPrice, error)
	GetOperationPriceByID(ctx context.Context, id string) (*types.OperationPrice, error)
	ListOperationPrices(ctx context.Context, tenantID string) ([]*types.OperationPrice, error)
	UpdateOperationPrice(ctx context.Context, o *types.OperationPrice) (*types.OperationPrice, error)
	DeleteOperationPrice(ctx context.Context, id string) error

	NextCounter(ctx context.Context, tenantID, prefix string) (int64, error)

	CreateCustomer(ctx context.Context, c *types.Customer) (*types.Customer, error)
	GetCustomerByID(ctx context.Context, id string) (*types.Customer, error)
	ListCustomers(ctx context.Context, tenantID, search string, page, size int64) ([]*types.Customer, error)
	UpdateCustomer(ctx context.Context, c *types.Customer) (*types.Customer, error)
	AdjustCustomerBalance(ctx context.Context, id string, delta float64) (float64, error)
	DeleteCustomer(ctx context.Context, id string) error
	CountInvoicesByCustomer(ctx context.Context, customerID string) (int, error)

	IsDataMigrationApplied(ctx context.Context, name, tenantID string) (bool, error)
	MarkDataMigrationApplied(ctx context.Context, name, tenantID string) error
	DataMigrationsForTenant(ctx context.Context, tenantID string) ([]string, error)

	CreateStoredFile(ctx context.Context, f *types.StoredFile) (*types.StoredFile, error)
	GetStoredFileByID(ctx context.Context, id string, withData bool) (*types.StoredFile, error)
	DeleteStoredFile(ctx context.Context, id string) error

	CreateInvoice(ctx context.Context, inv *types.Invoice) (*types.Invoice, error)
	GetInvoiceByID(ctx context.Context, id string) (*types.Invoice, error)
	GetInvoiceForUpdate(ctx context.Context, id string) (*types.Invoice, error)
	ListInvoiceLines(ctx context.Context, invoiceID string) ([]*types.InvoiceLine, error)
	ListInvoices(ctx context.Context, tenantID string, filter types.InvoiceFilter) ([]*types.Invoice, error)
	ListInvoiceIDs(ctx context.Context, tenantID string) ([]string, error)
	UpdateInvoiceState(ctx context.Context, inv *types.Invoice) error
	GetInvoiceLineByID(ctx context.Context, id string) (*types.InvoiceLine, error)
	UpdateInvoiceLineStatus(ctx context.Context, id string, status types.WorkStatus) error
	SetInvoiceLinesStatus(ctx context.Context, invoiceID string, status types.WorkStatus) error
	CountPaymentsByInvoice(ctx context.Context, invoiceID string) (int, error)

	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	GetMembershipByID(ctx context.Context, id string) (*types.Membership, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
	ListActiveTenantIDsByUserID(ctx context.Context, userID string) ([]string, error)
	CountActiveMembers(ctx context.Context, tenantID string) (int, error)
	CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error)
	UpdateMembership(ctx context.Context, m *types.Membership) error

	CreateNotification(ctx context.Context, n *types.Notification) (*types.Notification, error)
	ListNotificationsForUser(ctx context.Context, tenantID, userID string, unreadOnly bool, page, size int64) ([]*types.Notification, error)
	GetNotificationByID(ctx context.Context, id string) (*types.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID, userID string) error
	HideNotification(ctx context.Context, notificationID, userID string) error
	MarkAllNotificationsRead(ctx context.Context, tenantID, userID string) (int64, error)

	CreatePayment(ctx context.Context, p *types.Payment) (*types.Payment, error)
	GetPaymentByID(ctx context.Context, id string) (*types.Payment, error)
	ListPayments(ctx context.Context, tenantID string, filter types.PaymentFilter) ([]*types.Payment, error)
	DeletePayment(ctx context.Context, id string) error

	CreatePrintJob(ctx context.Context, j *types.PrintJob) (*types.PrintJob, error)
	GetPrintJobByID(ctx context.Context, id string) (*types.PrintJob, error)
	GetPrintJobForUpdate(ctx context.Context, id string) (*types.PrintJob, error)
	ListPrintJobs(ctx context.Context, tenantID string, filter types.PrintJobFilter) ([]*types.PrintJob, error)
	ListPrintJobsUpdatedBefore(ctx context.Context, statuses []types.PrintJobStatus, before time.Time) ([]*types.PrintJob, error)
	UpdatePrintJob(ctx context.Context, j *types.PrintJob) (*types.PrintJob, error)
	DeletePrintJob(ctx context.Context, id string) error

	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantForUpdate(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context, page, size int64) ([]*types.Tenant, error)
	ListActiveTenantIDs(ctx context.Context) ([]string, error)
	UpdateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)

	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserBySubject(ctx context.Context, subject string) (*types.User, error)
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	UpsertUserBySubject(ctx context.Context, u *types.User) (*types.User, error)
	SetDefaultTenant(ctx context.Context, userID, tenantID string) error
	SetViewingTenant(ctx context.Context, userID, tenantID string) error
}
