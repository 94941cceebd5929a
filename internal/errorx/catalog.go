// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package errorx

// Authorization
var (
	ErrNotAuthenticated  = New(KindUnauthenticated, "ErrorNotAuthenticated")
	ErrUserInactive      = New(KindForbidden, "ErrorUserInactive")
	ErrNoMembership      = New(KindForbidden, "ErrorNoMembership")
	ErrPermissionDenied  = New(KindForbidden, "ErrorPermissionDenied")
	ErrSuperAdminOnly    = New(KindForbidden, "ErrorSuperAdminOnly")
	ErrTenantUnavailable = New(KindForbidden, "ErrorTenantUnavailable")
	ErrNoTenantSelected  = New(KindForbidden, "ErrorNoTenantSelected")
)

// Generic
var (
	ErrNotFound        = New(KindNotFound, "ErrorNotFound")
	ErrInvalidInput    = New(KindValidation, "ErrorInvalidInput")
	ErrRequiredField   = New(KindValidation, "ErrorRequiredField")
	ErrNegativeValue   = New(KindValidation, "ErrorNegativeValue")
	ErrInvalidValue    = New(KindValidation, "ErrorInvalidValue")
	ErrConflict        = New(KindConflict, "ErrorConflict")
	ErrInternal        = New(KindInternal, "ErrorInternal")
	ErrTooManyRequests = New(KindRateLimited, "ErrorTooManyRequests")
)

// Pricing and rates
var (
	ErrUnknownUnit            = New(KindValidation, "ErrorUnknownUnit")
	ErrUnknownMethod          = New(KindValidation, "ErrorUnknownCalculationMethod")
	ErrUnknownTreatment       = New(KindValidation, "ErrorUnknownTreatment")
	ErrMissingMethod          = New(KindValidation, "ErrorMissingCalculationMethod")
	ErrMissingManualPrice     = New(KindValidation, "ErrorMissingManualPrice")
	ErrMissingManualMeters    = New(KindValidation, "ErrorMissingManualMeters")
	ErrInvalidDiameter        = New(KindValidation, "ErrorInvalidDiameter")
	ErrInvalidDimensions      = New(KindValidation, "ErrorInvalidDimensions")
	ErrInvertedThicknessRange = New(KindValidation, "ErrorInvertedThicknessRange")
	ErrOverlappingRate        = New(KindConflict, "ErrorOverlappingRate")
	ErrDuplicateOperation     = New(KindConflict, "ErrorDuplicateOperationPrice")
	ErrGlassTypeInactive      = New(KindValidation, "ErrorGlassTypeInactive")
	ErrGlassTypeReferenced    = New(KindConflict, "ErrorGlassTypeReferenced")
)

// Customers
var (
	ErrDuplicatePhone         = New(KindConflict, "ErrorDuplicatePhone")
	ErrCashCustomerBalance    = New(KindValidation, "ErrorCashCustomerBalance")
	ErrCustomerHasInvoices    = New(KindConflict, "ErrorCustomerHasInvoices")
	ErrCashCustomerNoPayments = New(KindValidation, "ErrorCashCustomerNoPayments")
)

// Invoices and payments
var (
	ErrEmptyInvoice            = New(KindValidation, "ErrorEmptyInvoice")
	ErrCashMustPayInFull       = New(KindValidation, "ErrorCashMustPayInFull")
	ErrOverpayment             = New(KindValidation, "ErrorOverpayment")
	ErrInvoiceAlreadyPaid      = New(KindConflict, "ErrorInvoiceAlreadyPaid")
	ErrInvoiceCancelled        = New(KindConflict, "ErrorInvoiceCancelled")
	ErrInvoiceHasPayments      = New(KindConflict, "ErrorInvoiceHasPayments")
	ErrInvoiceCustomerMismatch = New(KindValidation, "ErrorInvoiceCustomerMismatch")
	ErrNonPositiveAmount       = New(KindValidation, "ErrorNonPositiveAmount")
)

// Print jobs and files
var (
	ErrInvalidTransition = New(KindConflict, "ErrorInvalidPrintTransition")
	ErrFileTooLarge      = New(KindValidation, "ErrorFileTooLarge")
	ErrInvalidFileToken  = New(KindForbidden, "ErrorInvalidFileToken")
)

// Tenants and members
var (
	ErrDuplicateSlug     = New(KindConflict, "ErrorDuplicateSlug")
	ErrInvalidSlug       = New(KindValidation, "ErrorInvalidSlug")
	ErrDuplicateUsername = New(KindConflict, "ErrorDuplicateUsername")
	ErrAlreadyMember     = New(KindConflict, "ErrorAlreadyMember")
	ErrSeatLimitReached  = New(KindConflict, "ErrorSeatLimitReached")
	ErrOwnerProtected    = New(KindForbidden, "ErrorOwnerProtected")
	ErrSelfEdit          = New(KindForbidden, "ErrorSelfEdit")
	ErrEmptyPermissions  = New(KindValidation, "ErrorEmptyPermissions")
	ErrIdentityProvider  = New(KindInternal, "ErrorIdentityProvider")
	ErrTenantDeactivated = New(KindConflict, "ErrorTenantDeactivated")
)
