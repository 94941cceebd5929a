// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/glassworks-service/internal/types"
	"github.com/canonical/glassworks-service/pkg/tenant"
)

const tenantsPath = "/api/v0/admin/tenants"

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Manage tenants, requires a super admin",
}

var (
	tenantPlan  string
	tenantOwner string
)

var createTenantCmd = &cobra.Command{
	Use:   "create [name] [slug]",
	Short: "Create a tenant on a trial subscription",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := new(types.Tenant)
		err := getClient().do(cmd.Context(), http.MethodPost, tenantsPath, &tenant.CreateTenantRequest{
			Name:          args[0],
			Slug:          args[1],
			Plan:          tenantPlan,
			OwnerUsername: tenantOwner,
		}, out)
		if err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		fmt.Printf("Tenant created: %s (ID: %s)\n", out.Slug, out.ID)
		return nil
	},
}

var listTenantsCmd = &cobra.Command{
	Use:   "list",
	Short: "List tenants",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt64("page")
		size, _ := cmd.Flags().GetInt64("size")

		var tenants []*types.Tenant
		path := fmt.Sprintf("%s?page=%d&size=%d", tenantsPath, page, size)
		if err := getClient().do(cmd.Context(), http.MethodGet, path, nil, &tenants); err != nil {
			return fmt.Errorf("failed to list tenants: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tSLUG\tPLAN\tSTATUS\tACTIVE\tSUSPENDED\tPERIOD_END")
		for _, t := range tenants {
			end := "-"
			if t.Subscription.PeriodEnd != nil {
				end = t.Subscription.PeriodEnd.Format("2006-01-02")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\t%v\t%s\n", t.ID, t.Slug, t.Plan, t.Subscription.Status, t.Active, t.Suspended, end)
		}
		return w.Flush()
	},
}

var suspendTenantCmd = &cobra.Command{
	Use:   "suspend [id] [reason]",
	Short: "Suspend a tenant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := getClient().do(cmd.Context(), http.MethodPost, tenantsPath+"/"+args[0]+"/suspend", &tenant.SuspendRequest{Reason: args[1]}, nil)
		if err != nil {
			return fmt.Errorf("failed to suspend tenant: %w", err)
		}

		fmt.Printf("Tenant suspended: %s\n", args[0])
		return nil
	},
}

var reactivateTenantCmd = &cobra.Command{
	Use:   "reactivate [id]",
	Short: "Lift a tenant suspension",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().do(cmd.Context(), http.MethodPost, tenantsPath+"/"+args[0]+"/reactivate", nil, nil); err != nil {
			return fmt.Errorf("failed to reactivate tenant: %w", err)
		}

		fmt.Printf("Tenant reactivated: %s\n", args[0])
		return nil
	},
}

var deactivateTenantCmd = &cobra.Command{
	Use:   "deactivate [id]",
	Short: "Deactivate a tenant, its data becomes read only",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().do(cmd.Context(), http.MethodDelete, tenantsPath+"/"+args[0], nil, nil); err != nil {
			return fmt.Errorf("failed to deactivate tenant: %w", err)
		}

		fmt.Printf("Tenant deactivated: %s\n", args[0])
		return nil
	},
}

var (
	planCycle    string
	planMonthly  float64
	planYearly   float64
	planDiscount float64
)

var changePlanCmd = &cobra.Command{
	Use:   "plan [id] [plan]",
	Short: "Change the plan and prices of a tenant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := getClient().do(cmd.Context(), http.MethodPut, tenantsPath+"/"+args[0]+"/plan", &tenant.ChangePlanRequest{
			Plan:            args[1],
			BillingCycle:    planCycle,
			MonthlyPrice:    planMonthly,
			YearlyPrice:     planYearly,
			DiscountPercent: planDiscount,
		}, nil)
		if err != nil {
			return fmt.Errorf("failed to change plan: %w", err)
		}

		fmt.Printf("Tenant %s moved to %s\n", args[0], args[1])
		return nil
	},
}

var paymentMethod string

var recordPaymentCmd = &cobra.Command{
	Use:   "pay [id] [amount]",
	Short: "Record a subscription payment and extend the billing period",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[1], err)
		}

		out := new(types.BillingPayment)
		err = getClient().do(cmd.Context(), http.MethodPost, tenantsPath+"/"+args[0]+"/billing-payments", &tenant.BillingPaymentRequest{
			Amount: amount,
			Method: paymentMethod,
		}, out)
		if err != nil {
			return fmt.Errorf("failed to record payment: %w", err)
		}

		fmt.Printf("Payment recorded: %s\n", out.ID)
		return nil
	},
}

var enterTenantCmd = &cobra.Command{
	Use:   "enter [id]",
	Short: "Operate inside a tenant as a super admin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().do(cmd.Context(), http.MethodPost, tenantsPath+"/"+args[0]+"/enter", nil, nil); err != nil {
			return fmt.Errorf("failed to enter tenant: %w", err)
		}

		fmt.Printf("Now viewing tenant %s\n", args[0])
		return nil
	},
}

var exitTenantCmd = &cobra.Command{
	Use:   "exit",
	Short: "Leave the tenant currently viewed",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().do(cmd.Context(), http.MethodPost, "/api/v0/admin/exit-tenant", nil, nil); err != nil {
			return fmt.Errorf("failed to exit tenant: %w", err)
		}

		fmt.Println("Left the viewed tenant")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tenantCmd)
	tenantCmd.AddCommand(createTenantCmd)
	tenantCmd.AddCommand(listTenantsCmd)
	tenantCmd.AddCommand(suspendTenantCmd)
	tenantCmd.AddCommand(reactivateTenantCmd)
	tenantCmd.AddCommand(deactivateTenantCmd)
	tenantCmd.AddCommand(changePlanCmd)
	tenantCmd.AddCommand(recordPaymentCmd)
	tenantCmd.AddCommand(enterTenantCmd)
	tenantCmd.AddCommand(exitTenantCmd)

	createTenantCmd.Flags().StringVar(&tenantPlan, "plan", "", "Plan (FREE, BASIC, PRO, ENTERPRISE)")
	createTenantCmd.Flags().StringVar(&tenantOwner, "owner", "", "Username of an existing user to make owner")

	listTenantsCmd.Flags().Int64("page", 1, "Page number")
	listTenantsCmd.Flags().Int64("size", 50, "Page size")

	changePlanCmd.Flags().StringVar(&planCycle, "cycle", "MONTHLY", "Billing cycle (MONTHLY or YEARLY)")
	changePlanCmd.Flags().Float64Var(&planMonthly, "monthly-price", 0, "Monthly price")
	changePlanCmd.Flags().Float64Var(&planYearly, "yearly-price", 0, "Yearly price")
	changePlanCmd.Flags().Float64Var(&planDiscount, "discount", 0, "Discount percent")

	recordPaymentCmd.Flags().StringVar(&paymentMethod, "method", "bank transfer", "Payment method")
}
