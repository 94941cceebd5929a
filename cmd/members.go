// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/glassworks-service/internal/types"
	"github.com/canonical/glassworks-service/pkg/members"
)

const membersPath = "/api/v0/members"

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Manage the members of the current tenant",
	Long:  `Manage the members of the caller's tenant. Super admins select a tenant with "tenant enter" first.`,
}

var listMembersCmd = &cobra.Command{
	Use:   "list",
	Short: "List members",
	RunE: func(cmd *cobra.Command, args []string) error {
		var ms []*types.Membership
		if err := getClient().do(cmd.Context(), http.MethodGet, membersPath, nil, &ms); err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tUSERNAME\tROLE\tACTIVE")
		for _, m := range ms {
			fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", m.ID, m.Username, m.Role, m.Active)
		}
		return w.Flush()
	},
}

var addMemberCmd = &cobra.Command{
	Use:   "add [username] [role]",
	Short: "Add an existing user to the tenant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := new(types.Membership)
		err := getClient().do(cmd.Context(), http.MethodPost, membersPath, &members.AddMemberRequest{
			Username: args[0],
			Role:     strings.ToUpper(args[1]),
		}, out)
		if err != nil {
			return fmt.Errorf("failed to add member: %w", err)
		}

		fmt.Printf("Member added: %s (Role: %s)\n", args[0], out.Role)
		return nil
	},
}

var (
	firstName string
	lastName  string
)

var createAccountCmd = &cobra.Command{
	Use:   "create-account [username] [role]",
	Short: "Create an identity and a membership in one step",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := new(members.Account)
		err := getClient().do(cmd.Context(), http.MethodPost, membersPath+"/accounts", &members.CreateAccountRequest{
			Username:  args[0],
			FirstName: firstName,
			LastName:  lastName,
			Role:      strings.ToUpper(args[1]),
		}, out)
		if err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}

		fmt.Printf("Account created: %s\n", args[0])
		if out.RecoveryLink != "" {
			fmt.Printf("Recovery link: %s\n", out.RecoveryLink)
		}
		return nil
	},
}

var changeRoleCmd = &cobra.Command{
	Use:   "role [membership-id] [role]",
	Short: "Change the role of a member",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := getClient().do(cmd.Context(), http.MethodPut, membersPath+"/"+args[0]+"/role", &members.RoleRequest{
			Role: strings.ToUpper(args[1]),
		}, nil)
		if err != nil {
			return fmt.Errorf("failed to change role: %w", err)
		}

		fmt.Printf("Member %s is now %s\n", args[0], strings.ToUpper(args[1]))
		return nil
	},
}

var removeMemberCmd = &cobra.Command{
	Use:   "remove [membership-id]",
	Short: "Remove a member from the tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().do(cmd.Context(), http.MethodDelete, membersPath+"/"+args[0], nil, nil); err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}

		fmt.Printf("Member removed: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(membersCmd)
	membersCmd.AddCommand(listMembersCmd)
	membersCmd.AddCommand(addMemberCmd)
	membersCmd.AddCommand(createAccountCmd)
	membersCmd.AddCommand(changeRoleCmd)
	membersCmd.AddCommand(removeMemberCmd)

	createAccountCmd.Flags().StringVar(&firstName, "first-name", "", "First name")
	createAccountCmd.Flags().StringVar(&lastName, "last-name", "", "Last name")
	_ = createAccountCmd.MarkFlagRequired("first-name")
}
