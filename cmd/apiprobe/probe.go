package main

import (
	"context"
	"fmt"
	"io"

	"example.com/octofit/internal/apiclient"
)

func run(ctx context.Context, client *apiclient.Client, out io.Writer) error {
	info, err := client.APIInfo(ctx)
	if err != nil {
		return fmt.Errorf("api info: %w", err)
	}
	fmt.Fprintln(out, "API Information")
	fmt.Fprintf(out, "  Message:        %s\n", info.Message)
	fmt.Fprintf(out, "  Version:        %s\n", info.Version)
	fmt.Fprintf(out, "  Local URL:      %s\n", info.LocalURL)
	fmt.Fprintf(out, "  Codespace URL:  %s\n", info.CodespaceURL)
	fmt.Fprintf(out, "  Codespace Name: %s\n", info.CodespaceName)

	users, err := client.Users(ctx)
	if err != nil {
		return fmt.Errorf("users: %w", err)
	}
	fmt.Fprintln(out, "Users")
	if len(users) == 0 {
		fmt.Fprintln(out, "  No users found.")
		return nil
	}
	for _, user := range users {
		fmt.Fprintf(out, "  %s - %s\n", user.DisplayName(), user.Email)
	}
	return nil
}
