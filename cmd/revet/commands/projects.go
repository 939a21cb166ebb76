package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Inspect the projects known to the server",
	}

	cmd.AddCommand(c.newProjectsListCmd())
	cmd.AddCommand(c.newProjectsShowCmd())
	cmd.AddCommand(c.newProjectsGroupsCmd())

	return cmd
}

func (c *CLI) newProjectsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefix, _ := cmd.Flags().GetString("prefix")

			out := cmd.OutOrStdout()
			for _, name := range c.app.ListProjects(cmd.Context(), prefix) {
				_, _ = fmt.Fprintln(out, name)
			}
			return nil
		},
	}
	cmd.Flags().StringP("prefix", "p", "", "Only list projects whose name starts with the given prefix")
	return cmd
}

func (c *CLI) newProjectsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <project>",
		Short: "Show the effective configuration of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := c.app.ShowProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cfg := state.Config()
			_, _ = fmt.Fprintf(out, "name:     %s\n", state.Name())
			if parent := state.Parent(); parent != "" {
				_, _ = fmt.Fprintf(out, "parent:   %s\n", parent)
			}
			_, _ = fmt.Fprintf(out, "revision: %d\n", cfg.Revision)
			for _, rule := range cfg.AccessRules {
				_, _ = fmt.Fprintf(out, "access:   %s %s (%s)\n", rule.Action, rule.Ref, rule.Group.Name)
			}
			for _, group := range cfg.Groups {
				_, _ = fmt.Fprintf(out, "group:    %s %s\n", group.UUID, group.Name)
			}
			return nil
		},
	}
}

func (c *CLI) newProjectsGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List the group UUIDs referenced by cached projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, id := range c.app.RelevantGroups(cmd.Context()) {
				_, _ = fmt.Fprintln(out, id)
			}
			return nil
		},
	}
}
