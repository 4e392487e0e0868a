package config

import "github.com/spf13/cobra"

type States struct {
	*Root
}

type StatesList struct {
	*States

	// Flags
	Project string
}

func (c *StatesList) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.Project, "project", "p", "", "project ID")
	cmd.MarkFlagRequired("project")
}
