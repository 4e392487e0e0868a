package config

import "github.com/spf13/cobra"

type Labels struct {
	*Root
}

type LabelsList struct {
	*Labels

	// Flags
	Project string
}

func (c *LabelsList) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.Project, "project", "p", "", "project ID")
	cmd.MarkFlagRequired("project")
}
