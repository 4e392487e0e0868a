package config

import "github.com/spf13/cobra"

type Members struct {
	*Root
}

type MembersList struct {
	*Members

	// Flags
	Project string
}

func (c *MembersList) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.Project, "project", "p", "", "project ID")
	cmd.MarkFlagRequired("project")
}
