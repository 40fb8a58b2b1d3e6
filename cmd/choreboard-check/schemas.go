package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/choreboard/pkg/forms"
	"github.com/dmitrymomot/choreboard/pkg/schema"
)

// schemaRegistry maps CLI names to the composite schemas of a set.
func schemaRegistry(set *forms.Set) map[string]schema.Schema[any] {
	return map[string]schema.Schema[any]{
		"sign-up":         schema.Erase(set.SignUp()),
		"sign-in":         schema.Erase(set.SignIn()),
		"forgot-password": schema.Erase(set.ForgotPassword()),
		"change-password": schema.Erase(set.ChangePassword()),
		"update-profile":  schema.Erase(set.UpdateProfile()),
		"create-project":  schema.Erase(set.CreateProject()),
		"update-project":  schema.Erase(set.UpdateProject()),
		"create-column":   schema.Erase(set.CreateColumn()),
		"update-column":   schema.Erase(set.UpdateColumn()),
		"create-task":     schema.Erase(set.CreateTask()),
		"update-task":     schema.Erase(set.UpdateTask()),
		"task-ref":        schema.Erase(set.TaskRef()),
		"add-member":      schema.Erase(set.AddMember()),
		"search":          schema.Erase(set.Search()),
		"priority":        schema.Erase[string](forms.Priority()),
		"status":          schema.Erase[string](forms.Status()),
	}
}

func schemaNames() []string {
	names := make([]string, 0, 16)
	for name := range schemaRegistry(forms.New()) {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookupSchema(set *forms.Set, name string) (schema.Schema[any], error) {
	s, ok := schemaRegistry(set)[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q (available: %s)", name, strings.Join(schemaNames(), ", "))
	}
	return s, nil
}

func init() {
	rootCmd.AddCommand(schemasCmd)
}

var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "List schema names accepted by validate",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return outputJSON(cmd, schemaNames())
	},
}
