package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Adda-Baaj/museum-collection/internal/app"
)

func newCountCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the total number of objects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, func(_ context.Context, b *app.Browser) error {
				return b.Count()
			})
		},
	}
}

func newIDsCommand(r *runner) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "ids",
		Short: "Print object identifiers from the index",
		Long: `Print the first identifiers of the object index loaded at startup.
The limit defaults to the ids_limit setting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, func(_ context.Context, b *app.Browser) error {
				return b.IDs(limit)
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of identifiers to print")
	return cmd
}

func newObjectCommand(r *runner) *cobra.Command {
	var (
		id       int
		position int
		pageMeta bool
	)
	cmd := &cobra.Command{
		Use:   "object",
		Short: "Print one object by id or index position",
		Long: `Print one object.

Examples:
  collection object --id 436575
  collection object --position 100 --page-meta
  collection object --id 436575 --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := app.ObjectQuery{PageMeta: pageMeta}
			if cmd.Flags().Changed("id") {
				q.ID = &id
			}
			if cmd.Flags().Changed("position") {
				q.Position = &position
			}
			return r.run(cmd, func(ctx context.Context, b *app.Browser) error {
				return b.Object(ctx, q)
			})
		},
	}
	cmd.Flags().IntVarP(&id, "id", "i", 0, "object identifier")
	cmd.Flags().IntVarP(&position, "position", "p", 0, "zero-based position in the object index")
	cmd.Flags().BoolVar(&pageMeta, "page-meta", false, "include Open Graph data from the object's web page")
	cmd.MarkFlagsMutuallyExclusive("id", "position")
	return cmd
}

func newDepartmentsCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "departments",
		Short: "Print the curatorial departments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, func(ctx context.Context, b *app.Browser) error {
				return b.Departments(ctx)
			})
		},
	}
}
