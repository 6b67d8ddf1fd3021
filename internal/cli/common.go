package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/paginator/internal/cli/pagination"
	"github.com/rshade/paginator/internal/config"
	"github.com/rshade/paginator/internal/logging"
	"github.com/rshade/paginator/pkg/paginator"
)

// newParams binds the shared pagination flags to cmd.
func newParams(cmd *cobra.Command) *pagination.Params {
	params := pagination.NewParams(config.New().Paginator)
	params.BindFlags(cmd)
	return params
}

// buildPaginator resolves params against the loaded configuration and
// builds the paginator. Invalid parameters are reported as a *UsageError.
func buildPaginator(cmd *cobra.Command, params *pagination.Params) (*paginator.Paginator, error) {
	params.Resolve(cmd, config.GetGlobalConfig().Paginator)

	p, err := params.Build()
	if err != nil {
		return nil, &UsageError{Err: err}
	}

	ctx := cmd.Context()
	logging.FromContext(ctx).Debug().Ctx(ctx).
		Int("total_items", p.TotalItems()).
		Int("items_per_page", p.ItemsPerPage()).
		Int("current_page", p.CurrentPage()).
		Int("num_pages", p.NumPages()).
		Int("max_pages_to_show", p.MaxPagesToShow()).
		Stringer("view", p.View()).
		Msg("paginator built")

	return p, nil
}
