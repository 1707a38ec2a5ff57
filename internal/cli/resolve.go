package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"atest-finder/internal/adapters"
	"atest-finder/internal/app"
	"atest-finder/internal/ports"
)

type resolveOptions struct {
	Root          string
	SearchRoot    string
	OutDir        string
	PushDir       string
	ModuleInfo    string
	SearchTimeout time.Duration
	UseFind       bool
	Interactive   bool
	Format        string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve <reference>...",
		Short: "Resolve test references to files and build targets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Root, "root", "", "Repository root (defaults to $ANDROID_BUILD_TOP)")
	cmd.Flags().StringVar(&opts.SearchRoot, "search-root", "", "Subtree to search (defaults to the root)")
	cmd.Flags().StringVar(&opts.OutDir, "out-dir", "", "Relative out dir prefixed to device artifact targets")
	cmd.Flags().StringVar(&opts.PushDir, "push-dir", "", "Push manifest directory")
	cmd.Flags().StringVar(&opts.ModuleInfo, "module-info", "", "Path to module-info.json")
	cmd.Flags().DurationVar(&opts.SearchTimeout, "search-timeout", 30*time.Second, "Timeout per filesystem search")
	cmd.Flags().BoolVar(&opts.UseFind, "use-find", false, "Search with find(1) instead of the native walker")
	cmd.Flags().BoolVar(&opts.Interactive, "interactive", false, "Pick between multiple matches in a TUI list")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "Output format: text, json, or yaml")

	_ = viper.BindPFlag("root", cmd.Flags().Lookup("root"))
	_ = viper.BindPFlag("search_root", cmd.Flags().Lookup("search-root"))
	_ = viper.BindPFlag("out_dir", cmd.Flags().Lookup("out-dir"))
	_ = viper.BindPFlag("push_dir", cmd.Flags().Lookup("push-dir"))
	_ = viper.BindPFlag("module_info", cmd.Flags().Lookup("module-info"))
	_ = viper.BindPFlag("search_timeout", cmd.Flags().Lookup("search-timeout"))
	_ = viper.BindPFlag("use_find", cmd.Flags().Lookup("use-find"))
	_ = viper.BindPFlag("interactive", cmd.Flags().Lookup("interactive"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))

	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions, references []string) error {
	var selection ports.SelectionPort
	if resolveBool(cmd, opts.Interactive, "interactive", "interactive") {
		selection = pickerSelection{}
	}
	service := app.NewService(app.ServiceConfig{
		Root:           resolveString(cmd, opts.Root, "root", "root"),
		PushDir:        resolveString(cmd, opts.PushDir, "push_dir", "push-dir"),
		ModuleInfoPath: resolveString(cmd, opts.ModuleInfo, "module_info", "module-info"),
		UseFind:        resolveBool(cmd, opts.UseFind, "use_find", "use-find"),
		Selection:      selection,
	})
	result, err := service.Resolve(ctx, app.ResolveRequest{
		References:    references,
		SearchRoot:    resolveString(cmd, opts.SearchRoot, "search_root", "search-root"),
		OutDir:        resolveString(cmd, opts.OutDir, "out_dir", "out-dir"),
		SearchTimeout: resolveDuration(cmd, opts.SearchTimeout, "search_timeout", "search-timeout"),
	})
	if err != nil {
		return err
	}
	writer := adapters.NewResultWriter(os.Stdout)
	return writer.Write(result.Resolutions, resolveString(cmd, opts.Format, "format", "format"))
}
