package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"atest-finder/internal/app"
)

type modulesOptions struct {
	Root       string
	ModuleInfo string
}

func newModulesCommand() *cobra.Command {
	opts := modulesOptions{}
	cmd := &cobra.Command{
		Use:   "modules <name>...",
		Short: "Check names against the module-metadata database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModules(cmd, opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.Root, "root", "", "Repository root (defaults to $ANDROID_BUILD_TOP)")
	cmd.Flags().StringVar(&opts.ModuleInfo, "module-info", "", "Path to module-info.json")
	_ = viper.BindPFlag("root", cmd.Flags().Lookup("root"))
	_ = viper.BindPFlag("module_info", cmd.Flags().Lookup("module-info"))
	return cmd
}

func runModules(cmd *cobra.Command, opts modulesOptions, names []string) error {
	service := app.NewService(app.ServiceConfig{
		Root:           resolveString(cmd, opts.Root, "root", "root"),
		ModuleInfoPath: resolveString(cmd, opts.ModuleInfo, "module_info", "module-info"),
	})
	result, err := service.CheckModules(app.ModulesRequest{Names: names})
	if err != nil {
		return err
	}
	for _, check := range result.Checks {
		state := "not a module"
		if check.IsModule {
			state = "module"
		}
		fmt.Printf("%s: %s\n", check.Name, state)
	}
	return nil
}
