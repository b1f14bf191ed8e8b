package projup

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/projup/projup/internal/version"
	"github.com/projup/projup/pkg/cobrax/topics"
	"github.com/projup/projup/pkg/commands"
	"github.com/projup/projup/pkg/config"
	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/logging"
	"github.com/projup/projup/pkg/paths"
	"github.com/projup/projup/pkg/ui"
	"github.com/projup/projup/pkg/variables"
	"github.com/projup/projup/pkg/workspace"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// workspaceFactory builds the workspace a command runs against
type workspaceFactory func() (*workspace.Workspace, error)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultWorkspace)
}

func defaultWorkspace() (*workspace.Workspace, error) {
	p, err := paths.New()
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}
	cfg, err := config.Load(p)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return workspace.New(p, cfg), nil
}

// app carries what the subcommands share
type app struct {
	newWorkspace workspaceFactory
	format       string
}

func newRootCmd(factory workspaceFactory) *cobra.Command {
	initTemplateFormatting()

	var verbosity int
	a := &app{newWorkspace: factory}

	rootCmd := &cobra.Command{
		Use:     "projup",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "templates", Title: "TEMPLATES:"})
	rootCmd.AddGroup(&cobra.Group{ID: "projects", Title: "PROJECTS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(a.newNewCmd())
	rootCmd.AddCommand(a.newCheckCmd())
	rootCmd.AddCommand(a.newVarsCmd())
	rootCmd.AddCommand(a.newTemplatesCmd())
	rootCmd.AddCommand(a.newListCmd())
	rootCmd.AddCommand(a.newRemoveCmd())
	rootCmd.AddCommand(a.newBackupCmd())
	rootCmd.AddCommand(a.newCloneCmd())
	rootCmd.AddCommand(a.newAdoptCmd())
	rootCmd.AddCommand(a.newMoveCmd())
	rootCmd.AddCommand(a.newConfigCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	source, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		_, err = topics.Initialize(rootCmd, source, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("help topics unavailable")
	}

	return rootCmd
}

// render prints result in the format picked by --format, falling back to
// the configured default.
func (a *app) render(cmd *cobra.Command, ws *workspace.Workspace, result ui.Result) error {
	name := a.format
	if name == "" && ws.Config != nil {
		name = ws.Config.Output.Format
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return renderer.RenderResult(result)
}

// projectNames completes registered project names
func (a *app) projectNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ws, err := a.newWorkspace()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	projects, err := ws.Projects()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var names []string
	for _, p := range projects.List() {
		names = append(names, p.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// templateNames completes known template names; directories complete as
// files
func (a *app) templateNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}
	ws, err := a.newWorkspace()
	if err != nil {
		return nil, cobra.ShellCompDirectiveDefault
	}
	templates, err := ws.Templates()
	if err != nil {
		return nil, cobra.ShellCompDirectiveDefault
	}
	return templates.Names(), cobra.ShellCompDirectiveDefault
}

func (a *app) newNewCmd() *cobra.Command {
	var (
		template string
		defines  []string
	)

	cmd := &cobra.Command{
		Use:               "new [template] <path>",
		Short:             MsgNewShort,
		Long:              MsgNewLong,
		Example:           MsgNewExample,
		Args:              cobra.RangeArgs(1, 2),
		GroupID:           "projects",
		ValidArgsFunction: a.templateNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[len(args)-1]
			if len(args) == 2 {
				if template != "" {
					return errors.New(errors.ErrInvalidInput, MsgErrTwoTemplates)
				}
				template = args[0]
			}

			vars, err := variables.ParseDefines(defines)
			if err != nil {
				return err
			}

			ws, err := a.newWorkspace()
			if err != nil {
				return err
			}

			log.Info().Str("path", path).Str("template", template).Msg("Creating project")

			result, err := commands.NewProject(cmd.Context(), commands.NewProjectOptions{
				Workspace: ws,
				Path:      path,
				Template:  template,
				Defines:   vars,
			})
			if err != nil {
				return err
			}
			return a.render(cmd, ws, result)
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "", MsgFlagTemplate)
	cmd.Flags().StringArrayVarP(&defines, "define", "D", nil, MsgFlagDefine)

	return cmd
}

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "check <template>",
		Short:             MsgCheckShort,
		Long:              MsgCheckLong,
		Args:              cobra.ExactArgs(1),
		GroupID:           "templates",
		ValidArgsFunction: a.templateNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.newWorkspace()
			if err != nil {
				return err
			}
			result, err := commands.Check(commands.CheckOptions{Workspace: ws, Template: args[0]})
			if err != nil {
				return err
			}
			return a.render(cmd, ws, result)
		},
	}
}

func (a *app) newVarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "vars <template>",
		Short:             MsgVarsShort,
		Long:              MsgVarsLong,
		Args:              cobra.ExactArgs(1),
		GroupID:           "templates",
		ValidArgsFunction: a.templateNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.newWorkspace()
			if err != nil {
				return err
			}
			result, err := commands.Vars(commands.VarsOptions{Workspace: ws, Template: args[0]})
			if err != nil {
				return err
			}
			return a.render(cmd, ws, result)
		},
	}
}

func (a *app) newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "templates",
		Short:   MsgTemplatesShort,
		Long:    MsgTemplatesLong,
		Args:    cobra.NoArgs,
		GroupID: "templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.newWorkspace()
			if err != nil {
				return err
			}
			result, err := commands.Templates(commands.TemplatesOptions{Workspace: ws})
			if err != nil {
				return err
			}
			return a.render(cmd, ws, result)
		},
	}
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   MsgListShort,
		Args:    cobra.NoArgs,
		GroupID: "projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.newWorkspace()
			if err != nil {
				return err
			}
			result, err := commands.ListProjects(commands.ListProjectsOptions{Workspace: ws})
			if err != nil {
				return err
			}
			return a.render(cmd, ws, result)
		},
	}
}

func (a *app) newRemoveCmd() *cobra.Command {
	var soft bool

	cmd := &cobra.Command{
		Use:               "remove <name>",
		Aliases:           []string{"rm"},
		Short:             MsgRemoveShort,
		Long:              MsgRemoveLong,
		Args:              cobra.ExactArgs(1),
		GroupID:           "projects",
		ValidArgsFunction: a.projectNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.newWorkspace()
			if err != nil {
				return err
			}
			result, err := commands.RemoveProject(commands.RemoveProjectOptions{
				Workspace: ws,
				Name:      args[0],
				Soft:      soft,
			})
			if err != nil {
				return err
			}
			return a.render(cmd, ws, result)
		},
	}

	cmd.Flags().BoolVarP(&soft, "soft", "s", false, MsgFlagSoftRemove)

	return cmd
}

func (a *app) newBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "backup",
		Short:   MsgBackupShort,
		Long:    MsgBackupLong,
		Args:    cobra.NoArgs,
		GroupID: "projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.newWorkspace()
			if err != nil {
				return err
			}
			result, err := commands.Backup(cmd.Context(), commands.BackupOptions{Workspace: ws})
			if result != nil {
				if renderErr := a.render(cmd, ws, result); renderErr != nil && err == nil {
					err = renderErr
				}
			}
			return err
		},
	}
}

func (a *app) newCloneCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "clone <name> [path]",
		Short:             MsgCloneShort,
		Long:              MsgCloneLong,
		Args:              cobra.RangeArgs(1, 2),
		GroupID:           "projects",
		ValidArgsFunction: a.projectNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.newWorkspace()
			if err != nil {
				return err
			}
			opts := commands.CloneOptions{Workspace: ws, Name: args[0]}
			if len(args) == 2 {
				opts.Path = args[1]
			}
			result, err := commands.Clone(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return a.render(cmd, ws, result)
		},
	}
}

func (a *app) newAdoptCmd() *cobra.Command {
	var backup bool

	cmd := &cobra.Command{
		Use:     "adopt <path>",
		Aliases: []string{"new-existing"},
		Short:   MsgAdoptShort,
		Long:    MsgAdoptLong,
		Args:    cobra.ExactArgs(1),
		GroupID: "projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.newWorkspace()
			if err != nil {
				return err
			}
			result, err := commands.Adopt(cmd.Context(), commands.AdoptOptions{
				Workspace: ws,
				Path:      args[0],
				Backup:    backup,
			})
			if err != nil {
				return err
			}
			return a.render(cmd, ws, result)
		},
	}

	cmd.Flags().BoolVarP(&backup, "backup", "b", false, MsgFlagAdoptBackup)

	return cmd
}

func (a *app) newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "move <source> <destination>",
		Aliases:           []string{"mv"},
		Short:             MsgMoveShort,
		Long:              MsgMoveLong,
		Args:              cobra.ExactArgs(2),
		GroupID:           "projects",
		ValidArgsFunction: a.projectNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.newWorkspace()
			if err != nil {
				return err
			}
			result, err := commands.Move(cmd.Context(), commands.MoveOptions{
				Workspace:   ws,
				Source:      args[0],
				Destination: args[1],
			})
			if result != nil {
				if renderErr := a.render(cmd, ws, result); renderErr != nil && err == nil {
					err = renderErr
				}
			}
			return err
		},
	}
}

func (a *app) newConfigCmd() *cobra.Command {
	var opts commands.ConfigureOptions

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.newWorkspace()
			if err != nil {
				return err
			}
			opts.Workspace = ws
			result, err := commands.Configure(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return a.render(cmd, ws, result)
		},
	}

	cmd.Flags().StringVarP(&opts.TemplateLocation, "template-location", "t", "", MsgFlagTemplateLocation)
	cmd.Flags().StringVarP(&opts.BackupLocation, "backup-location", "b", "", MsgFlagBackupLocation)
	cmd.Flags().BoolVarP(&opts.Soft, "soft", "s", false, MsgFlagSoftConfig)
	cmd.Flags().BoolVar(&opts.Init, "init", false, MsgFlagInit)

	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Run != nil {
				helpCmd.Run(helpCmd, []string{"topics"})
				return nil
			}
			return errors.New(errors.ErrInternal, MsgErrHelpNotFound)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
