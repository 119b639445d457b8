package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Guerrilla-Interactive/zxui/app"
	"github.com/Guerrilla-Interactive/zxui/app/catalog"
	"github.com/Guerrilla-Interactive/zxui/app/cli"
	commands "github.com/Guerrilla-Interactive/zxui/app/commands/args"
	config "github.com/Guerrilla-Interactive/zxui/internal/config"
)

// Version is set via linker flags during build.
var Version = "v0.1.0"

// rootState is shared by the root command and its subcommands.
type rootState struct {
	catalogPath string
	logFile     string
	verbose     bool

	cfg       config.Config
	logger    *zap.Logger
	catalog   *catalog.Catalog
	clipboard app.Clipboard
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(&rootState{clipboard: app.SystemClipboard{}}).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(st *rootState) *cobra.Command {
	root := &cobra.Command{
		Use:   "zx",
		Short: "Compose security tool command lines from a template catalog",
		Long: `zx keeps a catalog of command templates such as "nmap -sV -p {port} {target}".
Run without arguments for the interactive composer, or use the subcommands
to list, search and render templates from scripts.`,
		Version:      Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if st.logger != nil {
				_ = st.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), st)
		},
	}

	root.PersistentFlags().StringVar(&st.catalogPath, "catalog", "", "Catalog file (.json, .yaml, .yml, .db, .sqlite); overrides catalog.path")
	root.PersistentFlags().BoolVarP(&st.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVar(&st.logFile, "log-file", "", "Write logs to this file; overrides log.file")

	mountCommands(root, commands.GetAllCommands(), st)
	return root
}

// noCatalogAnnotation marks cobra commands that run without loading the
// catalog.
const noCatalogAnnotation = "zxui/no-catalog"

// mountCommands adds the registered commands to root. A two-word name such
// as "config get" becomes the subcommand "get" of a "config" group.
func mountCommands(root *cobra.Command, cmds []commands.Command, st *rootState) {
	groups := make(map[string]*cobra.Command)
	for _, c := range cmds {
		group, sub, nested := strings.Cut(c.Name(), " ")
		if !nested {
			cc := adaptCommand(c, c.Name(), st)
			groups[c.Name()] = cc
			root.AddCommand(cc)
			continue
		}
		parent, ok := groups[group]
		if !ok {
			parent = &cobra.Command{
				Use:   group,
				Short: fmt.Sprintf("Manage %s settings", group),
				Args:  cobra.NoArgs,
				// Help only; no catalog needed.
				Annotations: map[string]string{noCatalogAnnotation: "true"},
				RunE: func(cmd *cobra.Command, args []string) error {
					return cmd.Help()
				},
			}
			groups[group] = parent
			root.AddCommand(parent)
		}
		parent.AddCommand(adaptCommand(c, sub, st))
	}
}

// setup loads config, builds the logger and loads the catalog.
func (st *rootState) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if st.catalogPath != "" {
		cfg.Catalog.Path = st.catalogPath
	}
	if st.logFile != "" {
		cfg.Log.File = st.logFile
	}
	st.cfg = cfg

	logger, err := st.buildLogger(cmd)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	st.logger = logger

	if cmd.Annotations[noCatalogAnnotation] == "true" {
		return nil
	}
	c, err := loadCatalog(cmd.Context(), cfg.Catalog.Path, logger)
	if err != nil {
		return err
	}
	st.catalog = c
	return nil
}

// buildLogger returns a production logger on stderr, or on the configured
// log file. The TUI gets a no-op logger unless a log file is configured.
func (st *rootState) buildLogger(cmd *cobra.Command) (*zap.Logger, error) {
	if st.cfg.Log.File == "" && cmd.Root() == cmd {
		return zap.NewNop(), nil
	}
	zc := zap.NewProductionConfig()
	if st.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if st.cfg.Log.File != "" {
		zc.OutputPaths = []string{st.cfg.Log.File}
		zc.ErrorOutputPaths = []string{st.cfg.Log.File}
	}
	return zc.Build()
}

// loadCatalog reads the catalog at path, or the embedded catalog when path
// is empty.
func loadCatalog(ctx context.Context, path string, logger *zap.Logger) (*catalog.Catalog, error) {
	if path == "" {
		c := catalog.Default()
		logger.Debug("no catalog configured, using embedded catalog",
			zap.Int("tools", c.Len()), zap.Int("commands", c.CommandCount()))
		return c, nil
	}
	c, err := catalog.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	logger.Debug("catalog loaded",
		zap.String("path", path), zap.Int("tools", c.Len()), zap.Int("commands", c.CommandCount()))
	return c, nil
}

func (st *rootState) env(out, errOut io.Writer) *commands.Env {
	return &commands.Env{
		Catalog:   st.catalog,
		Logger:    st.logger,
		Out:       out,
		Err:       errOut,
		Clipboard: st.clipboard,
	}
}

// adaptCommand mounts a registered command on cobra under name. Flags come
// from ExpectedFlags; positional arguments after "--" become
// CommandArgs.Extra.
func adaptCommand(c commands.Command, name string, st *rootState) *cobra.Command {
	required := 0
	for _, a := range c.ExpectedArgs() {
		if a.Required {
			required++
		}
	}

	cc := &cobra.Command{
		Use:   strings.TrimSpace(name + " " + c.Usage()),
		Short: c.Description(),
		Args:  cobra.MinimumNArgs(required),
		RunE: func(cmd *cobra.Command, positional []string) error {
			variables, extra := cli.SplitDash(positional, cmd.ArgsLenAtDash())
			parsed := cli.CommandArgs{
				RawArgs:     positional,
				CommandName: c.Name(),
				Variables:   variables,
				Extra:       extra,
				Flags:       make(map[string]string),
				BoolFlags:   make(map[string]bool),
			}
			for _, f := range c.ExpectedFlags() {
				if f.HasValue {
					v, err := cmd.Flags().GetString(f.Name)
					if err != nil {
						return err
					}
					parsed.Flags[f.Name] = v
					continue
				}
				b, err := cmd.Flags().GetBool(f.Name)
				if err != nil {
					return err
				}
				parsed.BoolFlags[f.Name] = b
			}
			return c.Execute(st.env(cmd.OutOrStdout(), cmd.ErrOrStderr()), parsed)
		},
	}
	if !commands.NeedsCatalog(c) {
		cc.Annotations = map[string]string{noCatalogAnnotation: "true"}
	}

	for _, f := range c.ExpectedFlags() {
		if f.HasValue {
			cc.Flags().StringP(f.Name, f.ShortName, "", f.Description)
		} else {
			cc.Flags().BoolP(f.Name, f.ShortName, false, f.Description)
		}
		if f.Required {
			_ = cc.MarkFlagRequired(f.Name)
		}
	}
	return cc
}
