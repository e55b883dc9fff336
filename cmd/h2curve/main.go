package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/perclft/groundstate/internal/chem"
	"github.com/perclft/groundstate/internal/config"
	"github.com/perclft/groundstate/internal/plotting"
	"github.com/perclft/groundstate/internal/qubit"
	"github.com/perclft/groundstate/internal/sweep"
)

var (
	cfgPath    string
	verbose    bool
	remoteAddr string
	outDir     string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "h2curve",
	Short: "Ground-state dissociation curves for small diatomics",
	Long: `h2curve sweeps the bond length of a small diatomic (H2 by default) and
computes the ground-state energy at every point with two strategies: iterative
quantum phase estimation on a local statevector simulator, and classical exact
diagonalization. Results are plotted as dissociation curves together with the
Hartree-Fock reference and as differences against the exact baseline.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the full distance sweep and render the plots",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if outDir != "" {
			cfg.Output.Dir = outDir
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		cache, err := sweep.NewCache(ctx, cfg.Cache)
		if err != nil {
			return err
		}
		if cache != nil {
			defer cache.Close()
			logger.Info("result cache enabled", zap.String("addr", cfg.Cache.Addr))
		}

		var exec sweep.Executor
		if remoteAddr != "" {
			remote, err := sweep.NewRemoteExecutor(remoteAddr)
			if err != nil {
				return err
			}
			defer remote.Close()
			exec = remote
			logger.Info("dispatching to solver daemon", zap.String("addr", remoteAddr))
		} else {
			exec = sweep.NewLocalExecutor(nil, logger)
		}

		engine := sweep.NewEngine(cfg, exec, cache, logger)
		res, err := engine.Run(ctx)
		if err != nil {
			return err
		}

		jsonPath, err := res.WriteJSON(cfg.Output.Dir)
		if err != nil {
			return err
		}
		paths, err := plotting.WriteCurves(res, cfg.Output.Dir)
		if err != nil {
			return err
		}
		logger.Info("outputs written",
			zap.String("results", jsonPath),
			zap.Strings("plots", paths))
		return nil
	},
}

var (
	inspectDistance float64
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the qubit problem for a single bond length",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		preset, err := chem.LookupPreset(cfg.Molecule.Preset)
		if err != nil {
			return err
		}
		d := inspectDistance
		if d <= 0 {
			d = preset.EquilibriumBond
		}
		mol, err := preset.Molecule.WithBondLength(d)
		if err != nil {
			return err
		}
		scf, err := chem.RunSCF(mol, chem.SCFOptions{Basis: cfg.Molecule.Basis})
		if err != nil {
			return err
		}
		problem, err := qubit.BuildProblem(scf, cfg.Transform.Mapping, cfg.Transform.InitialState)
		if err != nil {
			return err
		}

		fmt.Printf("Molecule:          %s (%s)\n", preset.Name, cfg.Molecule.Basis)
		fmt.Printf("Bond length:       %.4f A\n", d)
		fmt.Printf("Qubits:            %d\n", problem.NumQubits)
		fmt.Printf("Pauli terms:       %d\n", len(problem.Operator.Terms))
		fmt.Printf("Hartree-Fock:      %.8f Ha\n", scf.Energy)
		fmt.Printf("Nuclear repulsion: %.8f Ha\n", problem.NuclearRepulsion)
		fmt.Printf("Initial state:     |%0*b>\n", problem.NumQubits, problem.InitialState)
		fmt.Println()
		for _, t := range problem.Operator.Terms {
			fmt.Printf("  %+12.8f  %s\n", real(t.PauliCoeff()), t.Label(problem.NumQubits))
		}
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to YAML configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	sweepCmd.Flags().StringVar(&remoteAddr, "remote", "", "solver daemon address (default: solve in-process)")
	sweepCmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory override")
	inspectCmd.Flags().Float64VarP(&inspectDistance, "distance", "d", 0, "bond length in Angstrom (default: equilibrium)")

	rootCmd.AddCommand(sweepCmd, inspectCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
