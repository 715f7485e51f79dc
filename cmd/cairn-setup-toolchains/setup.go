package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/cairn/internal/adapters/toolchain"
	"go.trai.ch/cairn/internal/build"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
)

type setup struct {
	prober       *toolchain.Prober
	store        ports.ProfileStore
	logger       ports.Logger
	crossCompile string

	err error
}

func (s *setup) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cairn-setup-toolchains [--type <type>] <compiler path> <profile name> | --detect",
		Short:         "Create toolchain profiles for cairn",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if detect, _ := cmd.Flags().GetBool("detect"); detect {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			detect, _ := cmd.Flags().GetBool("detect")
			if detect {
				s.err = s.detect(cmd.Context())
				return nil
			}
			toolchainType, _ := cmd.Flags().GetString("type")
			s.err = s.create(cmd.Context(), args[0], args[1], toolchainType)
			return nil
		},
	}
	cmd.Flags().Bool("detect", false, "Detect the compilers in PATH and create a profile for each")
	cmd.Flags().String("type", "", "Toolchain type of the compiler (gcc, clang, llvm, mingw)")
	return cmd
}

// execute runs the command line args and returns the exit code.
func (s *setup) execute(ctx context.Context, args []string) (int, error) {
	s.err = nil
	if args == nil {
		args = []string{}
	}

	cmd := s.command()
	cmd.SetArgs(args)
	cmd.SetContext(ctx)
	if err := cmd.Execute(); err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrInvalidArguments, err)
		return int(domain.ExitCodeFor(err)), err
	}
	if s.err != nil {
		return int(domain.ExitCodeFor(s.err)), s.err
	}
	return 0, nil
}

func (s *setup) create(ctx context.Context, compilerPath, profileName, toolchainType string) error {
	types := domain.ToolchainTypeFromCompilerName(filepath.Base(compilerPath))
	if toolchainType != "" {
		types = domain.CanonicalToolchain(toolchainType)
	}

	profile, err := s.prober.CreateGccProfile(ctx, compilerPath, types, profileName)
	if err != nil {
		return err
	}
	return s.save([]*domain.Profile{profile})
}

// detect probes gcc, clang and the MinGW cross compilers. A compiler that is
// not installed is reported and skipped.
func (s *setup) detect(ctx context.Context) error {
	var profiles []*domain.Profile
	for _, compiler := range []string{"gcc", "clang"} {
		profile, err := s.prober.GccProbe(ctx, compiler, s.crossCompile)
		if err != nil {
			if errors.Is(err, domain.ErrCompilerNotFound) {
				s.logger.Warn(fmt.Sprintf("Skipping %s.", compiler))
				continue
			}
			return err
		}
		profiles = append(profiles, profile)
	}

	mingw, err := s.prober.MingwProbe(ctx)
	profiles = append(profiles, mingw...)
	if err != nil {
		return err
	}

	if len(profiles) == 0 {
		return zerr.Wrap(domain.ErrCompilerNotFound, "no toolchains detected")
	}
	return s.save(profiles)
}

func (s *setup) save(profiles []*domain.Profile) error {
	if err := s.store.Save(profiles); err != nil {
		return err
	}
	for _, p := range profiles {
		s.logger.Info(fmt.Sprintf("Stored profile '%s'.", p.Name))
	}
	return nil
}
