// cmd/forecast/commands.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"alphawell/internal/config"
	"alphawell/internal/fixtures"
	"alphawell/internal/forecast"
	"alphawell/internal/models"
	"alphawell/internal/repositories"
	mysqlrepo "alphawell/internal/repositories/mysql"
	"alphawell/internal/util"
	"alphawell/pkg/db"
)

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "forecast",
		Short:         "AlphaWell deterministic well forecast",
		Version:       config.BuildVersion,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(out)
	root.AddCommand(newRunCmd(), newDefaultsCmd(), newSeedCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		horizon int
		lateral float64
		capex   float64
		params  string
		full    bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run production -> economics -> carbon -> KPI and print JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := forecast.DefaultInputs()
			if params != "" {
				b, err := os.ReadFile(params)
				if err != nil {
					return fmt.Errorf("read %s: %w", params, err)
				}
				if err := yaml.Unmarshal(b, &in); err != nil {
					return fmt.Errorf("parse %s: %w", params, err)
				}
			}
			if cmd.Flags().Changed("horizon") {
				in.Well.PredictionHorizon = horizon
			}
			if cmd.Flags().Changed("lateral") {
				in.Well.LateralLength = lateral
			}
			if cmd.Flags().Changed("capex") {
				in.Economic.TotalCAPEX = capex
			}
			if err := util.Validate(in); err != nil {
				return err
			}

			res := forecast.Run(in)
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if full {
				return enc.Encode(res)
			}
			return enc.Encode(res.KPIs)
		},
	}
	cmd.Flags().IntVar(&horizon, "horizon", forecast.DefaultHorizonYears, "prediction horizon (years)")
	cmd.Flags().Float64Var(&lateral, "lateral", forecast.DefaultLateralLength, "lateral length (ft)")
	cmd.Flags().Float64Var(&capex, "capex", 0, "total CAPEX override ($)")
	cmd.Flags().StringVarP(&params, "params", "p", "", "YAML file with wellParams/economicParams/carbonParams")
	cmd.Flags().BoolVar(&full, "full", false, "print all monthly series, not only KPIs")
	return cmd
}

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default parameter set as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(forecast.DefaultInputs()); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func newSeedCmd() *cobra.Command {
	var dsn string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create MySQL tables and load demo users and decision history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dsn == "" {
				cfg, err := config.Load("")
				if err != nil {
					return err
				}
				dsn = cfg.MySQL.DSN
			}
			if dsn == "" {
				return errors.New("no DSN: pass --dsn or set DB_DSN")
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()
			return seed(ctx, cmd.OutOrStdout(), dsn)
		},
	}
	cmd.Flags().StringVar(&dsn, "dsn", "", "MySQL DSN (default: DB_DSN)")
	return cmd
}

func seed(ctx context.Context, out io.Writer, dsn string) error {
	conn, err := db.Open(ctx, dsn, db.Options{PingRetries: 5, RetryDelay: 2 * time.Second})
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := mysqlrepo.EnsureSchema(ctx, conn); err != nil {
		return err
	}
	fx, err := fixtures.Load()
	if err != nil {
		return err
	}

	users := &mysqlrepo.UserRepo{DB: conn}
	created := 0
	for _, du := range fx.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(du.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		err = users.Create(ctx, models.User{
			ID:           util.NewID(),
			Name:         du.Name,
			Email:        du.Email,
			Role:         models.ParseRole(du.Role),
			PasswordHash: string(hash),
			CreatedAt:    time.Now().UTC(),
		})
		if errors.Is(err, repositories.ErrDuplicate) {
			continue
		}
		if err != nil {
			return err
		}
		created++
	}

	decisions := &mysqlrepo.DecisionRepo{DB: conn}
	for _, d := range fx.Decisions {
		if err := decisions.Upsert(ctx, d); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "seeded %d users, %d decisions\n", created, len(fx.Decisions))
	return nil
}
