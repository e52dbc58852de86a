// @title Progress Clock API
// @version 1.0
// @description 径向进度表盘渲染服务

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"progress_clock_backend/internal/app"
	"progress_clock_backend/internal/config"
	"progress_clock_backend/internal/service"
	"progress_clock_backend/internal/util"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:           "progress-clock",
		Short:         "Radial progress clock renderer",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&configDir, "config", "configs", "配置文件目录")

	root.AddCommand(
		newServeCmd(&configDir),
		newRenderCmd(&configDir),
		newTokenCmd(&configDir),
	)
	return root
}

func newServeCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*configDir)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			application, err := app.NewApp(cfg)
			if err != nil {
				return err
			}
			return application.Run()
		},
	}
}

func newRenderCmd(configDir *string) *cobra.Command {
	var (
		current string
		total   string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a clock as SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*configDir)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			cur, err := util.ParseCount(current)
			if err != nil {
				return fmt.Errorf("--current: %w", err)
			}
			tot, err := util.ParseCount(total)
			if err != nil {
				return fmt.Errorf("--total: %w", err)
			}

			svc := service.NewClockService(service.StyleFromConfig(&cfg.Clock), nil)
			svc.SetMaxTotal(cfg.Clock.MaxTotal)
			data, err := svc.SVG(context.Background(), cur, tot)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			_, err = w.Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&current, "current", "0", "已完成数量")
	cmd.Flags().StringVar(&total, "total", "", "扇区总数")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "输出文件，- 表示标准输出")
	cmd.MarkFlagRequired("total")
	return cmd
}

func newTokenCmd(configDir *string) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a token for the export endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*configDir)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if ttl <= 0 {
				ttl = cfg.JWT.ExpireTime
			}

			token, err := util.GenerateJWT(subject, cfg.JWT.Secret, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "token 主体")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "有效期，默认使用 jwt.expire_hours")
	cmd.MarkFlagRequired("subject")
	return cmd
}
