// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/loadingkuu/LyTodo/internal/app"
	"github.com/loadingkuu/LyTodo/internal/client"
	"github.com/loadingkuu/LyTodo/internal/config"
	"github.com/loadingkuu/LyTodo/internal/logger"
	"github.com/loadingkuu/LyTodo/models"
	"github.com/spf13/cobra"
)

const clientRole = "lytodo-client"

// newClient is replaced in tests.
var newClient = func(cfg *config.ClientConfig, log *logger.Logger) (client.Client, error) {
	return client.NewApp(cfg, log)
}

func newRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	flags := &config.ClientConfig{}

	root := &cobra.Command{
		Use:   "lytodo-client",
		Short: "Synchronise a local todo document with a LyTodo server",
		Long: `Synchronise a local todo document with a LyTodo sync server.

pull replaces the local file with the server copy, keeping a timestamped
backup of the previous file. push sends the local file to the server.
The last push wins: there is no merging.

Every flag can also be given as a CLIENT_* environment variable,
e.g. CLIENT_URL, CLIENT_TOKEN or CLIENT_FILE. Flags win over the environment.`,
		Version:       buildInfo.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(buildInfo.String() + "\n")

	pf := root.PersistentFlags()
	pf.StringVar(&flags.URL, "url", "", "server base URL (env CLIENT_URL)")
	pf.StringVar(&flags.Token, "token", "", "access token (env CLIENT_TOKEN)")
	pf.StringVarP(&flags.File, "file", "f", "", "local document path (env CLIENT_FILE, default storage.json)")
	pf.DurationVar(&flags.RequestTimeout, "timeout", 0, "request timeout (env CLIENT_REQUEST_TIMEOUT, default 15s)")
	pf.StringVar(&flags.HashKey, "hash-key", "", "HMAC key for body signing (env CLIENT_HASH_KEY)")
	pf.StringVar(&flags.LogFile, "log-file", "", "write debug logs to this file (env CLIENT_LOG_FILE)")
	pf.BoolVar(&flags.NoBackup, "no-backup", false, "do not back up the local file before pull overwrites it")

	root.AddCommand(newPullCommand(flags), newPushCommand(flags))
	return root
}

// setup resolves the configuration and builds the client for a subcommand.
func setup(flags *config.ClientConfig) (client.Client, error) {
	cfg, err := config.GetClientConfig(flags)
	if err != nil {
		return nil, err
	}

	log := logger.NewClientLogger(clientRole, cfg.LogFile)
	log.Debug().Str("url", cfg.URL).Str("file", cfg.File).Msg("client configured")

	return newClient(cfg, log)
}

func newPullCommand(flags *config.ClientConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Replace the local document with the server copy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := setup(flags)
			if err != nil {
				return err
			}

			res, err := c.Pull(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch res.Status {
			case client.PullUnchanged:
				printSuccess(out, app.MsgPullUnchanged)
			case client.PullEmpty:
				printSuccess(out, app.MsgPullEmpty)
			default:
				printSuccess(out, app.MsgPullUpdated)
				if res.BackupPath != "" {
					printDetail(out, "backup", res.BackupPath)
				}
			}
			printDetail(out, "etag", res.ETag)
			if !res.UpdatedAt.IsZero() {
				printDetail(out, "updated", res.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func newPushCommand(flags *config.ClientConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Send the local document to the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := setup(flags)
			if err != nil {
				return err
			}

			ack, err := c.Push(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printSuccess(out, app.MsgPushed)
			printDetail(out, "etag", ack.ETag)
			printDetail(out, "updated", ack.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
			return nil
		},
	}
}
