// clinic 是診所 API 的命令列客戶端，API 無法連線時改用本機暫存
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"healthcare-clinic/internal/client"

	"github.com/spf13/cobra"
)

var exitFunc = os.Exit

type options struct {
	storePath string
	apiBase   string
	host      string
	token     string
}

func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".clinic.json"
	}
	return filepath.Join(dir, "healthcare-clinic", "clinic.json")
}

// open 依全域旗標建立 client
func (o *options) open() (*client.Client, error) {
	st, err := client.OpenStorage(o.storePath)
	if err != nil {
		return nil, err
	}
	var opts []client.Option
	if o.apiBase != "" {
		opts = append(opts, client.WithBaseURL(o.apiBase))
	}
	if o.host != "" {
		opts = append(opts, client.WithHost(o.host))
	}
	if o.token != "" {
		opts = append(opts, client.WithToken(o.token))
	}
	return client.New(st, opts...), nil
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "clinic",
		Short:         "HealthCare clinic client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&o.storePath, "store", defaultStorePath(), "本機暫存檔路徑")
	root.PersistentFlags().StringVar(&o.apiBase, "api", "", "API 位址，未指定時探測 3000-3002")
	root.PersistentFlags().StringVar(&o.host, "host", "", "探測的主機名稱")
	root.PersistentFlags().StringVar(&o.token, "token", os.Getenv("CLINIC_TOKEN"), "管理員 bearer token")

	root.AddCommand(
		newMedicinesCmd(o),
		newCartCmd(o),
		newCheckoutCmd(o),
		newConsultCmd(o),
		newAppointmentCmd(o),
		newChatCmd(o),
		newSyncCmd(o),
		newResetCmd(o),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		exitFunc(1)
	}
}
