/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ariatools/aria-chart-tools/internal/analysis"
)

var emailDryRun bool

var emailCmd = &cobra.Command{
	Use:   "email <address>",
	Short: "Emails the analysis summary",
	Long:  `Sends the same summary the export command writes, via SendGrid. Requires --from and --sendgrid_api_key (or config file entries).`,
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if emailDryRun {
			return nil
		}
		if viper.GetString("from") == "" {
			return fmt.Errorf("required flag(s) \"from\" not set")
		}
		if viper.GetString("sendgrid_api_key") == "" {
			return fmt.Errorf("required flag(s) \"sendgrid_api_key\" not set")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := emailInsights(args[0], emailDryRun); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(emailCmd)

	var from string
	emailCmd.Flags().StringVar(&from, "from", "", "From email address")
	viper.BindPFlag("from", emailCmd.Flags().Lookup("from"))

	var apiKey string
	emailCmd.Flags().StringVar(&apiKey, "sendgrid_api_key", "", "SendGrid API key")
	viper.BindPFlag("sendgrid_api_key", emailCmd.Flags().Lookup("sendgrid_api_key"))

	emailCmd.Flags().BoolVar(&emailDryRun, "dry-run", false, "print the email body instead of sending")
}

func emailInsights(to string, dryRun bool) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}
	defer ds.Close()

	var body bytes.Buffer
	if err := analysis.WriteInsights(ds, &body); err != nil {
		return err
	}

	subject := fmt.Sprintf("ARIA %s chart analysis", ds.ChartType())
	if dryRun {
		fmt.Printf("Would send to %s: %s\n\n%s", to, subject, body.String())
		return nil
	}

	fromEmail := mail.NewEmail("aria-chart-tools", viper.GetString("from"))
	toEmail := mail.NewEmail(to, to)
	message := mail.NewSingleEmail(fromEmail, subject, toEmail, body.String(), body.String())
	client := sendgrid.NewSendClient(viper.GetString("sendgrid_api_key"))
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	if response.StatusCode/100 != 2 {
		return fmt.Errorf("sending email: status %d: %s", response.StatusCode, response.Body)
	}

	fmt.Printf("Sent analysis to %s\n", to)
	return nil
}
