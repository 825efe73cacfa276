package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/navarrastar/devfolio/pkg/config"
	"github.com/navarrastar/devfolio/pkg/models"
	"github.com/navarrastar/devfolio/pkg/services"
	"github.com/navarrastar/devfolio/pkg/store"
)

var errInvalidForm = errors.New("contact form is invalid")

var validateInput models.FormData

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check contact form values against the validation rules",
	Example: `  devfolio validate --name "Jane Doe" --email jane@example.com \
    --subject "Hello there" --message "This is a sufficiently long test message."`,
	RunE: runValidate,
}

var (
	messagesLimit   int
	messagesJSON    bool
	messagesDataDir string
)

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "List contact messages stored by the sqlite sink",
	RunE:  runMessages,
}

func init() {
	validateCmd.Flags().StringVar(&validateInput.Name, "name", "", "Sender name")
	validateCmd.Flags().StringVar(&validateInput.Email, "email", "", "Sender email address")
	validateCmd.Flags().StringVar(&validateInput.Subject, "subject", "", "Message subject")
	validateCmd.Flags().StringVar(&validateInput.Message, "message", "", "Message body")

	messagesCmd.Flags().IntVarP(&messagesLimit, "limit", "n", 20, "Maximum number of messages (0 for all)")
	messagesCmd.Flags().BoolVar(&messagesJSON, "json", false, "Print messages as JSON")
	messagesCmd.Flags().StringVar(&messagesDataDir, "data-dir", "", "Data directory (defaults to DATA_DIR)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	errs := services.NewValidator().Validate(validateInput)
	out := cmd.OutOrStdout()

	if len(errs) == 0 {
		fmt.Fprintln(out, "ok")
		return nil
	}
	for _, f := range models.Fields {
		if msg, ok := errs[f]; ok {
			fmt.Fprintf(out, "%s: %s\n", f, msg)
		}
	}
	return errInvalidForm
}

func runMessages(cmd *cobra.Command, args []string) error {
	dataDir := messagesDataDir
	if dataDir == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		dataDir = cfg.DataDir
	}

	sqliteStore, err := store.NewSQLiteStore(dataDir)
	if err != nil {
		return err
	}
	defer sqliteStore.Close()

	messages, err := sqliteStore.ListMessages(cmd.Context(), messagesLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if messagesJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(messages)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RECEIVED\tNAME\tEMAIL\tSUBJECT")
	for _, m := range messages {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.ReceivedAt.Format("2006-01-02 15:04"), m.Name, m.Email, m.Subject)
	}
	return tw.Flush()
}
