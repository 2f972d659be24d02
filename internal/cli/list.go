package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/company/mcup-locker/internal/exitcodes"
	"github.com/company/mcup-locker/internal/locker"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (a *App) newListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Display the current locker contents",
		Long:  "Shows every server type and its versions in the order they were added.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(format)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}

func (a *App) runList(format string) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}

	switch format {
	case "text":
		for line := range store.Listing() {
			if strings.HasPrefix(line, locker.ServerTypePrefix) {
				a.output.Header(line)
				continue
			}
			a.output.Println(line)
		}
		return nil
	case "json":
		if err := store.Registry().WriteJSON(a.output); err != nil {
			return fmt.Errorf("encoding locker: %w", err)
		}
		return nil
	case "yaml":
		return writeYAML(a.output, store.Registry())
	}

	return &ExitError{Code: exitcodes.UsageError, Message: fmt.Sprintf("unknown output format %q (want text, json or yaml)", format)}
}

func writeYAML(w io.Writer, reg *locker.Registry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reg); err != nil {
		return fmt.Errorf("encoding locker: %w", err)
	}
	return enc.Close()
}
