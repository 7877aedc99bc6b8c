package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newCatCommand() *cobra.Command {
	var dataType string

	cmd := &cobra.Command{
		Use:   "cat <file>",
		Short: "Print a file from the capped view",
		Long: `Print a file's content. With --type, the content is parsed (jsonc,
json, yaml, or any) and re-printed as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := capView().GetFile(strings.TrimPrefix(args[0], "/"))
			if dataType == "" {
				content, err := file.Read()
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}
			value, err := file.LoadData(dataType)
			if err != nil {
				return err
			}
			encoded, err := json.MarshalIndent(value, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return nil
		},
	}
	cmd.Flags().StringVarP(&dataType, "type", "t", "", "parse content as this data type before printing")
	return cmd
}

func newWriteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "write <file>",
		Short: "Write stdin to a file in the capped view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			file := capView().GetFile(strings.TrimPrefix(args[0], "/"))
			logger.Debug().Str("real", file.RealPath()).Int("bytes", len(data)).Msg("writing file")
			return file.WriteBinary(data)
		},
	}
}

func newMkdirCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a directory in the capped view if it is absent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := capView().GetDirectory(strings.TrimPrefix(args[0], "/"))
			logger.Debug().Str("real", dir.RealPath()).Msg("creating directory")
			return dir.AssureExists()
		},
	}
}
